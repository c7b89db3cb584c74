package adminRoutes

import (
	adminController "pronocoach/controllers/admin"
	quizController "pronocoach/controllers/quiz"
	"pronocoach/middleware"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.AuthMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/analytics", adminController.Analytics)
	adminGroup.Get("/online", adminController.Online)
	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Put("/users/:id", adminController.UpdateUser)

	adminGroup.Get("/quizzes", adminController.ListQuizzes)
	adminGroup.Post("/quizzes", quizValidator.CreateQuiz(), quizController.CreateQuiz)
	adminGroup.Get("/quizzes/:id", adminController.GetQuiz)
	adminGroup.Put("/quizzes/:id", quizValidator.UpdateQuiz(), adminController.UpdateQuiz)
	adminGroup.Delete("/quizzes/:id", adminController.DeleteQuiz)
}
