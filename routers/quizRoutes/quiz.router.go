package quizRoutes

import (
	quizController "pronocoach/controllers/quiz"
	"pronocoach/middleware"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/api/quizzes", middleware.AuthMiddleware)

	quizGroup.Get("/", quizController.ListQuizzes)
	quizGroup.Post("/", middleware.AdminMiddleware, quizValidator.CreateQuiz(), quizController.CreateQuiz)
	quizGroup.Get("/:id", quizController.GetQuiz)
	quizGroup.Post("/:id/attempts", quizValidator.SubmitAttempt(), quizController.SubmitAttempt)
}
