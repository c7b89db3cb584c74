package courseRoutes

import (
	courseController "pronocoach/controllers/course"
	"pronocoach/middleware"
	courseValidator "pronocoach/validators/course"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthMiddleware)

	apiGroup.Get("/course_modules", courseController.GetCourseModules)
	apiGroup.Post("/course_modules/reset", courseValidator.ResetQuiz(), courseController.ResetCourseQuizByBody)

	apiGroup.Get("/module_courses/:course_id/quiz", courseController.GetCourseQuiz)
	apiGroup.Post("/module_courses/:course_id/quiz/attempts", quizValidator.SubmitAttempt(), courseController.SubmitCourseAttempt)
	apiGroup.Post("/module_courses/:course_id/quiz/reset", courseController.ResetCourseQuiz)
}
