package readerRoutes

import (
	readerController "pronocoach/controllers/reader"
	"pronocoach/middleware"
	readerValidator "pronocoach/validators/reader"

	"github.com/gofiber/fiber/v2"
)

func SetupReaderRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthMiddleware)

	apiGroup.Post("/save_progress", readerValidator.SaveProgress(), readerController.SaveProgress)
	apiGroup.Get("/get_progress", readerController.GetProgress)
	apiGroup.Get("/history", readerController.History)
}
