package profileRoutes

import (
	profileController "pronocoach/controllers/profile"
	"pronocoach/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/profile", middleware.AuthMiddleware)

	profileGroup.Get("/me", profileController.Me)
	profileGroup.Put("/update", profileController.Update)
	profileGroup.Get("/:email", profileController.GetByEmail)
}
