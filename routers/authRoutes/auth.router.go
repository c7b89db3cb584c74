package authRoutes

import (
	authController "pronocoach/controllers/auth"
	authValidator "pronocoach/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/register/send-code", authValidator.SendCode(), authController.SendRegistrationCode)
	apiGroup.Post("/register/verify-code", authValidator.VerifyCode(), authController.VerifyRegistrationCode)
	apiGroup.Post("/login", authValidator.Login(), authController.Login)
	apiGroup.Post("/logout", authController.Logout)
	apiGroup.Post("/forgot", authValidator.ForgotPassword(), authController.ForgotPassword)
	apiGroup.Post("/reset/:token", authValidator.ResetPassword(), authController.ResetPassword)
}
