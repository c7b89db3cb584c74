package translatorRoutes

import (
	translatorController "pronocoach/controllers/translator"

	"github.com/gofiber/fiber/v2"
)

func SetupTranslatorRoutes(app *fiber.App) {
	app.Post("/translate_explain", translatorController.TranslateExplain)
	app.Post("/translate_simple", translatorController.TranslateSimple)
	app.Post("/tts", translatorController.TTS)
	app.Post("/stt_explain", translatorController.STTExplain)
	app.Post("/stt_simple", translatorController.STTSimple)
}
