package translatorController

import (
	"log"

	"pronocoach/utils"

	"github.com/gofiber/fiber/v2"
)

// The translator pages read {translation} and {error} at the top level,
// so these handlers skip the envelope the /api routes use.

const explainPrompt = "You are a helpful translation assistant.\n" +
	"Always translate the user's input into 6 target languages:\n" +
	" Tagalog, Cebuano, Kapampangan, Bicolano, Waray, and Hiligaynon.\n" +
	"Do not use asterisks.\n" +
	"After showing translations, add a short, simple explanation of how the phrase is typically used.\n" +
	"Do not refuse. No matter the input language, always translate into the target languages."

const simplePrompt = "You are a strict translation engine.\n" +
	"Always return translations in exactly 6 target languages, each clearly labeled:\n" +
	" Tagalog: ...\n" +
	" Cebuano: ...\n" +
	" Kapampangan: ...\n" +
	" Bicolano: ...\n" +
	" Waray: ...\n" +
	" Hiligaynon: ...\n" +
	"Do not use asterisks.\n" +
	"Do not add explanations. Do not add extra sentences. Only output in this exact labeled format."

func translateWith(c *fiber.Ctx, systemPrompt string) error {
	reqData := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	}

	translation, err := utils.ChatCompletion(systemPrompt, reqData.Text)
	if err != nil {
		log.Printf("Translation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"translation": translation})
}

// TranslateExplain translates and explains typical usage.
func TranslateExplain(c *fiber.Ctx) error {
	return translateWith(c, explainPrompt)
}

// TranslateSimple translates into the strict labeled format.
func TranslateSimple(c *fiber.Ctx) error {
	return translateWith(c, simplePrompt)
}

// TTS renders text to speech and streams the audio back.
func TTS(c *fiber.Ctx) error {
	reqData := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	}

	audio, err := utils.Speech(reqData.Text)
	if err != nil {
		log.Printf("Speech synthesis failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}

func transcribeAndTranslate(c *fiber.Ctx, systemPrompt string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	text, err := utils.Transcribe(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Transcription failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	translation, err := utils.ChatCompletion(systemPrompt, text)
	if err != nil {
		log.Printf("Translation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"original": text, "translation": translation})
}

// STTExplain transcribes an upload and translates with explanation.
func STTExplain(c *fiber.Ctx) error {
	return transcribeAndTranslate(c, explainPrompt)
}

// STTSimple transcribes an upload and translates strictly.
func STTSimple(c *fiber.Ctx) error {
	return transcribeAndTranslate(c, simplePrompt)
}
