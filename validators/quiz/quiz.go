package quizValidator

import (
	"strings"

	"pronocoach/middleware"

	"github.com/gofiber/fiber/v2"
)

// AnswerPayload is one submitted response.
type AnswerPayload struct {
	QuestionID uint  `json:"question_id"`
	OptionID   *uint `json:"option_id"`
}

// AttemptPayload is the body of a quiz submission.
type AttemptPayload struct {
	Responses []AnswerPayload `json:"responses"`
}

// QuestionPayload is one question in a quiz create/update request.
type QuestionPayload struct {
	Prompt        string   `json:"prompt"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// QuizPayload is the body of a quiz create/update request.
type QuizPayload struct {
	Title       string            `json:"title"`
	Language    string            `json:"language"`
	Description string            `json:"description"`
	IsActive    *bool             `json:"is_active"`
	Questions   []QuestionPayload `json:"questions"`
}

// SubmitAttempt validator middleware
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttemptPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Responses == nil {
			errors["responses"] = "Responses are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateQuizPayload(reqData, true)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validator middleware. Questions are optional here; when
// present they replace the quiz's question set wholesale.
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateQuizPayload(reqData, false)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func validateQuizPayload(reqData *QuizPayload, questionsRequired bool) map[string]string {
	errors := make(map[string]string)

	// Validate Title
	if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	// Validate Questions
	if questionsRequired && len(reqData.Questions) == 0 {
		errors["questions"] = "At least one question is required!"
	}
	for _, q := range reqData.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			errors["questions"] = "Every question needs a prompt!"
			break
		}
		if len(q.Options) < 2 {
			errors["questions"] = "Every question needs at least two options!"
			break
		}
		if q.CorrectOption < 0 || q.CorrectOption > len(q.Options) {
			errors["questions"] = "Correct option index out of range!"
			break
		}
	}

	return errors
}
