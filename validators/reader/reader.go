package readerValidator

import (
	"strings"

	"pronocoach/middleware"

	"github.com/gofiber/fiber/v2"
)

// SaveProgress validator middleware. Progress is optional; when omitted
// the handler marks the handout fully read.
func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BookName string `json:"book_name"`
			Progress *int   `json:"progress"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.BookName) == "" {
			errors["book_name"] = "Book name is required!"
		}
		if reqData.Progress != nil && (*reqData.Progress < 0 || *reqData.Progress > 100) {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
