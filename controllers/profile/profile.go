package profileController

import (
	"log"

	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"

	"github.com/gofiber/fiber/v2"
)

func profileData(user models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"firstname":  user.Firstname,
		"lastname":   user.Lastname,
		"student_id": user.StudentID,
		"year":       user.Year,
		"gender":     user.Gender,
		"email":      user.Email,
		"verified":   user.Verified,
		"role":       user.Role,
	}
}

// Me returns the profile bound to the current session.
func Me(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile.", profileData(user))
}

// GetByEmail looks a profile up by email.
func GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile.", profileData(user))
}

// Update changes the editable fields of the current user's profile.
func Update(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	reqData := new(struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Year      *string `json:"year"`
		Gender    *string `json:"gender"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Firstname != nil {
		updates["firstname"] = *reqData.Firstname
	}
	if reqData.Lastname != nil {
		updates["lastname"] = *reqData.Lastname
	}
	if reqData.Year != nil {
		updates["year"] = *reqData.Year
	}
	if reqData.Gender != nil {
		updates["gender"] = *reqData.Gender
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", profileData(user))
}
