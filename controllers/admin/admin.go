package adminController

import (
	"log"
	"time"

	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"

	"github.com/gofiber/fiber/v2"
)

// Analytics returns the dashboard counters.
func Analytics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, verifiedUsers, newUsers, totalQuizzes, recentAttempts, activeSessions int64

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load analytics: "+err.Error(), nil)
	}
	db.Model(&models.User{}).Where("verified = ?", true).Count(&verifiedUsers)
	db.Model(&models.User{}).Where("created_at > ?", time.Now().AddDate(0, 0, -7)).Count(&newUsers)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)
	db.Model(&models.QuizAttempt{}).Where("completed_at > ?", time.Now().Add(-24*time.Hour)).Count(&recentAttempts)
	db.Model(&models.UserPresence{}).Where("last_seen_at > ?", time.Now().Add(-middleware.PresenceWindow)).Count(&activeSessions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics.", fiber.Map{
		"total_users":           totalUsers,
		"verified_users":        verifiedUsers,
		"new_users_last_7_days": newUsers,
		"active_sessions":       activeSessions,
		"total_quizzes":         totalQuizzes,
		"attempts_last_24h":     recentAttempts,
	})
}

// Online counts users seen within the presence window.
func Online(c *fiber.Ctx) error {
	var online int64
	if err := database.Database.Db.Model(&models.UserPresence{}).
		Where("last_seen_at > ?", time.Now().Add(-middleware.PresenceWindow)).
		Count(&online).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count online users: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Online users.", fiber.Map{
		"online": online,
	})
}

// ListUsers searches accounts by name, email or student id.
func ListUsers(c *fiber.Ctx) error {
	search := c.Query("search")
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := database.Database.Db.Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"firstname ILIKE ? OR lastname ILIKE ? OR email ILIKE ? OR student_id ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var users []models.User
	if err := query.Order("id asc").Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load users: "+err.Error(), nil)
	}

	list := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		list = append(list, fiber.Map{
			"id":         user.ID,
			"firstname":  user.Firstname,
			"lastname":   user.Lastname,
			"student_id": user.StudentID,
			"year":       user.Year,
			"gender":     user.Gender,
			"email":      user.Email,
			"verified":   user.Verified,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": list,
	})
}

// UpdateUser edits an account from the dashboard.
func UpdateUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData := new(struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Year      *string `json:"year"`
		Gender    *string `json:"gender"`
		Verified  *bool   `json:"verified"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
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
	if reqData.Verified != nil {
		updates["verified"] = *reqData.Verified
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating user %d: %v", user.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated.", fiber.Map{
		"id":       user.ID,
		"verified": user.Verified,
	})
}
