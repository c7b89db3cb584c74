package middleware

import (
	"time"

	"pronocoach/database"
	"pronocoach/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm/clause"
)

const sessionUserKey = "userId"

// PresenceWindow is how long a user counts as "online" after their last
// authenticated request.
const PresenceWindow = 5 * time.Minute

var store *session.Store

// InitSessionStore creates the server-side session store. Must be called
// before the app starts serving.
func InitSessionStore() {
	store = session.New(session.Config{
		Expiration:     72 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// CreateSession binds the user id to a fresh server-side session cookie.
func CreateSession(c *fiber.Ctx, userID uint) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// DestroySession drops the session and the user's presence row.
func DestroySession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if userID, ok := sess.Get(sessionUserKey).(uint); ok {
		// Hard delete so the unique user_id index stays reusable
		database.Database.Db.Unscoped().Where("user_id = ?", userID).Delete(&models.UserPresence{})
	}
	return sess.Destroy()
}

// sessionUserID returns the user id bound to the request's session, or 0.
func sessionUserID(c *fiber.Ctx) uint {
	sess, err := store.Get(c)
	if err != nil {
		return 0
	}
	userID, ok := sess.Get(sessionUserKey).(uint)
	if !ok {
		return 0
	}
	return userID
}

// AuthMiddleware resolves the requesting user from the session cookie,
// falling back to a Bearer JWT, and refreshes their presence row.
func AuthMiddleware(c *fiber.Ctx) error {
	userID := sessionUserID(c)
	if userID == 0 {
		userID = userIDFromBearer(c.Get("Authorization"))
	}
	if userID == 0 {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	c.Locals("userId", userID)
	TouchPresence(userID)
	return c.Next()
}

// AdminMiddleware allows only users with the ADMIN role past.
func AdminMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if user.Role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}

	return c.Next()
}

// TouchPresence upserts the user's last-seen timestamp.
func TouchPresence(userID uint) {
	now := time.Now()
	database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_seen_at": now, "updated_at": now}),
	}).Create(&models.UserPresence{UserID: userID, LastSeenAt: now})
}
