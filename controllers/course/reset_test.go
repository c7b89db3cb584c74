package courseController

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pronocoach/config"
	"pronocoach/database"
	"pronocoach/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	app        *fiber.App
	testUserID uint = 9002
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

func setup() {
	config.AppConfig = &config.Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("TEST_DB_NAME", "pronocoach_course_test"),
		JWTKey:     "testsecret",
		SaltRound:  4,
	}
	database.ConnectDb()

	app = fiber.New()
	app.Post("/api/module_courses/:course_id/quiz/reset", withTestUser, ResetCourseQuiz)
}

func teardown() {
	database.Database.Db.Migrator().DropTable(
		&models.User{},
		&models.PendingRegistration{},
		&models.PasswordResetToken{},
		&models.ReadingProgress{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.QuizHistory{},
		&models.CourseModule{},
		&models.Course{},
		&models.QuizResetMarker{},
		&models.UserPresence{},
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func withTestUser(c *fiber.Ctx) error {
	c.Locals("userId", testUserID)
	return c.Next()
}

func postReset(t *testing.T, courseID uint) int {
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/module_courses/%d/quiz/reset", courseID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// A second reset for the same (user, course) pair moves reset_at on the
// existing marker; the table holds at most one marker per pair.
func TestResetMarkerUpsertsSingleRow(t *testing.T) {
	db := database.Database.Db

	// Catalog is seeded during migration
	var course models.Course
	require.NoError(t, db.Order("id asc").First(&course).Error)

	db.Unscoped().Where("user_id = ?", testUserID).Delete(&models.QuizResetMarker{})

	status := postReset(t, course.ID)
	require.Equal(t, fiber.StatusOK, status)

	var first models.QuizResetMarker
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", testUserID, course.ID).First(&first).Error)

	time.Sleep(20 * time.Millisecond)

	status = postReset(t, course.ID)
	require.Equal(t, fiber.StatusOK, status)

	var markers []models.QuizResetMarker
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", testUserID, course.ID).Find(&markers).Error)
	require.Len(t, markers, 1)
	assert.Equal(t, first.ID, markers[0].ID)
	assert.True(t, markers[0].ResetAt.After(first.ResetAt))
}

func TestResetUnknownCourseIs404(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, postReset(t, 999999))
}
