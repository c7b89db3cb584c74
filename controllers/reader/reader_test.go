package readerController

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pronocoach/config"
	"pronocoach/database"
	"pronocoach/models"
	readerValidator "pronocoach/validators/reader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	app        *fiber.App
	testUserID uint = 9001
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
		DBName:     envOr("TEST_DB_NAME", "pronocoach_reader_test"),
		JWTKey:     "testsecret",
		SaltRound:  4,
	}
	database.ConnectDb()

	app = fiber.New()
	app.Post("/api/save_progress", withTestUser, readerValidator.SaveProgress(), SaveProgress)
	app.Get("/api/get_progress", withTestUser, GetProgress)
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

func postProgress(t *testing.T, body string) int {
	req := httptest.NewRequest("POST", "/api/save_progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// A re-read for the same (user, book) pair must update the existing row
// in place; the table never gains a second row for the pair.
func TestSaveProgressUpsertsSingleRow(t *testing.T) {
	db := database.Database.Db
	db.Unscoped().Where("user_id = ?", testUserID).Delete(&models.ReadingProgress{})

	status := postProgress(t, `{"book_name": "Cebuano.PDF ", "progress": 40}`)
	require.Equal(t, fiber.StatusOK, status)

	var first models.ReadingProgress
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&first).Error)
	assert.Equal(t, "cebuano.pdf", first.BookName)
	assert.Equal(t, 40, first.Progress)

	time.Sleep(20 * time.Millisecond)

	// Same book, different casing: still the same row
	status = postProgress(t, `{"book_name": "cebuano.pdf", "progress": 75}`)
	require.Equal(t, fiber.StatusOK, status)

	var rows []models.ReadingProgress
	require.NoError(t, db.Where("user_id = ?", testUserID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, 75, rows[0].Progress)
	assert.True(t, rows[0].LastReadAt.After(first.LastReadAt))
}

// Omitting progress marks the handout fully read, still on the one row.
func TestSaveProgressMarkAsReadPath(t *testing.T) {
	db := database.Database.Db
	db.Unscoped().Where("user_id = ?", testUserID).Delete(&models.ReadingProgress{})

	status := postProgress(t, `{"book_name": "bikol.pdf", "progress": 10}`)
	require.Equal(t, fiber.StatusOK, status)

	status = postProgress(t, `{"book_name": "bikol.pdf"}`)
	require.Equal(t, fiber.StatusOK, status)

	var rows []models.ReadingProgress
	require.NoError(t, db.Where("user_id = ?", testUserID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].Progress)
}
