package readerController

import (
	"log"
	"sort"
	"time"

	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"
	"pronocoach/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// SaveProgress upserts the user's position in a handout. One row per
// (user, book); re-reads only move progress and last_read_at. A request
// without a progress value marks the handout fully read.
func SaveProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		BookName string `json:"book_name"`
		Progress *int   `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress := 100
	if reqData.Progress != nil {
		progress = *reqData.Progress
	}

	now := time.Now()
	record := models.ReadingProgress{
		UserID:     userId,
		BookName:   utils.NormalizeBookName(reqData.BookName),
		Progress:   progress,
		LastReadAt: now,
	}

	if err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"progress": progress, "last_read_at": now, "updated_at": now}),
	}).Create(&record).Error; err != nil {
		log.Printf("Error saving reading progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved.", fiber.Map{
		"book_name":    record.BookName,
		"progress":     record.Progress,
		"last_read_at": record.LastReadAt,
	})
}

// GetProgress lists the user's reading rows.
func GetProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	var rows []models.ReadingProgress
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("last_read_at desc").
		Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress: "+err.Error(), nil)
	}

	list := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		list = append(list, fiber.Map{
			"book_name":    row.BookName,
			"progress":     row.Progress,
			"last_read_at": row.LastReadAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reading progress.", fiber.Map{
		"progress": list,
	})
}

type historyEntry struct {
	payload    fiber.Map
	occurredAt time.Time
}

// History merges reading events and quiz completions, newest first.
func History(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	db := database.Database.Db

	var readings []models.ReadingProgress
	if err := db.Where("user_id = ?", userId).Find(&readings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load history: "+err.Error(), nil)
	}

	var quizHistory []models.QuizHistory
	if err := db.Where("user_id = ?", userId).Find(&quizHistory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load history: "+err.Error(), nil)
	}

	entries := make([]historyEntry, 0, len(readings)+len(quizHistory))
	for _, row := range readings {
		entries = append(entries, historyEntry{
			occurredAt: row.LastReadAt,
			payload: fiber.Map{
				"type":         "reading",
				"book_name":    row.BookName,
				"last_read_at": row.LastReadAt,
				"occurred_at":  row.LastReadAt,
			},
		})
	}
	for _, row := range quizHistory {
		entries = append(entries, historyEntry{
			occurredAt: row.CompletedAt,
			payload: fiber.Map{
				"type":            "quiz",
				"quiz_title":      row.QuizTitle,
				"score":           row.Score,
				"total_questions": row.TotalQuestions,
				"completed_at":    row.CompletedAt,
				"occurred_at":     row.CompletedAt,
			},
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].occurredAt.After(entries[j].occurredAt)
	})

	list := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		list = append(list, entry.payload)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity history.", fiber.Map{
		"history": list,
	})
}
