package adminController

import (
	"log"

	quizController "pronocoach/controllers/quiz"
	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListQuizzes lists the catalog for the dashboard, optionally with
// inactive quizzes included.
func ListQuizzes(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "1"

	query := database.Database.Db.Order("id asc").Preload("Questions")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var quizzes []models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quizzes: "+err.Error(), nil)
	}

	list := make([]fiber.Map, 0, len(quizzes))
	for _, quiz := range quizzes {
		list = append(list, fiber.Map{
			"id":             quiz.ID,
			"title":          quiz.Title,
			"language":       quiz.Language,
			"description":    quiz.Description,
			"is_active":      quiz.IsActive,
			"question_count": len(quiz.Questions),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz list.", list)
}

// GetQuiz returns the full definition, correct-answer ids included.
// Dashboard-only; the learner-facing routes never expose these.
func GetQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := quizController.LoadQuizQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz: "+err.Error(), nil)
	}

	questionList := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		options := make([]fiber.Map, 0, len(q.Options))
		var correctOptionID *uint
		for _, opt := range q.Options {
			options = append(options, fiber.Map{
				"id":         opt.ID,
				"text":       opt.Text,
				"is_correct": opt.IsCorrect,
			})
			if opt.IsCorrect && correctOptionID == nil {
				id := opt.ID
				correctOptionID = &id
			}
		}
		questionList = append(questionList, fiber.Map{
			"id":                q.ID,
			"prompt":            q.Prompt,
			"explanation":       q.Explanation,
			"options":           options,
			"correct_option_id": correctOptionID,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz.", fiber.Map{
		"id":          quiz.ID,
		"title":       quiz.Title,
		"language":    quiz.Language,
		"description": quiz.Description,
		"is_active":   quiz.IsActive,
		"questions":   questionList,
	})
}

// UpdateQuiz edits quiz metadata and, when questions are supplied,
// replaces the question set wholesale in one transaction.
func UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	payload, ok := c.Locals("validatedQuiz").(*quizValidator.QuizPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	replacement := quizController.BuildQuizModels(payload)

	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":       replacement.Title,
			"language":    replacement.Language,
			"description": replacement.Description,
			"is_active":   replacement.IsActive,
		}
		if err := tx.Model(&quiz).Updates(updates).Error; err != nil {
			return err
		}

		if len(payload.Questions) == 0 {
			return nil
		}

		// Full question-set replacement
		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Unscoped().Where("question_id IN ?", questionIDs).Delete(&models.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		for i := range replacement.Questions {
			replacement.Questions[i].QuizID = quiz.ID
			if err := tx.Create(&replacement.Questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated.", fiber.Map{
		"id": quiz.ID,
	})
}

// DeleteQuiz removes a quiz with its questions and options.
func DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Unscoped().Where("question_id IN ?", questionIDs).Delete(&models.Option{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&quiz).Error
	})
	if err != nil {
		log.Printf("Error deleting quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted.", nil)
}
