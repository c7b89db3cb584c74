package quizController

import (
	"log"
	"time"

	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LoadQuizQuestions fetches a quiz's questions with options in catalog order.
func LoadQuizQuestions(db *gorm.DB, quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("quiz_id = ?", quizID).
		Order("order_index asc, id asc").
		Preload("Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc, id asc")
		}).
		Find(&questions).Error
	return questions, err
}

// PersistAttempt writes the attempt and its per-question answers in one
// transaction. courseID is nil on the generic-catalog path, which also
// gets a history row.
func PersistAttempt(db *gorm.DB, userID uint, quiz models.Quiz, courseID *uint, score int, total int, breakdown []GradedAnswer, completedAt time.Time) (models.QuizAttempt, error) {
	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizID:         quiz.ID,
		CourseID:       courseID,
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    completedAt,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		for _, answer := range breakdown {
			record := models.AttemptAnswer{
				AttemptID:        attempt.ID,
				QuestionID:       answer.QuestionID,
				SelectedOptionID: answer.SelectedOptionID,
				CorrectOptionID:  answer.CorrectOptionID,
				IsCorrect:        answer.IsCorrect,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		if courseID == nil {
			history := models.QuizHistory{
				UserID:         userID,
				QuizID:         quiz.ID,
				QuizTitle:      quiz.Title,
				Score:          score,
				TotalQuestions: total,
				CompletedAt:    completedAt,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		return nil
	})

	return attempt, err
}

// ListQuizzes returns the active generic catalog.
func ListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := database.Database.Db.Where("is_active = ?", true).
		Order("id asc").
		Preload("Questions").
		Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quizzes: "+err.Error(), nil)
	}

	list := make([]fiber.Map, 0, len(quizzes))
	for _, quiz := range quizzes {
		list = append(list, fiber.Map{
			"id":             quiz.ID,
			"title":          quiz.Title,
			"language":       quiz.Language,
			"description":    quiz.Description,
			"question_count": len(quiz.Questions),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz list.", list)
}

// SanitizedQuizData shapes a quiz for quiz takers. Correct-answer flags
// never leave the server on this path.
func SanitizedQuizData(quiz models.Quiz, questions []models.Question) fiber.Map {
	questionList := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		options := make([]fiber.Map, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, fiber.Map{
				"id":   opt.ID,
				"text": opt.Text,
			})
		}
		questionList = append(questionList, fiber.Map{
			"id":          q.ID,
			"prompt":      q.Prompt,
			"explanation": q.Explanation,
			"options":     options,
		})
	}

	return fiber.Map{
		"id":          quiz.ID,
		"title":       quiz.Title,
		"language":    quiz.Language,
		"description": quiz.Description,
		"questions":   questionList,
	}
}

// GetQuiz returns one active quiz definition for taking.
func GetQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := LoadQuizQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz.", SanitizedQuizData(quiz, questions))
}

// BuildQuizModels turns a validated create/update payload into catalog
// rows. If no option of a question is flagged correct the first one is
// forced correct so every question stays gradable.
func BuildQuizModels(payload *quizValidator.QuizPayload) models.Quiz {
	quiz := models.Quiz{
		Title:       payload.Title,
		Language:    payload.Language,
		Description: payload.Description,
		IsActive:    true,
	}
	if payload.IsActive != nil {
		quiz.IsActive = *payload.IsActive
	}

	for qi, q := range payload.Questions {
		question := models.Question{
			Prompt:      q.Prompt,
			Explanation: q.Explanation,
			OrderIndex:  qi,
		}
		for oi, text := range q.Options {
			question.Options = append(question.Options, models.Option{
				Text:       text,
				IsCorrect:  q.CorrectOption == oi+1,
				OrderIndex: oi,
			})
		}
		if len(question.Options) > 0 {
			flagged := false
			for _, opt := range question.Options {
				if opt.IsCorrect {
					flagged = true
					break
				}
			}
			if !flagged {
				question.Options[0].IsCorrect = true
			}
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	return quiz
}

// CreateQuiz writes a new quiz with its full question set.
func CreateQuiz(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedQuiz").(*quizValidator.QuizPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := BuildQuizModels(payload)

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&quiz).Error
	})
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created.", fiber.Map{
		"id":    quiz.ID,
		"title": quiz.Title,
	})
}

// SubmitAttempt grades a generic-catalog submission.
func SubmitAttempt(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	quizID, err := c.ParamsInt("id")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	payload, ok := c.Locals("validatedAttempt").(*quizValidator.AttemptPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := LoadQuizQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz: "+err.Error(), nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions to grade!", nil)
	}

	score, breakdown := GradeResponses(questions, payload.Responses)
	completedAt := time.Now()

	if _, err := PersistAttempt(db, userId, quiz, nil, score, len(questions), breakdown, completedAt); err != nil {
		log.Printf("Error saving attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt graded.", fiber.Map{
		"score":           score,
		"total_questions": len(questions),
		"breakdown":       breakdown,
		"completed_at":    completedAt,
	})
}
