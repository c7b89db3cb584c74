package courseController

import (
	"log"
	"time"

	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"
	"pronocoach/utils"

	quizController "pronocoach/controllers/quiz"
	quizValidator "pronocoach/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetCourseModules derives the per-user module -> course -> step view.
// Pure read; nothing is written here.
func GetCourseModules(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	db := database.Database.Db

	var catalogModules []models.CourseModule
	if err := db.Order("id asc").Find(&catalogModules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load modules: "+err.Error(), nil)
	}

	var courses []models.Course
	if err := db.Where("is_active = ?", true).
		Order("module_id asc, order_index asc, id asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load courses: "+err.Error(), nil)
	}

	var readings []models.ReadingProgress
	if err := db.Where("user_id = ?", userId).Find(&readings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load reading progress: "+err.Error(), nil)
	}

	var attempts []models.QuizAttempt
	if err := db.Where("user_id = ? AND course_id IS NOT NULL", userId).
		Order("completed_at asc, id asc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load attempts: "+err.Error(), nil)
	}

	var markers []models.QuizResetMarker
	if err := db.Where("user_id = ?", userId).Find(&markers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load reset markers: "+err.Error(), nil)
	}

	quizIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		quizIDs = append(quizIDs, course.QuizID)
	}
	quizByID := make(map[uint]models.Quiz)
	if len(quizIDs) > 0 {
		var quizzes []models.Quiz
		if err := db.Where("id IN ?", quizIDs).Find(&quizzes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quizzes: "+err.Error(), nil)
		}
		for _, quiz := range quizzes {
			quizByID[quiz.ID] = quiz
		}
	}

	readingByBook := make(map[string]models.ReadingProgress)
	for _, r := range readings {
		readingByBook[utils.NormalizeBookName(r.BookName)] = r
	}

	// Ascending order, so the last write per course is the latest attempt
	latestAttempt := make(map[uint]models.QuizAttempt)
	attemptCount := make(map[uint]int64)
	for _, a := range attempts {
		latestAttempt[*a.CourseID] = a
		attemptCount[*a.CourseID]++
	}

	resetAtByCourse := make(map[uint]time.Time)
	for _, m := range markers {
		resetAtByCourse[m.CourseID] = m.ResetAt
	}

	coursesByModule := make(map[uint][]models.Course)
	for _, course := range courses {
		coursesByModule[course.ModuleID] = append(coursesByModule[course.ModuleID], course)
	}

	moduleViews := make([]ModuleView, 0, len(catalogModules))
	for _, mod := range catalogModules {
		flow := []FlowStep{}
		courseViews := []CourseView{}
		moduleCompleted := 0

		for _, course := range coursesByModule[mod.ID] {
			quizRow, hasQuiz := quizByID[course.QuizID]
			if !hasQuiz {
				// Dangling quiz reference, skip the course
				continue
			}

			bookKey := utils.NormalizeBookName(course.BookFile)
			reading, hasReading := readingByBook[bookKey]

			book := &BookView{
				File:         course.BookFile,
				DisplayName:  course.BookDisplayName,
				HandoutLabel: course.HandoutLabel,
				PageRange:    course.PageRange,
				PDFURL:       "/books/" + course.BookFile,
			}
			if hasReading {
				lastRead := reading.LastReadAt
				book.LastReadAt = &lastRead
			}

			var attemptAt *time.Time
			latest, hasAttempt := latestAttempt[course.ID]
			if hasAttempt {
				completedAt := latest.CompletedAt
				attemptAt = &completedAt
			}
			var resetAt *time.Time
			if t, hasMarker := resetAtByCourse[course.ID]; hasMarker {
				resetTime := t
				resetAt = &resetTime
			}
			quizDone := quizStepDone(attemptAt, resetAt)

			quizView := &QuizView{
				ID:          quizRow.ID,
				Title:       quizRow.Title,
				Description: quizRow.Description,
				Attempts:    attemptCount[course.ID],
			}
			if quizDone {
				score := latest.Score
				total := latest.TotalQuestions
				completedAt := latest.CompletedAt
				quizView.Score = &score
				quizView.TotalQuestions = &total
				quizView.ScoreLabel = scoreLabel(score, total)
				quizView.CompletedAt = &completedAt
			}

			flow = append(flow, FlowStep{
				Type:     "course",
				Status:   stepStatus(hasReading),
				Title:    course.Title,
				CourseID: course.ID,
				QuizID:   course.QuizID,
				Book:     book,
			})
			flow = append(flow, FlowStep{
				Type:     "quiz",
				Status:   stepStatus(quizDone),
				Title:    quizRow.Title,
				CourseID: course.ID,
				QuizID:   course.QuizID,
				Quiz:     quizView,
			})

			courseCompleted := 0
			if hasReading {
				courseCompleted++
			}
			if quizDone {
				courseCompleted++
			}
			moduleCompleted += courseCompleted

			courseViews = append(courseViews, CourseView{
				ID:             course.ID,
				Title:          course.Title,
				CompletedSteps: courseCompleted,
				TotalSteps:     2,
				Percentage:     percentage(courseCompleted, 2),
			})
		}

		numberSteps(flow)

		moduleViews = append(moduleViews, ModuleView{
			ID:      mod.ID,
			Title:   mod.Title,
			Dialect: mod.Dialect,
			Summary: mod.Summary,
			Progress: ProgressView{
				CompletedSteps: moduleCompleted,
				TotalSteps:     len(flow),
				Percentage:     percentage(moduleCompleted, len(flow)),
			},
			ActionableStepIndex: actionableStepIndex(flow),
			Courses:             courseViews,
			Flow:                flow,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course modules.", fiber.Map{
		"modules": moduleViews,
	})
}

// GetCourseQuiz returns the quiz bound to a course, shaped for taking.
func GetCourseQuiz(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var quiz models.Quiz
	if err := db.First(&quiz, course.QuizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := quizController.LoadQuizQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz: "+err.Error(), nil)
	}

	data := quizController.SanitizedQuizData(quiz, questions)
	data["course_id"] = course.ID

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course quiz.", data)
}

// upsertResetMarker stamps (user, course) with a fresh reset time.
func upsertResetMarker(userID, courseID uint) (time.Time, error) {
	now := time.Now()
	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"reset_at": now, "updated_at": now}),
	}).Create(&models.QuizResetMarker{
		UserID:   userID,
		CourseID: courseID,
		ResetAt:  now,
	}).Error
	return now, err
}

// ResetCourseQuiz handles the path-carried reset route.
func ResetCourseQuiz(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	return resetCourseQuiz(c, userId, uint(courseID))
}

// ResetCourseQuizByBody handles the body-carried reset route.
func ResetCourseQuizByBody(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	reqData, ok := c.Locals("validatedCourseReset").(*struct {
		CourseID uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	return resetCourseQuiz(c, userId, reqData.CourseID)
}

func resetCourseQuiz(c *fiber.Ctx, userID, courseID uint) error {
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	resetAt, err := upsertResetMarker(userID, course.ID)
	if err != nil {
		log.Printf("Error saving reset marker: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz progress reset.", fiber.Map{
		"course_id": course.ID,
		"reset_at":  resetAt,
	})
}

// SubmitCourseAttempt grades a course-scoped submission. A successful
// submission clears any reset marker for the pair, so the flow step
// flips back to completed.
func SubmitCourseAttempt(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in", nil)
	}

	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	payload, ok := c.Locals("validatedAttempt").(*quizValidator.AttemptPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var quiz models.Quiz
	if err := db.First(&quiz, course.QuizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := quizController.LoadQuizQuestions(db, quiz.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz: "+err.Error(), nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions to grade!", nil)
	}

	score, breakdown := quizController.GradeResponses(questions, payload.Responses)
	completedAt := time.Now()

	scopedCourseID := course.ID
	if _, err := quizController.PersistAttempt(db, userId, quiz, &scopedCourseID, score, len(questions), breakdown, completedAt); err != nil {
		log.Printf("Error saving attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attempt!", nil)
	}

	// A leftover marker is harmless even if this delete fails: step
	// completion compares attempt time against reset_at, and the attempt
	// just written is newer. The delete only keeps the table tidy.
	if err := db.Unscoped().
		Where("user_id = ? AND course_id = ?", userId, course.ID).
		Delete(&models.QuizResetMarker{}).Error; err != nil {
		log.Printf("Error clearing reset marker: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt graded.", fiber.Map{
		"score":           score,
		"total_questions": len(questions),
		"breakdown":       breakdown,
		"completed_at":    completedAt,
	})
}
