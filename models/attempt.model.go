package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one graded submission. CourseID is set for module-course
// attempts and null for general-catalog ones. Attempts are append-only;
// the newest completed_at decides the current completion state.
type QuizAttempt struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	QuizID         uint      `gorm:"index;not null" json:"quiz_id"`
	CourseID       *uint     `gorm:"index" json:"course_id,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `gorm:"index;not null" json:"completed_at"`
}

// AttemptAnswer is the per-question breakdown of one attempt.
// SelectedOptionID is null when the question was left unanswered or the
// submitted option did not belong to the question.
type AttemptAnswer struct {
	gorm.Model
	AttemptID        uint  `gorm:"index;not null" json:"attempt_id"`
	QuestionID       uint  `gorm:"not null" json:"question_id"`
	SelectedOptionID *uint `json:"selected_option_id"`
	CorrectOptionID  *uint `json:"correct_option_id"`
	IsCorrect        bool  `gorm:"default:false" json:"is_correct"`
}

// QuizHistory is a denormalized activity row written on the general-quiz
// path so /api/history can render without joins.
type QuizHistory struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `gorm:"index;not null" json:"completed_at"`
}
