package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizResetMarker invalidates a user's quiz completion for one course
// until a newer attempt supersedes it. At most one row per (user,
// course); a later reset overwrites reset_at, and a fresh attempt deletes
// the row outright.
type QuizResetMarker struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex:idx_reset_user_course;not null" json:"user_id"`
	CourseID uint      `gorm:"uniqueIndex:idx_reset_user_course;not null" json:"course_id"`
	ResetAt  time.Time `gorm:"not null" json:"reset_at"`
}
