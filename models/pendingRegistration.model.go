package models

import (
	"time"

	"gorm.io/gorm"
)

// PendingRegistration holds a registration that has not been confirmed by
// its email code yet. One row per email; a re-request overwrites the row
// with a fresh code and expiry.
type PendingRegistration struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	StudentID string    `gorm:"size:30" json:"student_id"`
	Year      string    `json:"year"`
	Gender    string    `json:"gender"`
	Password  string    `json:"-"` // bcrypt hash, never the raw password
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
