package models

import (
	"time"

	"gorm.io/gorm"
)

// ReadingProgress tracks how far a user got in one handout PDF. At most
// one row per (user, book); a re-read updates progress and last_read_at
// in place.
type ReadingProgress struct {
	gorm.Model
	UserID     uint      `gorm:"uniqueIndex:idx_reading_user_book;not null" json:"user_id"`
	BookName   string    `gorm:"uniqueIndex:idx_reading_user_book;size:255;not null" json:"book_name"`
	Progress   int       `gorm:"default:0" json:"progress"` // percent, 0-100
	LastReadAt time.Time `gorm:"not null" json:"last_read_at"`
}
