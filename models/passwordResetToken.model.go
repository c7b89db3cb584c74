package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is the emailed reset link token. Deleted as soon as
// it is used so a link can never be replayed.
type PasswordResetToken struct {
	gorm.Model
	Email     string    `gorm:"size:100;index;not null" json:"email"`
	Token     string    `gorm:"size:36;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
