package models

import (
	"time"

	"gorm.io/gorm"
)

// UserPresence records the last time an authenticated request was seen
// for a user. Backs the admin "online" counter; rows older than the
// presence window are swept by the cleanup scheduler.
type UserPresence struct {
	gorm.Model
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	LastSeenAt time.Time `gorm:"index;not null" json:"last_seen_at"`
}
