package utils

import (
	"log"
	"time"

	"pronocoach/database"
	"pronocoach/models"

	"github.com/robfig/cron/v3"
)

// presenceWindow mirrors middleware.PresenceWindow; rows older than this
// no longer count as online and can be swept.
const presenceWindow = 5 * time.Minute

func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredPendingRegistrations drops registration rows whose code
// expired more than an hour ago; the user has to request a fresh code
// anyway.
func purgeExpiredPendingRegistrations() {
	db := database.Database.Db
	cutoff := time.Now().Add(-1 * time.Hour)

	res := db.Unscoped().
		Where("expires_at < ?", cutoff).
		Delete(&models.PendingRegistration{})
	if res.Error != nil {
		logScheduler("Error purging pending registrations: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logScheduler("Purged expired pending registrations")
	}
}

// purgeExpiredResetTokens drops password reset tokens past their expiry.
func purgeExpiredResetTokens() {
	db := database.Database.Db

	res := db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.PasswordResetToken{})
	if res.Error != nil {
		logScheduler("Error purging reset tokens: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logScheduler("Purged expired reset tokens")
	}
}

// purgeStalePresence removes presence rows outside the online window.
func purgeStalePresence() {
	db := database.Database.Db

	res := db.Unscoped().
		Where("last_seen_at < ?", time.Now().Add(-presenceWindow)).
		Delete(&models.UserPresence{})
	if res.Error != nil {
		logScheduler("Error purging stale presence: " + res.Error.Error())
	}
}

// StartCleanupScheduler runs the periodic expiry sweeps.
func StartCleanupScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@every 10m", purgeExpiredPendingRegistrations); err != nil {
		log.Fatalf("Failed to schedule pending registration sweep: %v", err)
	}
	if _, err := c.AddFunc("@every 10m", purgeExpiredResetTokens); err != nil {
		log.Fatalf("Failed to schedule reset token sweep: %v", err)
	}
	if _, err := c.AddFunc("@every 1m", purgeStalePresence); err != nil {
		log.Fatalf("Failed to schedule presence sweep: %v", err)
	}

	c.Start()
	logScheduler("Cleanup scheduler started")
}
