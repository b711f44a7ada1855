package utils

import (
	"log"
	"time"

	"github.com/Tej-ashwani/StudyNotion/database"
	"github.com/Tej-ashwani/StudyNotion/models"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredOTPs removes OTP rows past their expiry
func purgeExpiredOTPs() {
	db := database.Database.Db

	result := db.Unscoped().Where("expires_at < ?", time.Now()).Delete(&models.OTP{})
	if result.Error != nil {
		logScheduler("Error purging expired OTPs: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired OTPs")
	}
}

// purgeExpiredResetTokens clears reset tokens whose window has lapsed
func purgeExpiredResetTokens() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("token <> '' AND reset_password_expires < ?", time.Now()).
		Updates(map[string]interface{}{"token": "", "reset_password_expires": nil})
	if result.Error != nil {
		logScheduler("Error clearing expired reset tokens: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Cleared expired password reset tokens")
	}
}

// StartCleanupScheduler runs the hourly maintenance jobs
func StartCleanupScheduler() {
	c := cron.New()

	c.AddFunc("@hourly", purgeExpiredOTPs)
	c.AddFunc("@hourly", purgeExpiredResetTokens)

	c.Start()
	logScheduler("Cleanup scheduler started")
}
