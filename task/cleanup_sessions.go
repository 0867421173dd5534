package tasks

import (
	"time"

	"betsim/database"
	"betsim/models"

	"github.com/sirupsen/logrus"
)

// CleanupExpiredSessions deletes sessions past their expiry.
func CleanupExpiredSessions() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})

	if result.Error != nil {
		logrus.WithError(result.Error).Error("❌ Failed to delete expired sessions")
	} else if result.RowsAffected > 0 {
		logrus.WithField("count", result.RowsAffected).Info("✅ Deleted expired sessions")
	}
}
