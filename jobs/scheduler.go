package jobs

import (
	"time"

	"betsim/database"
	"betsim/services"
	tasks "betsim/task"

	"github.com/sirupsen/logrus"
)

// StartScheduler runs the background tickers: locking matches once their
// start time passes and pruning expired sessions.
func StartScheduler() {
	tickerLock := time.NewTicker(1 * time.Minute)
	go func() {
		for {
			<-tickerLock.C
			locked, err := services.LockStartedMatches(database.DB)
			if err != nil {
				logrus.WithError(err).Error("❌ error locking started matches")
				continue
			}
			if locked > 0 {
				logrus.WithField("count", locked).Info("Locked started matches")
			}
		}
	}()

	tickerSessions := time.NewTicker(15 * time.Minute)
	go func() {
		for {
			<-tickerSessions.C
			tasks.CleanupExpiredSessions()
		}
	}()
}
