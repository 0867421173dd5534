package services

import (
	"testing"
	"time"

	"betsim/database"
	"betsim/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, balance float64) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "x",
		Balance:      balance,
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedMatch(t *testing.T, db *gorm.DB, home, draw, away float64) models.Match {
	t.Helper()

	match := models.Match{
		Sport:     "Football",
		Team1:     "Abahani",
		Team2:     "Mohammedan",
		StartTime: time.Now().Add(2 * time.Hour),
		Status:    models.MatchUpcoming,
	}
	require.NoError(t, db.Create(&match).Error)

	odds := models.Odds{MatchID: match.ID, Home: home, Draw: draw, Away: away}
	require.NoError(t, db.Create(&odds).Error)
	match.Odds = odds
	return match
}

func userBalance(t *testing.T, db *gorm.DB, userID uint) float64 {
	t.Helper()

	balance, err := CurrentBalance(db, userID)
	require.NoError(t, err)
	return balance
}
