package services

import (
	"testing"
	"time"

	"betsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMatchWithOdds(t *testing.T) {
	db := newTestDB(t)

	match, err := CreateMatch(db, "Cricket", "Tigers", "Lions",
		time.Now().Add(time.Hour), 1.9, 3.2, 2.4)
	require.NoError(t, err)

	var odds models.Odds
	require.NoError(t, db.Where("match_id = ?", match.ID).First(&odds).Error)
	assert.Equal(t, 1.9, odds.Home)
	assert.Equal(t, 3.2, odds.Draw)
	assert.Equal(t, 2.4, odds.Away)
	assert.Equal(t, models.MatchUpcoming, match.Status)
}

func TestUpdateOddsRejectedWhenLocked(t *testing.T) {
	db := newTestDB(t)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)
	require.NoError(t, db.Model(&match).Update("locked", true).Error)

	err := UpdateOdds(db, match.ID, 2.0, 3.0, 4.0)
	assert.ErrorIs(t, err, ErrOddsLocked)

	err = UpdateOdds(db, 999, 2.0, 3.0, 4.0)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestListOpenMatchesFiltersClosed(t *testing.T) {
	db := newTestDB(t)
	open := seedMatch(t, db, 1.8, 3.5, 2.1)
	locked := seedMatch(t, db, 1.8, 3.5, 2.1)
	require.NoError(t, db.Model(&locked).Update("locked", true).Error)

	matches, err := ListOpenMatches(db)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, open.ID, matches[0].ID)
	assert.Equal(t, 1.8, matches[0].Odds.Home)
}

func TestLockStartedMatches(t *testing.T) {
	db := newTestDB(t)
	started := seedMatch(t, db, 1.8, 3.5, 2.1)
	require.NoError(t, db.Model(&started).Update("start_time", time.Now().Add(-time.Minute)).Error)
	future := seedMatch(t, db, 1.8, 3.5, 2.1)

	locked, err := LockStartedMatches(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, locked)

	var stored models.Match
	require.NoError(t, db.First(&stored, started.ID).Error)
	assert.Equal(t, models.MatchLive, stored.Status)
	assert.True(t, stored.Locked)

	stored = models.Match{}
	require.NoError(t, db.First(&stored, future.ID).Error)
	assert.Equal(t, models.MatchUpcoming, stored.Status)
	assert.False(t, stored.Locked)
}
