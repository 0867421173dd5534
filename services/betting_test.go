package services

import (
	"testing"

	"betsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBetDebitsStakeAndFreezesPayout(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bettor", 10000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	bet, balance, err := PlaceBet(db, user.ID, match.ID, 500, models.SelectionHome)
	require.NoError(t, err)

	assert.Equal(t, 9500.0, balance)
	assert.Equal(t, 9500.0, userBalance(t, db, user.ID))
	assert.Equal(t, models.BetPending, bet.Status)
	assert.Equal(t, 900.0, bet.PotentialWin)

	// Later odds changes never touch the frozen payout.
	require.NoError(t, UpdateOdds(db, match.ID, 5.0, 5.0, 5.0))
	var stored models.Bet
	require.NoError(t, db.First(&stored, bet.ID).Error)
	assert.Equal(t, 900.0, stored.PotentialWin)
}

func TestPlaceBetBelowMinimumStake(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "smallfry", 1000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	_, _, err := PlaceBet(db, user.ID, match.ID, 9.99, models.SelectionHome)
	assert.ErrorIs(t, err, ErrMinStake)

	// No partial effects: balance untouched, no bet row.
	assert.Equal(t, 1000.0, userBalance(t, db, user.ID))
	var count int64
	require.NoError(t, db.Model(&models.Bet{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceBetInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "broke", 50)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	_, _, err := PlaceBet(db, user.ID, match.ID, 100, models.SelectionAway)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 50.0, userBalance(t, db, user.ID))
}

func TestPlaceBetLockedMatch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "late", 1000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)
	require.NoError(t, db.Model(&match).Update("locked", true).Error)

	_, _, err := PlaceBet(db, user.ID, match.ID, 100, models.SelectionHome)
	assert.ErrorIs(t, err, ErrMatchNotAvailable)
}

func TestPlaceBetNonUpcomingMatch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "latecomer", 1000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)
	require.NoError(t, db.Model(&match).Update("status", models.MatchLive).Error)

	_, _, err := PlaceBet(db, user.ID, match.ID, 100, models.SelectionHome)
	assert.ErrorIs(t, err, ErrMatchNotAvailable)
}

func TestPlaceBetMissingMatch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "lost", 1000)

	_, _, err := PlaceBet(db, user.ID, 777, 100, models.SelectionDraw)
	assert.ErrorIs(t, err, ErrMatchNotAvailable)
}

func TestPlaceBetUnknownSelectionFallsBackToEvenOdds(t *testing.T) {
	// Unrecognized selections get a 1.0 multiplier rather than an error.
	// The HTTP handler filters these out; the service keeps the fallback.
	db := newTestDB(t)
	user := seedUser(t, db, "odd-one", 1000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	bet, _, err := PlaceBet(db, user.ID, match.ID, 100, "banker")
	require.NoError(t, err)
	assert.Equal(t, 100.0, bet.PotentialWin)
}

func TestPlaceBetWritesStakeLedgerRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ledgered", 1000)
	match := seedMatch(t, db, 2.0, 3.0, 4.0)

	_, _, err := PlaceBet(db, user.ID, match.ID, 200, models.SelectionDraw)
	require.NoError(t, err)

	var entry models.UserTransaction
	require.NoError(t, db.Where("user_id = ? AND trx_type = ?", user.ID, models.TrxBetStake).
		First(&entry).Error)
	assert.Equal(t, -200.0, entry.Amount)
	assert.Equal(t, 1000.0, entry.BalanceBefore)
	assert.Equal(t, 800.0, entry.BalanceAfter)
}
