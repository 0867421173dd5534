package services

import (
	"testing"

	"betsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleMatchPaysWinnersAndMarksLosers(t *testing.T) {
	db := newTestDB(t)
	winner := seedUser(t, db, "winner", 10000)
	loser := seedUser(t, db, "loser", 10000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	_, _, err := PlaceBet(db, winner.ID, match.ID, 500, models.SelectionHome)
	require.NoError(t, err)
	_, _, err = PlaceBet(db, loser.ID, match.ID, 500, models.SelectionAway)
	require.NoError(t, err)

	settled, err := SettleMatch(db, match.ID, models.SelectionHome)
	require.NoError(t, err)
	assert.Equal(t, 2, settled)

	// 10000 - 500 + 500*1.8 = 10400
	assert.Equal(t, 10400.0, userBalance(t, db, winner.ID))
	assert.Equal(t, 9500.0, userBalance(t, db, loser.ID))

	var bets []models.Bet
	require.NoError(t, db.Order("id asc").Find(&bets).Error)
	require.Len(t, bets, 2)
	assert.Equal(t, models.BetWon, bets[0].Status)
	assert.NotNil(t, bets[0].SettledAt)
	assert.Equal(t, models.BetLost, bets[1].Status)
	assert.NotNil(t, bets[1].SettledAt)

	var stored models.Match
	require.NoError(t, db.First(&stored, match.ID).Error)
	assert.Equal(t, models.MatchFinished, stored.Status)
	assert.True(t, stored.Locked)
}

func TestSettleMatchRefundReturnsStakes(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alpha", 1000)
	b := seedUser(t, db, "bravo", 1000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	_, _, err := PlaceBet(db, a.ID, match.ID, 300, models.SelectionHome)
	require.NoError(t, err)
	_, _, err = PlaceBet(db, b.ID, match.ID, 400, models.SelectionDraw)
	require.NoError(t, err)

	_, err = SettleMatch(db, match.ID, ResultRefund)
	require.NoError(t, err)

	// Stakes come back regardless of selection; not the potential win.
	assert.Equal(t, 1000.0, userBalance(t, db, a.ID))
	assert.Equal(t, 1000.0, userBalance(t, db, b.ID))

	var bets []models.Bet
	require.NoError(t, db.Find(&bets).Error)
	for _, bet := range bets {
		assert.Equal(t, models.BetRefunded, bet.Status)
	}
}

func TestSettleMatchTwiceIsANoOpOnResolvedBets(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "repeat", 10000)
	match := seedMatch(t, db, 2.0, 3.0, 4.0)

	_, _, err := PlaceBet(db, user.ID, match.ID, 100, models.SelectionHome)
	require.NoError(t, err)

	settled, err := SettleMatch(db, match.ID, models.SelectionHome)
	require.NoError(t, err)
	assert.Equal(t, 1, settled)
	assert.Equal(t, 10100.0, userBalance(t, db, user.ID))

	settled, err = SettleMatch(db, match.ID, models.SelectionHome)
	require.NoError(t, err)
	assert.Zero(t, settled)
	assert.Equal(t, 10100.0, userBalance(t, db, user.ID))
}

func TestSettleMatchOnlyTouchesPendingBetsOfThatMatch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "spread", 10000)
	settledMatch := seedMatch(t, db, 2.0, 3.0, 4.0)
	otherMatch := seedMatch(t, db, 1.5, 3.0, 5.0)

	_, _, err := PlaceBet(db, user.ID, settledMatch.ID, 100, models.SelectionHome)
	require.NoError(t, err)
	other, _, err := PlaceBet(db, user.ID, otherMatch.ID, 100, models.SelectionHome)
	require.NoError(t, err)

	_, err = SettleMatch(db, settledMatch.ID, models.SelectionAway)
	require.NoError(t, err)

	var stored models.Bet
	require.NoError(t, db.First(&stored, other.ID).Error)
	assert.Equal(t, models.BetPending, stored.Status)
}

func TestSettleMatchWritesPayoutLedgerRows(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "paper-trail", 10000)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	bet, _, err := PlaceBet(db, user.ID, match.ID, 500, models.SelectionHome)
	require.NoError(t, err)

	_, err = SettleMatch(db, match.ID, models.SelectionHome)
	require.NoError(t, err)

	var entry models.UserTransaction
	require.NoError(t, db.Where("user_id = ? AND trx_type = ?", user.ID, models.TrxBetPayout).
		First(&entry).Error)
	assert.Equal(t, bet.PotentialWin, entry.Amount)
	assert.NotEmpty(t, entry.ExtraInfo)
}

func TestSettleMatchUnknownMatch(t *testing.T) {
	db := newTestDB(t)

	_, err := SettleMatch(db, 555, models.SelectionHome)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSettleMatchInvalidResult(t *testing.T) {
	db := newTestDB(t)
	match := seedMatch(t, db, 1.8, 3.5, 2.1)

	_, err := SettleMatch(db, match.ID, "sideways")
	assert.ErrorIs(t, err, ErrInvalidResult)

	var stored models.Match
	require.NoError(t, db.First(&stored, match.ID).Error)
	assert.Equal(t, models.MatchUpcoming, stored.Status)
}
