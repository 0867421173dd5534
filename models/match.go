package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MatchUpcoming  = "upcoming"
	MatchLive      = "live"
	MatchFinished  = "finished"
	MatchCancelled = "cancelled"
)

type Match struct {
	gorm.Model

	Sport     string    `gorm:"size:50;default:Football" json:"sport"`
	Team1     string    `gorm:"size:100" json:"team1"`
	Team2     string    `gorm:"size:100" json:"team2"`
	StartTime time.Time `gorm:"index" json:"start_time"`
	Status    string    `gorm:"size:16;index;default:upcoming" json:"status"`
	Locked    bool      `gorm:"default:false" json:"locked"`

	Odds Odds  `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Bets []Bet `gorm:"foreignKey:MatchID"`
}

// Open reports whether the match still accepts bets.
func (m *Match) Open() bool {
	return !m.Locked && m.Status == MatchUpcoming
}

type Odds struct {
	gorm.Model

	MatchID uint    `gorm:"uniqueIndex"`
	Home    float64 `gorm:"default:1.80" json:"home"`
	Draw    float64 `gorm:"default:3.50" json:"draw"`
	Away    float64 `gorm:"default:2.10" json:"away"`
}

// ForSelection returns the multiplier for a selection. Unknown selections
// fall back to 1.0, matching the insert-time domain of Bet.Selection.
func (o *Odds) ForSelection(selection string) float64 {
	switch selection {
	case SelectionHome:
		return o.Home
	case SelectionDraw:
		return o.Draw
	case SelectionAway:
		return o.Away
	}
	return 1.0
}
