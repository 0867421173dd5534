package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StreamYouTube = "youtube"
	StreamTwitch  = "twitch"
	StreamDirect  = "direct"
)

// Channel is one entry of the live-TV directory.
type Channel struct {
	gorm.Model

	Name      string `gorm:"size:100" json:"name"`
	StreamURL string `gorm:"size:500" json:"stream_url"`
	Kind      string `gorm:"size:16" json:"kind"`
	Position  int    `gorm:"index;default:0" json:"position"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Meta datatypes.JSON `gorm:"type:jsonb" json:"meta"`
}
