package services

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"betsim/models"

	"gorm.io/gorm"
)

// DetectStreamKind classifies a stream URL for the TV directory so the
// frontend knows which embed to render.
func DetectStreamKind(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.StreamDirect
	}

	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	switch {
	case host == "youtube.com" || host == "youtu.be" || strings.HasSuffix(host, ".youtube.com"):
		return models.StreamYouTube
	case host == "twitch.tv" || strings.HasSuffix(host, ".twitch.tv"):
		return models.StreamTwitch
	}
	return models.StreamDirect
}

func CreateChannel(db *gorm.DB, name, streamURL string, position int, meta map[string]any) (*models.Channel, error) {
	channel := models.Channel{
		Name:      name,
		StreamURL: streamURL,
		Kind:      DetectStreamKind(streamURL),
		Position:  position,
		IsActive:  true,
	}
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, err
		}
		channel.Meta = raw
	}

	if err := db.Create(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func UpdateChannel(db *gorm.DB, id uint, name, streamURL string, position int, isActive bool) (*models.Channel, error) {
	var channel models.Channel
	if err := db.First(&channel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	updates := map[string]any{
		"name":       name,
		"stream_url": streamURL,
		"kind":       DetectStreamKind(streamURL),
		"position":   position,
		"is_active":  isActive,
	}
	if err := db.Model(&channel).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func DeleteChannel(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Channel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrChannelNotFound
	}
	return nil
}

func ListChannels(db *gorm.DB, activeOnly bool) ([]models.Channel, error) {
	q := db.Order("position asc, id asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var channels []models.Channel
	if err := q.Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}
