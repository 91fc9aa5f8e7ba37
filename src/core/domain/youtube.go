package domain

import "time"

// YoutubeInfo is video metadata fetched from the YouTube Data API.
type YoutubeInfo struct {
	Title       string
	ChannelName string
	Duration    string
	IsPublic    bool
}

// Youtube is a tracked video aggregate. The id is the externally meaningful
// YouTube video id, not a UUID.
type Youtube struct {
	ID        YoutubeID
	Info      YoutubeInfo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewYoutube wraps externally fetched info into a Youtube.
// createdAt and updatedAt are both now.
func NewYoutube(id YoutubeID, info YoutubeInfo, now time.Time) Youtube {
	return Youtube{
		ID:        id,
		Info:      info,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
