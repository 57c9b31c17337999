package domain

import "time"

// PlaylistActivity is the recency/frequency record for one (user, playlist)
// pair, created lazily on the first open. OpenCount only grows; LastOpened
// only moves forward.
type PlaylistActivity struct {
	UserID     string    `json:"user_id"`
	PlaylistID string    `json:"playlist_id"`
	LastOpened time.Time `json:"last_opened"`
	OpenCount  int       `json:"open_count"`
}

// NewPlaylistActivity creates a zero-count activity record. The first
// RecordOpen takes it to count 1.
func NewPlaylistActivity(userID, playlistID string) *PlaylistActivity {
	return &PlaylistActivity{
		UserID:     userID,
		PlaylistID: playlistID,
	}
}

// RecordOpen folds one open event into the record.
func (a *PlaylistActivity) RecordOpen(now time.Time) {
	a.LastOpened = now
	a.OpenCount++
}
