package domain

import "time"

// Playlist is a user-curated list of songs. Creation and membership editing
// happen in the external CRUD surface; this package only reads playlists to
// expand activity listings.
type Playlist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CoverPath string    `json:"cover_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Songs are the playlist members, populated by a live join on read.
	// nil when the playlist was loaded without its members.
	Songs []*Song `json:"songs,omitempty"`
}
