package domain

import "time"

// Emotion is a fixed-vocabulary mood tag attached to a song.
type Emotion string

// Emotion values recognized by the catalog.
const (
	EmotionHappiness  Emotion = "Happiness"
	EmotionSadness    Emotion = "Sadness"
	EmotionCalmness   Emotion = "Calmness"
	EmotionExcitement Emotion = "Excitement"
	EmotionLove       Emotion = "Love"
)

// Valid returns true if the emotion is a recognized value.
// The empty string is not valid — absence is modeled by HasEmotion.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappiness, EmotionSadness, EmotionCalmness, EmotionExcitement, EmotionLove:
		return true
	default:
		return false
	}
}

// Song is a catalog entry. The catalog is admin-managed; nothing in the
// recommendation or statistics path ever mutates a song.
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	SrcPath   string    `json:"src_path"`              // stored audio file reference
	CoverPath string    `json:"cover_path,omitempty"`  // stored cover image reference
	Emotion   Emotion   `json:"emotion,omitempty"`     // empty = untagged
	Language  string    `json:"language,omitempty"`    // canonical label, empty = untagged
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEmotion reports whether the song carries an emotion tag.
func (s *Song) HasEmotion() bool {
	return s.Emotion != ""
}

// HasLanguage reports whether the song carries a language label.
func (s *Song) HasLanguage() bool {
	return s.Language != ""
}
