package domain

import (
	"encoding/json/jsontext"
	"time"
)

// Scoring weights for the recommendation ranker. A matching emotion counts
// double a matching artist: mood is the stronger preference signal.
const (
	EmotionWeight = 2
	ArtistWeight  = 1
)

// UserProfile is the per-user aggregate holding listening preference state.
// One profile per user, created lazily on first access or first play.
//
// The three stats maps are monotonically growing counters: a key appears on
// the first play of that emotion/artist/language and its count only ever
// increases. LastPlayedLanguage tracks the language of the chronologically
// most recent play that had one, independent of the counters.
//
// All counter mutation goes through ApplyPlay; nothing else writes the maps.
type UserProfile struct {
	UserID             string         `json:"user_id"`
	EmotionStats       map[string]int `json:"emotion_stats"`
	ArtistStats        map[string]int `json:"artist_stats"`
	LanguageStats      map[string]int `json:"language_stats"`
	LastPlayedLanguage string         `json:"last_played_language,omitempty"` // empty = no play with a language yet
	PortraitData       jsontext.Value `json:"portrait_data,omitempty"`        // opaque frontend portrait state
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// NewUserProfile creates an empty profile for a user.
func NewUserProfile(userID string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UserID:        userID,
		EmotionStats:  make(map[string]int),
		ArtistStats:   make(map[string]int),
		LanguageStats: make(map[string]int),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyPlay folds one play event into the profile.
//
// Each dimension present on the song (emotion, artist, language) has its
// counter incremented by exactly 1; absent dimensions are skipped entirely.
// A song with a language additionally overwrites LastPlayedLanguage,
// whatever its previous value was.
func (p *UserProfile) ApplyPlay(song *Song) {
	if song.HasEmotion() {
		p.EmotionStats[string(song.Emotion)]++
	}
	if song.Artist != "" {
		p.ArtistStats[song.Artist]++
	}
	if song.HasLanguage() {
		p.LanguageStats[song.Language]++
		p.LastPlayedLanguage = song.Language
	}
	p.UpdatedAt = time.Now().UTC()
}

// ScoreSong computes the preference score the ranker orders candidates by:
//
//	score = EmotionWeight*emotion_stats[song.emotion] + ArtistWeight*artist_stats[song.artist]
//
// A missing tag, or a tag the user has never played, contributes zero.
// Language is deliberately absent here — it gates the candidate set before
// scoring ever runs.
func (p *UserProfile) ScoreSong(song *Song) int {
	score := 0
	if song.HasEmotion() {
		score += EmotionWeight * p.EmotionStats[string(song.Emotion)]
	}
	if song.Artist != "" {
		score += ArtistWeight * p.ArtistStats[song.Artist]
	}
	return score
}

// TopLanguage returns the user's most played language and true, or "" and
// false when no language has ever been counted.
//
// When several languages share the maximum count the lexicographically
// smallest label wins. Map iteration order must never leak into
// recommendations: two calls against unchanged stats return the same
// language.
func (p *UserProfile) TopLanguage() (string, bool) {
	best := ""
	bestCount := 0
	for lang, count := range p.LanguageStats {
		if count > bestCount || (count == bestCount && bestCount > 0 && lang < best) {
			best = lang
			bestCount = count
		}
	}
	return best, best != ""
}

// PreferredLanguage returns the language the recommendation gate should use:
// the last played language when known, otherwise the most played one.
// Returns false when the profile has no language signal at all.
func (p *UserProfile) PreferredLanguage() (string, bool) {
	if p.LastPlayedLanguage != "" {
		return p.LastPlayedLanguage, true
	}
	return p.TopLanguage()
}
