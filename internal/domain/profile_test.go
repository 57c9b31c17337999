package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPlayCountsEveryPresentDimension(t *testing.T) {
	p := NewUserProfile("usr-1")

	p.ApplyPlay(&Song{ID: "song-1", Artist: "A", Emotion: EmotionHappiness, Language: "English"})
	p.ApplyPlay(&Song{ID: "song-2", Artist: "A", Emotion: EmotionSadness, Language: "English"})

	assert.Equal(t, map[string]int{"Happiness": 1, "Sadness": 1}, p.EmotionStats)
	assert.Equal(t, map[string]int{"A": 2}, p.ArtistStats)
	assert.Equal(t, map[string]int{"English": 2}, p.LanguageStats)
	assert.Equal(t, "English", p.LastPlayedLanguage)
}

func TestApplyPlaySkipsAbsentDimensions(t *testing.T) {
	p := NewUserProfile("usr-1")

	// An instrumental with no tags at all only counts the artist.
	p.ApplyPlay(&Song{ID: "song-1", Artist: "B"})

	assert.Empty(t, p.EmotionStats)
	assert.Equal(t, map[string]int{"B": 1}, p.ArtistStats)
	assert.Empty(t, p.LanguageStats)
	assert.Empty(t, p.LastPlayedLanguage)
}

func TestApplyPlayOverwritesLastPlayedLanguage(t *testing.T) {
	p := NewUserProfile("usr-1")

	p.ApplyPlay(&Song{ID: "song-1", Artist: "A", Language: "Hindi"})
	p.ApplyPlay(&Song{ID: "song-2", Artist: "A", Language: "English"})
	require.Equal(t, "English", p.LastPlayedLanguage)

	// A play without a language leaves the signal untouched.
	p.ApplyPlay(&Song{ID: "song-3", Artist: "A"})
	assert.Equal(t, "English", p.LastPlayedLanguage)

	// Playing Hindi again flips it back.
	p.ApplyPlay(&Song{ID: "song-1", Artist: "A", Language: "Hindi"})
	assert.Equal(t, "Hindi", p.LastPlayedLanguage)
	assert.Equal(t, map[string]int{"Hindi": 2, "English": 1}, p.LanguageStats)
}

func TestScoreSong(t *testing.T) {
	p := NewUserProfile("usr-1")
	p.EmotionStats["Love"] = 3
	p.ArtistStats["X"] = 4

	assert.Equal(t, 10, p.ScoreSong(&Song{ID: "song-1", Artist: "X", Emotion: EmotionLove}))
	assert.Equal(t, 6, p.ScoreSong(&Song{ID: "song-2", Artist: "Y", Emotion: EmotionLove}))
	assert.Equal(t, 4, p.ScoreSong(&Song{ID: "song-3", Artist: "X", Emotion: EmotionSadness}))
	assert.Equal(t, 0, p.ScoreSong(&Song{ID: "song-4"}))
}

func TestTopLanguage(t *testing.T) {
	p := NewUserProfile("usr-1")

	_, ok := p.TopLanguage()
	assert.False(t, ok)

	p.LanguageStats["Hindi"] = 2
	p.LanguageStats["English"] = 5
	lang, ok := p.TopLanguage()
	require.True(t, ok)
	assert.Equal(t, "English", lang)
}

func TestTopLanguageTieIsDeterministic(t *testing.T) {
	// Equal counts must not fall back to map iteration order.
	for range 50 {
		p := NewUserProfile("usr-1")
		p.LanguageStats["Tamil"] = 3
		p.LanguageStats["Bengali"] = 3
		p.LanguageStats["Punjabi"] = 3

		lang, ok := p.TopLanguage()
		require.True(t, ok)
		assert.Equal(t, "Bengali", lang)
	}
}

func TestPreferredLanguage(t *testing.T) {
	p := NewUserProfile("usr-1")

	_, ok := p.PreferredLanguage()
	assert.False(t, ok)

	p.LanguageStats["Hindi"] = 7
	lang, ok := p.PreferredLanguage()
	require.True(t, ok)
	assert.Equal(t, "Hindi", lang, "falls back to most played")

	p.LastPlayedLanguage = "English"
	lang, ok = p.PreferredLanguage()
	require.True(t, ok)
	assert.Equal(t, "English", lang, "last played wins over most played")
}
