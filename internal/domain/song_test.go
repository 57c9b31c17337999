package domain

import "testing"

func TestEmotionValid(t *testing.T) {
	valid := []Emotion{EmotionHappiness, EmotionSadness, EmotionCalmness, EmotionExcitement, EmotionLove}
	for _, e := range valid {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}

	invalid := []Emotion{"", "happiness", "Angry", "Joy"}
	for _, e := range invalid {
		if e.Valid() {
			t.Errorf("%q should not be valid", e)
		}
	}
}

func TestSongPresenceHelpers(t *testing.T) {
	s := &Song{ID: "song-1", Title: "Untagged", Artist: "A"}
	if s.HasEmotion() || s.HasLanguage() {
		t.Error("untagged song should report no emotion and no language")
	}

	s.Emotion = EmotionCalmness
	s.Language = "English"
	if !s.HasEmotion() || !s.HasLanguage() {
		t.Error("tagged song should report emotion and language present")
	}
}
