package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/harmoura/harmoura-server/internal/domain"
	domainerrors "github.com/harmoura/harmoura-server/internal/errors"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/ratelimit"
	"github.com/harmoura/harmoura-server/internal/store"
	"github.com/harmoura/harmoura-server/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	testStore, err := sqlite.Open(dbPath, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { testStore.Close() })
	return testStore
}

func newTestResolver() *media.Resolver {
	return media.NewResolver("http://localhost:8080/media")
}

func createTestSong(t *testing.T, s store.Store, id, title, artist string, emotion domain.Emotion, language string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, s.CreateSong(context.Background(), &domain.Song{
		ID:        id,
		Title:     title,
		Artist:    artist,
		SrcPath:   "/songs/" + id + ".mp3",
		Emotion:   emotion,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func TestRecordPlay_UpdatesAllDimensions(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	createTestSong(t, testStore, "song-1", "Udd Gaye", "Ritviz", domain.EmotionExcitement, "Hindi")

	profile, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, profile.EmotionStats["Excitement"])
	assert.Equal(t, 1, profile.ArtistStats["Ritviz"])
	assert.Equal(t, 1, profile.LanguageStats["Hindi"])
	assert.Equal(t, "Hindi", profile.LastPlayedLanguage)
}

func TestRecordPlay_RepeatedPlaysAccumulate(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	createTestSong(t, testStore, "song-1", "Vagabond", "Beirut", domain.EmotionSadness, "English")

	for range 3 {
		_, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-1"})
		require.NoError(t, err)
	}

	profile, err := svc.GetProfile(ctx, "usr-1")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.EmotionStats["Sadness"])
	assert.Equal(t, 3, profile.ArtistStats["Beirut"])
	assert.Equal(t, 3, profile.LanguageStats["English"])
}

func TestRecordPlay_SkipsAbsentDimensions(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	// Song with no emotion, no artist, no language.
	createTestSong(t, testStore, "song-bare", "Interlude", "", "", "")

	profile, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-bare"})
	require.NoError(t, err)

	assert.Empty(t, profile.EmotionStats)
	assert.Empty(t, profile.ArtistStats)
	assert.Empty(t, profile.LanguageStats)
	assert.Empty(t, profile.LastPlayedLanguage)
}

func TestRecordPlay_LastPlayedLanguageOverwrites(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	createTestSong(t, testStore, "song-hi", "One", "A", "", "Hindi")
	createTestSong(t, testStore, "song-en", "Two", "B", "", "English")
	createTestSong(t, testStore, "song-none", "Three", "C", "", "")

	_, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-hi"})
	require.NoError(t, err)
	_, err = svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-en"})
	require.NoError(t, err)
	// A song without a language leaves the last played language alone.
	_, err = svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-none"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "English", profile.LastPlayedLanguage)
	assert.Equal(t, 1, profile.LanguageStats["Hindi"])
	assert.Equal(t, 1, profile.LanguageStats["English"])
}

func TestRecordPlay_UnknownSong(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))

	_, err := svc.RecordPlay(context.Background(), "usr-1", RecordPlayRequest{SongID: "nonexistent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrSongNotFound)

	// The failed play must not touch the profile.
	profile, err := svc.GetProfile(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Empty(t, profile.EmotionStats)
}

func TestRecordPlay_MissingSongID(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))

	_, err := svc.RecordPlay(context.Background(), "usr-1", RecordPlayRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestRecordPlay_RateLimited(t *testing.T) {
	testStore := newTestStore(t)
	limiter := ratelimit.New(1, 2)
	t.Cleanup(limiter.Stop)
	svc := NewStatsService(testStore, limiter, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	createTestSong(t, testStore, "song-1", "Loop", "A", "", "")

	// Burst of 2 goes through, the third is throttled.
	for range 2 {
		_, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-1"})
		require.NoError(t, err)
	}
	_, err := svc.RecordPlay(ctx, "usr-1", RecordPlayRequest{SongID: "song-1"})
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)

	// Other users are unaffected.
	_, err = svc.RecordPlay(ctx, "usr-2", RecordPlayRequest{SongID: "song-1"})
	assert.NoError(t, err)
}

func TestUpdatePortrait_RoundTrip(t *testing.T) {
	testStore := newTestStore(t)
	svc := NewStatsService(testStore, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	data := []byte(`{"palette":"dusk","energy":0.7}`)
	_, err := svc.UpdatePortrait(ctx, "usr-1", UpdatePortraitRequest{Data: data})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, "usr-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(profile.PortraitData))
}
