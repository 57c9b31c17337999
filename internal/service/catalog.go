package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harmoura/harmoura-server/internal/domain"
	domainerrors "github.com/harmoura/harmoura-server/internal/errors"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/normalize"
	"github.com/harmoura/harmoura-server/internal/store"
)

// SongView is the API shape of a catalog song, with media references
// resolved to full URLs.
type SongView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Language  string    `json:"language,omitempty"`
	SrcURL    string    `json:"src_url"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// newSongView maps a domain song to its API shape.
func newSongView(resolver *media.Resolver, song *domain.Song) SongView {
	return SongView{
		ID:        song.ID,
		Title:     song.Title,
		Artist:    song.Artist,
		Emotion:   string(song.Emotion),
		Language:  song.Language,
		SrcURL:    resolver.Resolve(song.SrcPath),
		CoverURL:  resolver.Resolve(song.CoverPath),
		CreatedAt: song.CreatedAt,
	}
}

// newSongViews maps a slice of domain songs.
func newSongViews(resolver *media.Resolver, songs []*domain.Song) []SongView {
	views := make([]SongView, 0, len(songs))
	for _, song := range songs {
		views = append(views, newSongView(resolver, song))
	}
	return views
}

// CatalogService serves read access to the song catalog.
type CatalogService struct {
	store    store.Store
	resolver *media.Resolver
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store store.Store, resolver *media.Resolver, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// ListSongs returns the full catalog.
func (s *CatalogService) ListSongs(ctx context.Context) ([]SongView, error) {
	songs, err := s.store.ListSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return newSongViews(s.resolver, songs), nil
}

// GetSong returns one song by ID.
func (s *CatalogService) GetSong(ctx context.Context, id string) (*SongView, error) {
	song, err := s.store.GetSong(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	view := newSongView(s.resolver, song)
	return &view, nil
}

// ListSongsByLanguage returns all songs in the given language. The label is
// canonicalized before lookup, so "en", "EN", and "English" query the same
// set.
func (s *CatalogService) ListSongsByLanguage(ctx context.Context, language string) ([]SongView, error) {
	canonical := normalize.Language(language)
	if canonical == "" {
		return nil, domainerrors.Validation("language is required")
	}

	songs, err := s.store.ListSongsByLanguage(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("list songs by language: %w", err)
	}
	return newSongViews(s.resolver, songs), nil
}
