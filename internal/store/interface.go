// Package store defines the persistence interface for the Harmoura server.
package store

import (
	"context"

	"github.com/harmoura/harmoura-server/internal/domain"
)

// Store defines the interface for all persistence operations.
//
// The two Update* methods are the atomic read-modify-write units the play
// and open paths depend on: the callback runs against the current row inside
// a write transaction, and either the whole mutation commits or none of it
// does. Concurrent updates to the same row serialize; counters never lose
// increments.
type Store interface {
	// Lifecycle
	Close() error

	// Songs (catalog; read-mostly, writes come from seeding/admin tooling)
	CreateSong(ctx context.Context, song *domain.Song) error
	GetSong(ctx context.Context, id string) (*domain.Song, error)
	ListSongs(ctx context.Context) ([]*domain.Song, error)
	ListSongsByLanguage(ctx context.Context, language string) ([]*domain.Song, error)

	// Playlists (membership editing lives in the external CRUD surface;
	// the core reads playlists and expands their members)
	CreatePlaylist(ctx context.Context, playlist *domain.Playlist) error
	GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error)
	SetPlaylistSongs(ctx context.Context, playlistID string, songIDs []string) error
	ListPlaylistSongs(ctx context.Context, playlistID string) ([]*domain.Song, error)

	// User profiles
	GetOrCreateUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, fn func(*domain.UserProfile) error) (*domain.UserProfile, error)

	// Playlist activity
	GetPlaylistActivity(ctx context.Context, userID, playlistID string) (*domain.PlaylistActivity, error)
	UpdatePlaylistActivity(ctx context.Context, userID, playlistID string, fn func(*domain.PlaylistActivity) error) (*domain.PlaylistActivity, error)
	ListUserActivities(ctx context.Context, userID string) ([]*domain.PlaylistActivity, error)
}
