package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/harmoura/harmoura-server/internal/store"
)

func TestCreateAndGetPlaylist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestSong(t, s, "song-p1", "Alpha", "A", "", "")
	insertTestSong(t, s, "song-p2", "Beta", "B", "", "")
	insertTestPlaylist(t, s, "pl-1", "usr-1", "Morning Mix")

	if err := s.SetPlaylistSongs(ctx, "pl-1", []string{"song-p2", "song-p1"}); err != nil {
		t.Fatalf("SetPlaylistSongs: %v", err)
	}

	got, err := s.GetPlaylist(ctx, "pl-1")
	if err != nil {
		t.Fatalf("GetPlaylist: %v", err)
	}
	if got.Name != "Morning Mix" {
		t.Errorf("Name: got %q, want %q", got.Name, "Morning Mix")
	}
	if got.UserID != "usr-1" {
		t.Errorf("UserID: got %q, want %q", got.UserID, "usr-1")
	}
	if len(got.Songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(got.Songs))
	}
	// Membership order is preserved, not title order.
	if got.Songs[0].ID != "song-p2" || got.Songs[1].ID != "song-p1" {
		t.Errorf("unexpected song order: %q, %q", got.Songs[0].ID, got.Songs[1].ID)
	}
}

func TestGetPlaylist_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPlaylist(context.Background(), "nonexistent")
	if !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestSetPlaylistSongs_Replaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestSong(t, s, "song-r1", "One", "A", "", "")
	insertTestSong(t, s, "song-r2", "Two", "B", "", "")
	insertTestSong(t, s, "song-r3", "Three", "C", "", "")
	insertTestPlaylist(t, s, "pl-r", "usr-1", "Rotation")

	if err := s.SetPlaylistSongs(ctx, "pl-r", []string{"song-r1", "song-r2"}); err != nil {
		t.Fatalf("SetPlaylistSongs: %v", err)
	}
	if err := s.SetPlaylistSongs(ctx, "pl-r", []string{"song-r3"}); err != nil {
		t.Fatalf("SetPlaylistSongs (replace): %v", err)
	}

	songs, err := s.ListPlaylistSongs(ctx, "pl-r")
	if err != nil {
		t.Fatalf("ListPlaylistSongs: %v", err)
	}
	if len(songs) != 1 || songs[0].ID != "song-r3" {
		t.Fatalf("expected [song-r3], got %d songs", len(songs))
	}
}

func TestSetPlaylistSongs_PlaylistNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.SetPlaylistSongs(context.Background(), "nonexistent", nil)
	if !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestGetPlaylist_Empty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPlaylist(t, s, "pl-empty", "usr-1", "Empty")

	got, err := s.GetPlaylist(ctx, "pl-empty")
	if err != nil {
		t.Fatalf("GetPlaylist: %v", err)
	}
	if len(got.Songs) != 0 {
		t.Errorf("expected no songs, got %d", len(got.Songs))
	}
}
