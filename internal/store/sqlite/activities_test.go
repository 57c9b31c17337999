package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/store"
)

func TestUpdatePlaylistActivity_FirstOpen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPlaylist(t, s, "pl-a1", "usr-1", "Focus")

	now := time.Now().UTC()
	a, err := s.UpdatePlaylistActivity(ctx, "usr-1", "pl-a1", func(a *domain.PlaylistActivity) error {
		a.RecordOpen(now)
		return nil
	})
	if err != nil {
		t.Fatalf("UpdatePlaylistActivity: %v", err)
	}
	if a.OpenCount != 1 {
		t.Errorf("OpenCount: got %d, want 1", a.OpenCount)
	}
	if a.LastOpened.Unix() != now.Unix() {
		t.Errorf("LastOpened: got %v, want %v", a.LastOpened, now)
	}

	got, err := s.GetPlaylistActivity(ctx, "usr-1", "pl-a1")
	if err != nil {
		t.Fatalf("GetPlaylistActivity: %v", err)
	}
	if got.OpenCount != 1 {
		t.Errorf("persisted OpenCount: got %d, want 1", got.OpenCount)
	}
}

func TestUpdatePlaylistActivity_RepeatedOpens(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPlaylist(t, s, "pl-a2", "usr-1", "Gym")

	var last time.Time
	for i := range 3 {
		last = time.Now().UTC().Add(time.Duration(i) * time.Second)
		_, err := s.UpdatePlaylistActivity(ctx, "usr-1", "pl-a2", func(a *domain.PlaylistActivity) error {
			a.RecordOpen(last)
			return nil
		})
		if err != nil {
			t.Fatalf("UpdatePlaylistActivity %d: %v", i, err)
		}
	}

	got, err := s.GetPlaylistActivity(ctx, "usr-1", "pl-a2")
	if err != nil {
		t.Fatalf("GetPlaylistActivity: %v", err)
	}
	if got.OpenCount != 3 {
		t.Errorf("OpenCount: got %d, want 3", got.OpenCount)
	}
	if got.LastOpened.Unix() != last.Unix() {
		t.Errorf("LastOpened: got %v, want %v", got.LastOpened, last)
	}
}

func TestUpdatePlaylistActivity_Concurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPlaylist(t, s, "pl-conc", "usr-1", "Commute")

	const opens = 20
	var wg sync.WaitGroup
	errs := make(chan error, opens)
	for range opens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdatePlaylistActivity(ctx, "usr-1", "pl-conc", func(a *domain.PlaylistActivity) error {
				a.RecordOpen(time.Now().UTC())
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent UpdatePlaylistActivity: %v", err)
		}
	}

	got, err := s.GetPlaylistActivity(ctx, "usr-1", "pl-conc")
	if err != nil {
		t.Fatalf("GetPlaylistActivity: %v", err)
	}
	if got.OpenCount != opens {
		t.Errorf("OpenCount: got %d, want %d", got.OpenCount, opens)
	}
}

func TestGetPlaylistActivity_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPlaylistActivity(context.Background(), "usr-1", "nonexistent")
	if !errors.Is(err, store.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestListUserActivities(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPlaylist(t, s, "pl-l1", "usr-1", "One")
	insertTestPlaylist(t, s, "pl-l2", "usr-1", "Two")
	insertTestPlaylist(t, s, "pl-other", "usr-2", "Other")

	for _, pl := range []string{"pl-l1", "pl-l2"} {
		_, err := s.UpdatePlaylistActivity(ctx, "usr-1", pl, func(a *domain.PlaylistActivity) error {
			a.RecordOpen(time.Now().UTC())
			return nil
		})
		if err != nil {
			t.Fatalf("UpdatePlaylistActivity %s: %v", pl, err)
		}
	}
	_, err := s.UpdatePlaylistActivity(ctx, "usr-2", "pl-other", func(a *domain.PlaylistActivity) error {
		a.RecordOpen(time.Now().UTC())
		return nil
	})
	if err != nil {
		t.Fatalf("UpdatePlaylistActivity other user: %v", err)
	}

	activities, err := s.ListUserActivities(ctx, "usr-1")
	if err != nil {
		t.Fatalf("ListUserActivities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	for _, a := range activities {
		if a.UserID != "usr-1" {
			t.Errorf("unexpected user %q in listing", a.UserID)
		}
	}
}
