package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/harmoura/harmoura-server/internal/color"
	"github.com/harmoura/harmoura-server/internal/domain"
	domainerrors "github.com/harmoura/harmoura-server/internal/errors"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/store"
)

// Listing size caps for the activity views.
const (
	recentLimit      = 5
	frequentLimit    = 5
	topFrequentLimit = 10
)

// PlaylistView is the API shape of a playlist together with the requesting
// user's activity on it.
type PlaylistView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CoverURL   string     `json:"cover_url,omitempty"`
	CoverColor string     `json:"cover_color,omitempty"` // fallback when there is no cover image
	OpenCount  int        `json:"open_count"`
	LastOpened *time.Time `json:"last_opened,omitempty"`
	Songs      []SongView `json:"songs"`
}

// ActivityListing is the combined recents-and-frequents response.
type ActivityListing struct {
	Recent   []PlaylistView `json:"recent"`
	Frequent []PlaylistView `json:"frequent"`
}

// ActivityService tracks which playlists a user opens and serves the
// recency/frequency listings built from that history.
type ActivityService struct {
	store    store.Store
	resolver *media.Resolver
	logger   *slog.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(store store.Store, resolver *media.Resolver, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// RecordOpen records that the user opened a playlist. The activity record is
// created on first open; every open moves LastOpened forward and increments
// OpenCount by exactly one, atomically. Returns the opened playlist's view
// with the updated activity folded in.
func (s *ActivityService) RecordOpen(ctx context.Context, userID, playlistID string) (*PlaylistView, error) {
	if playlistID == "" {
		return nil, domainerrors.Validation("playlist id is required")
	}

	// Opens of playlists that don't exist are rejected, not recorded.
	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	now := time.Now().UTC()
	activity, err := s.store.UpdatePlaylistActivity(ctx, userID, playlistID, func(a *domain.PlaylistActivity) error {
		a.RecordOpen(now)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.logger.Info("playlist open recorded",
		"user_id", userID,
		"playlist_id", playlistID,
		"open_count", activity.OpenCount,
	)

	view := s.playlistView(playlist, activity)
	return &view, nil
}

// ListRecentAndFrequent returns the user's recently opened playlists and,
// separately, their most frequently opened ones.
//
// Recents are the top recentLimit records by last-opened time, newest first.
// Frequents are the top frequentLimit records by open count among playlists
// NOT already in the recents: the two lists never overlap, so a playlist the
// user opens constantly but also opened recently shows up once, under recent.
func (s *ActivityService) ListRecentAndFrequent(ctx context.Context, userID string) (*ActivityListing, error) {
	activities, err := s.store.ListUserActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	byRecency := slices.Clone(activities)
	slices.SortFunc(byRecency, func(a, b *domain.PlaylistActivity) int {
		if d := b.LastOpened.Compare(a.LastOpened); d != 0 {
			return d
		}
		return strings.Compare(a.PlaylistID, b.PlaylistID)
	})
	if len(byRecency) > recentLimit {
		byRecency = byRecency[:recentLimit]
	}

	recentIDs := make(map[string]bool, len(byRecency))
	for _, a := range byRecency {
		recentIDs[a.PlaylistID] = true
	}

	var byFrequency []*domain.PlaylistActivity
	for _, a := range activities {
		if !recentIDs[a.PlaylistID] {
			byFrequency = append(byFrequency, a)
		}
	}
	slices.SortFunc(byFrequency, func(a, b *domain.PlaylistActivity) int {
		if d := b.OpenCount - a.OpenCount; d != 0 {
			return d
		}
		return strings.Compare(a.PlaylistID, b.PlaylistID)
	})
	if len(byFrequency) > frequentLimit {
		byFrequency = byFrequency[:frequentLimit]
	}

	listing := &ActivityListing{
		Recent:   []PlaylistView{},
		Frequent: []PlaylistView{},
	}
	listing.Recent, err = s.expandPlaylists(ctx, byRecency)
	if err != nil {
		return nil, err
	}
	listing.Frequent, err = s.expandPlaylists(ctx, byFrequency)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// ListFrequent returns the user's topFrequentLimit most opened playlists,
// most opened first.
func (s *ActivityService) ListFrequent(ctx context.Context, userID string) ([]PlaylistView, error) {
	activities, err := s.store.ListUserActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	slices.SortFunc(activities, func(a, b *domain.PlaylistActivity) int {
		if d := b.OpenCount - a.OpenCount; d != 0 {
			return d
		}
		return strings.Compare(a.PlaylistID, b.PlaylistID)
	})
	if len(activities) > topFrequentLimit {
		activities = activities[:topFrequentLimit]
	}

	return s.expandPlaylists(ctx, activities)
}

// expandPlaylists resolves activity records to full playlist views with live
// catalog data. Records whose playlist has since been deleted drop out
// silently; stale activity rows must not break the listing.
func (s *ActivityService) expandPlaylists(ctx context.Context, activities []*domain.PlaylistActivity) ([]PlaylistView, error) {
	views := make([]PlaylistView, 0, len(activities))
	for _, a := range activities {
		playlist, err := s.store.GetPlaylist(ctx, a.PlaylistID)
		if err != nil {
			if errors.Is(err, store.ErrPlaylistNotFound) {
				continue
			}
			return nil, fmt.Errorf("get playlist %s: %w", a.PlaylistID, err)
		}

		views = append(views, s.playlistView(playlist, a))
	}
	return views, nil
}

// playlistView folds a playlist and one user's activity on it into the API
// shape.
func (s *ActivityService) playlistView(playlist *domain.Playlist, a *domain.PlaylistActivity) PlaylistView {
	view := PlaylistView{
		ID:        playlist.ID,
		Name:      playlist.Name,
		CoverURL:  s.resolver.Resolve(playlist.CoverPath),
		OpenCount: a.OpenCount,
		Songs:     newSongViews(s.resolver, playlist.Songs),
	}
	if playlist.CoverPath == "" {
		view.CoverColor = color.ForPlaylist(playlist.ID)
	}
	if !a.LastOpened.IsZero() {
		opened := a.LastOpened
		view.LastOpened = &opened
	}
	return view
}
