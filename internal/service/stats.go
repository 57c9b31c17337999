package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harmoura/harmoura-server/internal/domain"
	domainerrors "github.com/harmoura/harmoura-server/internal/errors"
	"github.com/harmoura/harmoura-server/internal/ratelimit"
	"github.com/harmoura/harmoura-server/internal/store"
)

// StatsService folds play events into per-user listening statistics.
type StatsService struct {
	store   store.Store
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// NewStatsService creates a new statistics service. The limiter throttles
// per-user play recording and may be nil to disable throttling.
func NewStatsService(store store.Store, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:   store,
		limiter: limiter,
		logger:  logger,
	}
}

// RecordPlayRequest is the input for RecordPlay.
type RecordPlayRequest struct {
	SongID string `json:"song_id" validate:"required"`
}

// RecordPlay records that the user played a song and updates the user's
// preference statistics. Every call counts as one play; repeated plays of
// the same song keep incrementing the same counters.
//
// The profile update is atomic: the counters for whichever tags the song
// carries (emotion, artist, language) move together or not at all.
func (s *StatsService) RecordPlay(ctx context.Context, userID string, req RecordPlayRequest) (*domain.UserProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	if s.limiter != nil && !s.limiter.Allow(userID) {
		return nil, domainerrors.RateLimited("too many plays, slow down")
	}

	song, err := s.store.GetSong(ctx, req.SongID)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}

	profile, err := s.store.UpdateUserProfile(ctx, userID, func(p *domain.UserProfile) error {
		p.ApplyPlay(song)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info("play recorded",
		"user_id", userID,
		"song_id", song.ID,
		"emotion", string(song.Emotion),
		"language", song.Language,
	)

	return profile, nil
}

// GetProfile returns the user's listening profile, creating an empty one for
// first-time users.
func (s *StatsService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.store.GetOrCreateUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpdatePortraitRequest is the input for UpdatePortrait. Data is an opaque
// JSON document owned by the frontend.
type UpdatePortraitRequest struct {
	Data []byte `json:"data" validate:"required"`
}

// UpdatePortrait stores the frontend's portrait state on the user's profile.
func (s *StatsService) UpdatePortrait(ctx context.Context, userID string, req UpdatePortraitRequest) (*domain.UserProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	profile, err := s.store.UpdateUserProfile(ctx, userID, func(p *domain.UserProfile) error {
		p.PortraitData = req.Data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update portrait: %w", err)
	}

	s.logger.Info("portrait updated", "user_id", userID)
	return profile, nil
}
