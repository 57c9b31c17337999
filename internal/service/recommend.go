package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/harmoura/harmoura-server/internal/domain"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/store"
)

// maxRecommendations is the fixed size cap on the recommendation list.
const maxRecommendations = 6

// RecommendationService ranks catalog songs against a user's listening
// statistics.
type RecommendationService struct {
	store    store.Store
	resolver *media.Resolver
	logger   *slog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(store store.Store, resolver *media.Resolver, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// Recommend returns up to maxRecommendations songs for the user, best first.
//
// Candidate selection is gated by language: songs in the user's last played
// language, falling back to the most played language, falling back to the
// whole catalog for users with no language signal. Candidates are then
// ordered by preference score (descending), ties broken by song ID
// (descending), and the list truncated. A brand-new user gets an all-zero
// scoring pass over the whole catalog, which still returns up to
// maxRecommendations songs in deterministic order.
func (s *RecommendationService) Recommend(ctx context.Context, userID string) ([]SongView, error) {
	profile, err := s.store.GetOrCreateUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var candidates []*domain.Song
	language, gated := profile.PreferredLanguage()
	if gated {
		candidates, err = s.store.ListSongsByLanguage(ctx, language)
	} else {
		candidates, err = s.store.ListSongs(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	slices.SortFunc(candidates, func(a, b *domain.Song) int {
		if d := profile.ScoreSong(b) - profile.ScoreSong(a); d != 0 {
			return d
		}
		return strings.Compare(b.ID, a.ID)
	})

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	s.logger.Debug("recommendations built",
		"user_id", userID,
		"language_gate", language,
		"count", len(candidates),
	)

	return newSongViews(s.resolver, candidates), nil
}
