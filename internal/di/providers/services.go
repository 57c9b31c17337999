package providers

import (
	"github.com/samber/do/v2"

	"github.com/harmoura/harmoura-server/internal/config"
	"github.com/harmoura/harmoura-server/internal/logger"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/ratelimit"
	"github.com/harmoura/harmoura-server/internal/service"
)

// ProvideMediaResolver provides the media URL resolver.
func ProvideMediaResolver(i do.Injector) (*media.Resolver, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return media.NewResolver(cfg.Media.PublicBaseURL), nil
}

// PlayLimiterHandle wraps the per-user play rate limiter with shutdown.
type PlayLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *PlayLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvidePlayLimiter provides the per-user rate limiter for play recording.
func ProvidePlayLimiter(i do.Injector) (*PlayLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &PlayLimiterHandle{
		KeyedRateLimiter: ratelimit.New(cfg.Plays.RateLimitPerSecond, cfg.Plays.RateLimitBurst),
	}, nil
}

// ProvideCatalogService provides the song catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	resolver := do.MustInvoke[*media.Resolver](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCatalogService(storeHandle.Store, resolver, log.Logger), nil
}

// ProvideStatsService provides the listening statistics service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	limiter := do.MustInvoke[*PlayLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewStatsService(storeHandle.Store, limiter.KeyedRateLimiter, log.Logger), nil
}

// ProvideRecommendationService provides the recommendation ranker.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	resolver := do.MustInvoke[*media.Resolver](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewRecommendationService(storeHandle.Store, resolver, log.Logger), nil
}

// ProvideActivityService provides the playlist activity tracker.
func ProvideActivityService(i do.Injector) (*service.ActivityService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	resolver := do.MustInvoke[*media.Resolver](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewActivityService(storeHandle.Store, resolver, log.Logger), nil
}
