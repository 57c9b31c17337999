// Package di provides dependency injection configuration for the Harmoura server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/harmoura/harmoura-server/internal/config"
	"github.com/harmoura/harmoura-server/internal/di/providers"
	"github.com/harmoura/harmoura-server/internal/logger"
	"github.com/harmoura/harmoura-server/internal/media"
	"github.com/harmoura/harmoura-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Shared helpers
	do.Provide(injector, providers.ProvideMediaResolver)
	do.Provide(injector, providers.ProvidePlayLimiter)

	// Business services
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideStatsService)
	do.Provide(injector, providers.ProvideRecommendationService)
	do.Provide(injector, providers.ProvideActivityService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once eager initialization
// has run. Invoking each provider triggers lazy construction in order.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*media.Resolver](injector)
	_ = do.MustInvoke[*providers.PlayLimiterHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)
	_ = do.MustInvoke[*service.ActivityService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
