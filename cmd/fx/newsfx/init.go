package newsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"verdure/internal/config"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideNewsService)

func provideNewsService(cfg *config.Config, logger *zap.Logger) services.NewsServiceInterface {
	return services.NewNewsService(cfg.NewsFeedURL, logger)
}
