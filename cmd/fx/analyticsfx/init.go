package analyticsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsRepo, provideAnalyticsService)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	cropRepo repositories.CropRepository,
	logger *zap.Logger,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(analyticsRepo, cropRepo, logger)
}
