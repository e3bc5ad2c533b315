package dashboardfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	userRepo repositories.UserRepository,
	cropRepo repositories.CropRepository,
	scheduleRepo repositories.ScheduleRepository,
	notificationRepo repositories.NotificationRepository,
	analyticsRepo repositories.AnalyticsRepository,
	logger *zap.Logger,
) services.DashboardServiceInterface {
	return services.NewDashboardService(userRepo, cropRepo, scheduleRepo, notificationRepo, analyticsRepo, logger)
}
