package schedulefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideScheduleRepo, provideScheduleService)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	cropRepo repositories.CropRepository,
	logger *zap.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, cropRepo, logger)
}
