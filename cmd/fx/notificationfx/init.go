package notificationfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	notificationRepo repositories.NotificationRepository,
	logger *zap.Logger,
) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, logger)
}
