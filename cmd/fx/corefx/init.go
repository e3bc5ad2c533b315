package corefx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/config"
	"verdure/internal/infra"
	"verdure/internal/models/db_models"
	"verdure/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger, provideDB),
	fx.Invoke(configureSigningKey, migrate, manageDBLifecycle),
)

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return infra.InitPostgresql(cfg.PostgresURL, logger)
}

func configureSigningKey(cfg *config.Config) {
	utils.SetSigningKey(cfg.JWTSecret)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Crop{},
		&db_models.Schedule{},
		&db_models.Notification{},
		&db_models.ForumPost{},
		&db_models.ForumStats{},
		&db_models.AnalyticsData{},
		&db_models.AnalyticsSummary{},
		&db_models.Story{},
		&db_models.Payment{},
	)
}

func manageDBLifecycle(lc fx.Lifecycle, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}
