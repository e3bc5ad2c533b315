package authfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository, logger *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, logger)
}
