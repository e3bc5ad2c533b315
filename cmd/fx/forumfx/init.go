package forumfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideForumRepo, provideForumService)

func provideForumRepo(db *gorm.DB) repositories.ForumRepository {
	return repositories.NewForumRepository(db)
}

func provideForumService(
	forumRepo repositories.ForumRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) services.ForumServiceInterface {
	return services.NewForumService(forumRepo, userRepo, logger)
}
