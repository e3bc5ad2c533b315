package storyfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideStoryRepo, provideStoryService)

func provideStoryRepo(db *gorm.DB) repositories.StoryRepository {
	return repositories.NewStoryRepository(db)
}

func provideStoryService(storyRepo repositories.StoryRepository) services.StoryServiceInterface {
	return services.NewStoryService(storyRepo)
}
