package services

import (
	"context"

	"verdure/internal/models/db_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type StoryServiceInterface interface {
	GetStories(ctx context.Context) ([]db_models.Story, error)
}

type StoryService struct {
	storyRepo repositories.StoryRepository
}

func NewStoryService(storyRepo repositories.StoryRepository) StoryServiceInterface {
	return &StoryService{storyRepo: storyRepo}
}

func (s *StoryService) GetStories(ctx context.Context) ([]db_models.Story, error) {
	stories, err := s.storyRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stories, nil
}
