package repositories

import (
	"context"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type StoryRepository interface {
	ListAll(ctx context.Context) ([]db_models.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) ListAll(ctx context.Context) ([]db_models.Story, error) {
	var stories []db_models.Story
	err := r.db.WithContext(ctx).Find(&stories).Error
	return stories, err
}
