package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type ForumFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type ForumRepository interface {
	Insert(ctx context.Context, post *db_models.ForumPost) error
	FindByID(ctx context.Context, id string) (*db_models.ForumPost, error)
	Save(ctx context.Context, post *db_models.ForumPost) error

	ListActive(ctx context.Context, filter ForumFilter) ([]db_models.ForumPost, int64, error)
	ListAllActive(ctx context.Context) ([]db_models.ForumPost, error)

	GetStats(ctx context.Context) (*db_models.ForumStats, error)
	SaveStats(ctx context.Context, stats *db_models.ForumStats) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) Insert(ctx context.Context, post *db_models.ForumPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *forumRepository) FindByID(ctx context.Context, id string) (*db_models.ForumPost, error) {
	var post db_models.ForumPost
	err := r.db.WithContext(ctx).Preload("User").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *forumRepository) Save(ctx context.Context, post *db_models.ForumPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *forumRepository) ListActive(ctx context.Context, filter ForumFilter) ([]db_models.ForumPost, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.ForumPost{}).Where("is_active = TRUE")
	if filter.Category != "" && filter.Category != "all" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where(
			"title ILIKE ? OR content ILIKE ? OR array_to_string(tags, ' ') ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []db_models.ForumPost
	err := tx.Preload("User").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *forumRepository) ListAllActive(ctx context.Context) ([]db_models.ForumPost, error) {
	var posts []db_models.ForumPost
	err := r.db.WithContext(ctx).Where("is_active = TRUE").Find(&posts).Error
	return posts, err
}

func (r *forumRepository) GetStats(ctx context.Context) (*db_models.ForumStats, error) {
	var stats db_models.ForumStats
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *forumRepository) SaveStats(ctx context.Context, stats *db_models.ForumStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}
