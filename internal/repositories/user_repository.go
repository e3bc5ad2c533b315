package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	Save(ctx context.Context, user *db_models.User) error

	List(ctx context.Context, role string) ([]db_models.User, error)
	Recent(ctx context.Context, role string, limit int) ([]db_models.User, error)

	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CountActiveSince(ctx context.Context, since int64) (int64, error)
	CountCreatedSince(ctx context.Context, role string, since int64) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) List(ctx context.Context, role string) ([]db_models.User, error) {
	var users []db_models.User
	tx := r.db.WithContext(ctx)
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	err := tx.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) Recent(ctx context.Context, role string, limit int) ([]db_models.User, error) {
	var users []db_models.User
	tx := r.db.WithContext(ctx)
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	err := tx.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *userRepository) CountActiveSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("last_login IS NOT NULL AND last_login >= ?", since).
		Count(&n).Error
	return n, err
}

func (r *userRepository) CountCreatedSince(ctx context.Context, role string, since int64) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&db_models.User{}).Where("created_at >= ?", since)
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	err := tx.Count(&n).Error
	return n, err
}
