package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type CropRepository interface {
	ListAll(ctx context.Context) ([]db_models.Crop, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Crop, error)
	FindByID(ctx context.Context, id string) (*db_models.Crop, error)
	FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Crop, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SumIncomeAndExpenses(ctx context.Context) (income float64, expenses float64, err error)
	Recent(ctx context.Context, limit int) ([]db_models.Crop, error)
}

type cropRepository struct {
	db *gorm.DB
}

func NewCropRepository(db *gorm.DB) CropRepository {
	return &cropRepository{db: db}
}

func (r *cropRepository) ListAll(ctx context.Context) ([]db_models.Crop, error) {
	var crops []db_models.Crop
	err := r.db.WithContext(ctx).Find(&crops).Error
	return crops, err
}

func (r *cropRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Crop, error) {
	var crops []db_models.Crop
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&crops).Error
	return crops, err
}

func (r *cropRepository) FindByID(ctx context.Context, id string) (*db_models.Crop, error) {
	var crop db_models.Crop
	err := r.db.WithContext(ctx).First(&crop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &crop, nil
}

func (r *cropRepository) FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Crop, error) {
	var crop db_models.Crop
	err := r.db.WithContext(ctx).First(&crop, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &crop, nil
}

func (r *cropRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Crop{}).Count(&n).Error
	return n, err
}

type statusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

func (r *cropRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Crop{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

type incomeExpenseRow struct {
	Income   float64 `gorm:"column:income"`
	Expenses float64 `gorm:"column:expenses"`
}

func (r *cropRepository) SumIncomeAndExpenses(ctx context.Context) (float64, float64, error) {
	var row incomeExpenseRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Crop{}).
		Select("COALESCE(SUM(total_income), 0) AS income, COALESCE(SUM(expenses), 0) AS expenses").
		Scan(&row).Error
	return row.Income, row.Expenses, err
}

func (r *cropRepository) Recent(ctx context.Context, limit int) ([]db_models.Crop, error) {
	var crops []db_models.Crop
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&crops).Error
	return crops, err
}
