package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type AnalyticsRepository interface {
	InsertData(ctx context.Context, data *db_models.AnalyticsData) error
	ListDataBetween(ctx context.Context, userID string, start, end int64) ([]db_models.AnalyticsData, error)
	ListRecentData(ctx context.Context, userID string, since int64, limit int) ([]db_models.AnalyticsData, error)

	FindSummary(ctx context.Context, userID string, period db_models.SummaryPeriod, start, end int64) (*db_models.AnalyticsSummary, error)
	InsertSummary(ctx context.Context, summary *db_models.AnalyticsSummary) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) InsertData(ctx context.Context, data *db_models.AnalyticsData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

func (r *analyticsRepository) ListDataBetween(ctx context.Context, userID string, start, end int64) ([]db_models.AnalyticsData, error) {
	var data []db_models.AnalyticsData
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&data).Error
	return data, err
}

func (r *analyticsRepository) ListRecentData(ctx context.Context, userID string, since int64, limit int) ([]db_models.AnalyticsData, error) {
	var data []db_models.AnalyticsData
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if since > 0 {
		tx = tx.Where("date >= ?", since)
	}
	err := tx.Order("date DESC").Limit(limit).Find(&data).Error
	return data, err
}

func (r *analyticsRepository) FindSummary(ctx context.Context, userID string, period db_models.SummaryPeriod, start, end int64) (*db_models.AnalyticsSummary, error) {
	var summary db_models.AnalyticsSummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND period = ? AND start_date = ? AND end_date = ?", userID, period, start, end).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *analyticsRepository) InsertSummary(ctx context.Context, summary *db_models.AnalyticsSummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}
