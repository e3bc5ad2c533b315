package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type ScheduleFilter struct {
	Status   string
	Category string
	Page     int
	Limit    int
}

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *db_models.Schedule) error
	FindByID(ctx context.Context, id string) (*db_models.Schedule, error)
	Save(ctx context.Context, schedule *db_models.Schedule) error
	Delete(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID string, filter ScheduleFilter) ([]db_models.Schedule, int64, error)
	ListAllByUser(ctx context.Context, userID string) ([]db_models.Schedule, error)
	Upcoming(ctx context.Context, userID string, from, to int64, limit int) ([]db_models.Schedule, error)

	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByUserAndStatus(ctx context.Context, userID string, status db_models.ScheduleStatus) (int64, error)
	CountOverdue(ctx context.Context, userID string, now int64) (int64, error)
	CountDueBetween(ctx context.Context, userID string, from, to int64) (int64, error)
	CategoryCounts(ctx context.Context, userID string) (map[string]int64, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).Preload("Crop").First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Save(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Schedule{}, "id = ?", id).Error
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID string, filter ScheduleFilter) ([]db_models.Schedule, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Schedule{}).Where("user_id = ?", userID)
	if filter.Status != "" && filter.Status != "all" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Category != "" && filter.Category != "all" {
		tx = tx.Where("category = ?", filter.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []db_models.Schedule
	err := tx.Preload("Crop").
		Order("due_date ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&schedules).Error
	return schedules, total, err
}

func (r *scheduleRepository) ListAllByUser(ctx context.Context, userID string) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) Upcoming(ctx context.Context, userID string, from, to int64, limit int) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Crop").
		Where("user_id = ?", userID).
		Where("due_date BETWEEN ? AND ?", from, to).
		Where("status IN ?", []db_models.ScheduleStatus{
			db_models.ScheduleStatusPending, db_models.ScheduleStatusInProgress,
		}).
		Order("due_date ASC").
		Limit(limit).
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Schedule{}).
		Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *scheduleRepository) CountByUserAndStatus(ctx context.Context, userID string, status db_models.ScheduleStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Schedule{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&n).Error
	return n, err
}

func (r *scheduleRepository) CountOverdue(ctx context.Context, userID string, now int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Schedule{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []db_models.ScheduleStatus{
			db_models.ScheduleStatusPending, db_models.ScheduleStatusInProgress,
		}).
		Where("due_date < ?", now).
		Count(&n).Error
	return n, err
}

func (r *scheduleRepository) CountDueBetween(ctx context.Context, userID string, from, to int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Schedule{}).
		Where("user_id = ?", userID).
		Where("due_date BETWEEN ? AND ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *scheduleRepository) CategoryCounts(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		Category string `gorm:"column:category"`
		Count    int64  `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).Model(&db_models.Schedule{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Category] = row.Count
	}
	return out, nil
}
