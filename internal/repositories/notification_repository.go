package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

type NotificationFilter struct {
	IsRead *bool
	Type   string
	Page   int
	Limit  int
}

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	FindByID(ctx context.Context, id string) (*db_models.Notification, error)
	Save(ctx context.Context, notification *db_models.Notification) error
	Delete(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID string, filter NotificationFilter) ([]db_models.Notification, int64, error)
	Recent(ctx context.Context, userID string, limit int) ([]db_models.Notification, error)

	CountByUser(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	CountRead(ctx context.Context, userID string) (int64, error)
	TypeCounts(ctx context.Context, userID string) (map[string]int64, error)

	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Save(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Notification{}, "id = ?", id).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, filter NotificationFilter) ([]db_models.Notification, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Notification{}).Where("user_id = ?", userID)
	if filter.IsRead != nil {
		tx = tx.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Type != "" && filter.Type != "all" {
		tx = tx.Where("type = ?", filter.Type)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []db_models.Notification
	err := tx.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) Recent(ctx context.Context, userID string, limit int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = FALSE", userID).Count(&n).Error
	return n, err
}

func (r *notificationRepository) CountRead(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = TRUE", userID).Count(&n).Error
	return n, err
}

func (r *notificationRepository) TypeCounts(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		Type  string `gorm:"column:type"`
		Count int64  `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Select("type, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Type] = row.Count
	}
	return out, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	now := time.Now().Unix()
	result := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = FALSE", userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now, "updated_at": now})
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&db_models.Notification{})
	return result.RowsAffected, result.Error
}
