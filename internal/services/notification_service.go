package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context, userID string, filter repositories.NotificationFilter) (*response_models.NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	GetStats(ctx context.Context, userID string) (*response_models.NotificationStatsResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) (*db_models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, notificationID string) error
	Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID string, filter repositories.NotificationFilter) (*response_models.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("listing notifications failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.NotificationListResponse{
		Items:       notifications,
		TotalPages:  response_models.TotalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		TotalCount:  total,
		UnreadCount: unread,
	}, nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *NotificationService) GetStats(ctx context.Context, userID string) (*response_models.NotificationStatsResponse, error) {
	total, err := s.notificationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	read, err := s.notificationRepo.CountRead(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byType, err := s.notificationRepo.TypeCounts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	readRate := 0
	if total > 0 {
		readRate = int(float64(read)/float64(total)*100 + 0.5)
	}

	return &response_models.NotificationStatsResponse{
		TotalNotifications:  total,
		ReadNotifications:   read,
		UnreadNotifications: unread,
		ReadRate:            readRate,
		NotificationsByType: byType,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) (*db_models.Notification, error) {
	notification, err := s.ownedNotification(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	notification.IsRead = true
	notification.ReadAt = &now
	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		s.logger.Error("marking notification read failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		s.logger.Error("marking all notifications read failed", zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	if _, err := s.ownedNotification(ctx, userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(ctx, notificationID); err != nil {
		s.logger.Error("deleting notification failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error) {
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	notification := &db_models.Notification{
		UserID:    uid,
		Type:      db_models.NotificationType(req.Type),
		Title:     req.Title,
		Message:   req.Message,
		Priority:  db_models.PriorityMedium,
		ActionURL: req.ActionURL,
		ExpiresAt: req.ExpiresAt,
	}
	if req.Priority != "" {
		notification.Priority = db_models.SchedulePriority(req.Priority)
	}
	if len(req.Data) > 0 {
		notification.Data = datatypes.JSON(req.Data)
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		s.logger.Error("creating notification failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}

func (s *NotificationService) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.notificationRepo.DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		s.logger.Error("cleaning up expired notifications failed", zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	return deleted, nil
}

func (s *NotificationService) ownedNotification(ctx context.Context, userID, notificationID string) (*db_models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if notification == nil {
		return nil, utils.ErrNotificationNotFound
	}
	if notification.UserID.String() != userID {
		return nil, utils.ErrNotOwner
	}
	return notification, nil
}
