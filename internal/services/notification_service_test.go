package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

func TestNotificationService_MarkAsRead(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	owner := uuid.New()

	t.Run("stamps the read time", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		service := services.NewNotificationService(repo, logger)

		notification := &db_models.Notification{UserID: owner, Title: "Frost warning"}
		notification.ID = uuid.New()
		repo.On("FindByID", ctx, notification.ID.String()).Return(notification, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(n *db_models.Notification) bool {
			return n.IsRead && n.ReadAt != nil
		})).Return(nil)

		result, err := service.MarkAsRead(ctx, owner.String(), notification.ID.String())

		assert.NoError(t, err)
		assert.True(t, result.IsRead)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's notification is forbidden", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		service := services.NewNotificationService(repo, logger)

		notification := &db_models.Notification{UserID: owner}
		notification.ID = uuid.New()
		repo.On("FindByID", ctx, notification.ID.String()).Return(notification, nil)

		result, err := service.MarkAsRead(ctx, uuid.New().String(), notification.ID.String())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrNotOwner)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		service := services.NewNotificationService(repo, logger)

		id := uuid.New().String()
		repo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := service.MarkAsRead(ctx, owner.String(), id)
		assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
	})
}

func TestNotificationService_GetStats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New().String()

	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo, logger)

	repo.On("CountByUser", ctx, userID).Return(int64(10), nil)
	repo.On("CountRead", ctx, userID).Return(int64(7), nil)
	repo.On("CountUnread", ctx, userID).Return(int64(3), nil)
	repo.On("TypeCounts", ctx, userID).Return(map[string]int64{"weather": 4, "crop": 6}, nil)

	stats, err := service.GetStats(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalNotifications)
	assert.Equal(t, 70, stats.ReadRate)
	assert.Equal(t, int64(4), stats.NotificationsByType["weather"])
}

func TestNotificationService_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("defaults to medium priority", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		service := services.NewNotificationService(repo, logger)

		userID := uuid.New()
		repo.On("Insert", ctx, mock.MatchedBy(func(n *db_models.Notification) bool {
			return n.UserID == userID && n.Priority == db_models.PriorityMedium
		})).Return(nil)

		result, err := service.Create(ctx, request_models.CreateNotificationRequest{
			UserID:  userID.String(),
			Type:    "weather",
			Title:   "Storm alert",
			Message: "High winds expected",
		})

		assert.NoError(t, err)
		assert.Equal(t, db_models.NotificationWeather, result.Type)
		repo.AssertExpectations(t)
	})

	t.Run("malformed user id", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		service := services.NewNotificationService(repo, logger)

		result, err := service.Create(ctx, request_models.CreateNotificationRequest{
			UserID:  "not-a-uuid",
			Type:    "weather",
			Title:   "x",
			Message: "y",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrMissingFields)
	})
}

func TestNotificationService_CleanupExpired(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	repo := new(MockNotificationRepository)
	service := services.NewNotificationService(repo, logger)

	repo.On("DeleteExpired", ctx, mock.Anything).Return(int64(4), nil)

	deleted, err := service.CleanupExpired(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
