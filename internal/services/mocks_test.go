package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"verdure/internal/models/db_models"
	"verdure/internal/repositories"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, role string) ([]db_models.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]db_models.User), args.Error(1)
}

func (m *MockUserRepository) Recent(ctx context.Context, role string, limit int) ([]db_models.User, error) {
	args := m.Called(ctx, role, limit)
	return args.Get(0).([]db_models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActiveSince(ctx context.Context, since int64) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountCreatedSince(ctx context.Context, role string, since int64) (int64, error) {
	args := m.Called(ctx, role, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockCropRepository struct {
	mock.Mock
}

func (m *MockCropRepository) ListAll(ctx context.Context) ([]db_models.Crop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]db_models.Crop), args.Error(1)
}

func (m *MockCropRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Crop, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]db_models.Crop), args.Error(1)
}

func (m *MockCropRepository) FindByID(ctx context.Context, id string) (*db_models.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Crop), args.Error(1)
}

func (m *MockCropRepository) FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Crop, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Crop), args.Error(1)
}

func (m *MockCropRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCropRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCropRepository) SumIncomeAndExpenses(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func (m *MockCropRepository) Recent(ctx context.Context, limit int) ([]db_models.Crop, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]db_models.Crop), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule *db_models.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListByUser(ctx context.Context, userID string, filter repositories.ScheduleFilter) ([]db_models.Schedule, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]db_models.Schedule), args.Get(1).(int64), args.Error(2)
}

func (m *MockScheduleRepository) ListAllByUser(ctx context.Context, userID string) ([]db_models.Schedule, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]db_models.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Upcoming(ctx context.Context, userID string, from, to int64, limit int) ([]db_models.Schedule, error) {
	args := m.Called(ctx, userID, from, to, limit)
	return args.Get(0).([]db_models.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) CountByUserAndStatus(ctx context.Context, userID string, status db_models.ScheduleStatus) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) CountOverdue(ctx context.Context, userID string, now int64) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) CountDueBetween(ctx context.Context, userID string, from, to int64) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) CategoryCounts(ctx context.Context, userID string) (map[string]int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id string) (*db_models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *db_models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, filter repositories.NotificationFilter) ([]db_models.Notification, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]db_models.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) Recent(ctx context.Context, userID string, limit int) ([]db_models.Notification, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]db_models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) TypeCounts(ctx context.Context, userID string) (map[string]int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) Insert(ctx context.Context, post *db_models.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockForumRepository) FindByID(ctx context.Context, id string) (*db_models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) Save(ctx context.Context, post *db_models.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockForumRepository) ListActive(ctx context.Context, filter repositories.ForumFilter) ([]db_models.ForumPost, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]db_models.ForumPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockForumRepository) ListAllActive(ctx context.Context) ([]db_models.ForumPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]db_models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) GetStats(ctx context.Context) (*db_models.ForumStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.ForumStats), args.Error(1)
}

func (m *MockForumRepository) SaveStats(ctx context.Context, stats *db_models.ForumStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) InsertData(ctx context.Context, data *db_models.AnalyticsData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ListDataBetween(ctx context.Context, userID string, start, end int64) ([]db_models.AnalyticsData, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).([]db_models.AnalyticsData), args.Error(1)
}

func (m *MockAnalyticsRepository) ListRecentData(ctx context.Context, userID string, since int64, limit int) ([]db_models.AnalyticsData, error) {
	args := m.Called(ctx, userID, since, limit)
	return args.Get(0).([]db_models.AnalyticsData), args.Error(1)
}

func (m *MockAnalyticsRepository) FindSummary(ctx context.Context, userID string, period db_models.SummaryPeriod, start, end int64) (*db_models.AnalyticsSummary, error) {
	args := m.Called(ctx, userID, period, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.AnalyticsSummary), args.Error(1)
}

func (m *MockAnalyticsRepository) InsertSummary(ctx context.Context, summary *db_models.AnalyticsSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumPaid(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
