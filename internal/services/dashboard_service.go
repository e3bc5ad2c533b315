package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error)
	UpdateDashboard(ctx context.Context, userID string, req request_models.UpdateDashboardRequest) (*db_models.DashboardBlob, error)
}

type DashboardService struct {
	userRepo         repositories.UserRepository
	cropRepo         repositories.CropRepository
	scheduleRepo     repositories.ScheduleRepository
	notificationRepo repositories.NotificationRepository
	analyticsRepo    repositories.AnalyticsRepository
	logger           *zap.Logger
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	cropRepo repositories.CropRepository,
	scheduleRepo repositories.ScheduleRepository,
	notificationRepo repositories.NotificationRepository,
	analyticsRepo repositories.AnalyticsRepository,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		userRepo:         userRepo,
		cropRepo:         cropRepo,
		scheduleRepo:     scheduleRepo,
		notificationRepo: notificationRepo,
		analyticsRepo:    analyticsRepo,
		logger:           logger,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	crops, err := s.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	schedules, err := s.scheduleRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	notifications, err := s.notificationRepo.Recent(ctx, userID, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	snapshots, err := s.analyticsRepo.ListRecentData(ctx, userID, 0, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalCrops := len(crops)
	activeCrops := 0
	var totalIncome, totalExpenses float64
	for _, crop := range crops {
		if crop.Status != db_models.CropStatusHarvested {
			activeCrops++
		}
		totalIncome += crop.TotalIncome
		totalExpenses += crop.Expenses
	}
	netProfit := totalIncome - totalExpenses
	avgSoilHealth := averageSoilHealth(crops)

	profitMargin := "0%"
	if totalIncome > 0 {
		profitMargin = fmt.Sprintf("%d%%", int(math.Round(netProfit/totalIncome*100)))
	}

	stats := response_models.DashboardStats{
		Crops:        activeCrops,
		TotalCrops:   totalCrops,
		SoilHealth:   fmt.Sprintf("%d%%", int(math.Round(avgSoilHealth))),
		TotalIncome:  formatMoney(totalIncome),
		TotalExpense: formatMoney(totalExpenses),
		NetProfit:    formatMoney(netProfit),
		ProfitMargin: profitMargin,
		NextTask:     nextTaskMessage(schedules, time.Now()),
		Analytics:    analyticsLine(snapshots, totalIncome, totalExpenses),
	}

	return &response_models.DashboardResponse{
		Stats:           stats,
		Preferences:     preferencesOrEmpty(user),
		Activities:      recentActivities(crops, schedules, notifications, user.CreatedAt),
		WeatherAlerts:   weatherAlerts(notifications),
		Recommendations: recommendations(crops, avgSoilHealth, schedules),
		UpcomingTasks:   upcomingTasks(schedules, time.Now()),
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *DashboardService) UpdateDashboard(ctx context.Context, userID string, req request_models.UpdateDashboardRequest) (*db_models.DashboardBlob, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.Stats != nil {
		user.DashboardData.Stats = req.Stats
	}
	if req.Preferences != nil {
		user.DashboardData.Preferences = req.Preferences
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("updating dashboard blob failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &user.DashboardData, nil
}

func preferencesOrEmpty(user *db_models.User) map[string]interface{} {
	if user.DashboardData.Preferences == nil {
		return map[string]interface{}{}
	}
	return user.DashboardData.Preferences
}

// averageSoilHealth averages over crops that actually report a reading;
// with no readings the dashboard shows a neutral 75.
func averageSoilHealth(crops []db_models.Crop) float64 {
	var sum float64
	count := 0
	for _, crop := range crops {
		if crop.SoilHealth != nil {
			sum += *crop.SoilHealth
			count++
		}
	}
	if count == 0 {
		return 75
	}
	return sum / float64(count)
}

func nextTaskMessage(schedules []db_models.Schedule, now time.Time) string {
	if len(schedules) == 0 {
		return "No upcoming tasks"
	}
	for _, schedule := range schedules {
		if schedule.Status != db_models.ScheduleStatusCompleted && schedule.DueDate > now.Unix() {
			return fmt.Sprintf("%s - Due %s", schedule.Title, time.Unix(schedule.DueDate, 0).Format("1/2/2006"))
		}
	}
	return "All tasks completed"
}

func analyticsLine(snapshots []db_models.AnalyticsData, totalIncome, totalExpenses float64) string {
	if len(snapshots) == 0 {
		return "No analytics data yet"
	}

	latest := snapshots[0]
	revenue := latest.Metrics.TotalRevenue
	if revenue == 0 {
		revenue = totalIncome
	}
	expenses := latest.Metrics.TotalExpenses
	if expenses == 0 {
		expenses = totalExpenses
	}
	cropCount := latest.Metrics.TotalCrops
	if cropCount == 0 {
		cropCount = 1
	}

	avgYield := revenue / float64(cropCount)
	margin := 0
	if revenue > 0 {
		margin = int(math.Round((revenue - expenses) * 100 / revenue))
	}
	return fmt.Sprintf("Avg Yield: %s | Profit Margin: %d%%", formatMoney(avgYield), margin)
}

func recentActivities(
	crops []db_models.Crop,
	schedules []db_models.Schedule,
	notifications []db_models.Notification,
	joinedAt int64,
) []response_models.ActivityItem {
	activities := []response_models.ActivityItem{
		{ID: 1, Text: "Joined Verdure platform", Time: joinedAt, Type: "system"},
	}

	for i, crop := range crops {
		if i == 2 {
			break
		}
		activities = append(activities, response_models.ActivityItem{
			ID:   i + 2,
			Text: fmt.Sprintf("Added %s crop", crop.Name),
			Time: crop.CreatedAt,
			Type: "crop",
		})
	}
	for i, schedule := range schedules {
		if i == 2 {
			break
		}
		activities = append(activities, response_models.ActivityItem{
			ID:   len(crops) + i + 3,
			Text: fmt.Sprintf("Scheduled: %s", schedule.Title),
			Time: schedule.CreatedAt,
			Type: "schedule",
		})
	}
	for i, notification := range notifications {
		if i == 1 {
			break
		}
		activities = append(activities, response_models.ActivityItem{
			ID:   len(crops) + len(schedules) + i + 4,
			Text: notification.Message,
			Time: notification.CreatedAt,
			Type: "notification",
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time > activities[j].Time
	})
	return activities
}

func weatherAlerts(notifications []db_models.Notification) []string {
	alerts := []string{}
	for _, notification := range notifications {
		if len(alerts) == 2 {
			break
		}
		message := strings.ToLower(notification.Message)
		if notification.Type == db_models.NotificationWeather ||
			strings.Contains(message, "weather") ||
			strings.Contains(message, "rain") ||
			strings.Contains(message, "temperature") {
			alerts = append(alerts, notification.Message)
		}
	}
	return alerts
}

func recommendations(crops []db_models.Crop, soilHealth float64, schedules []db_models.Schedule) []string {
	recs := []string{}

	if soilHealth < 70 {
		recs = append(recs, "💡 Soil health is low - consider adding organic compost")
	}

	if len(crops) == 0 {
		recs = append(recs, "💡 Start by adding your first crop to track progress")
	} else if len(crops) < 3 {
		recs = append(recs, "💡 Consider diversifying with more crop varieties")
	}

	pending := 0
	for _, schedule := range schedules {
		if schedule.Status != db_models.ScheduleStatusCompleted {
			pending++
		}
	}
	if pending > 5 {
		recs = append(recs, "💡 You have multiple pending tasks - prioritize based on due dates")
	}

	recs = append(recs,
		"💡 Water your crops early morning for better absorption",
		"💡 Check for pests regularly during growing season",
	)

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func upcomingTasks(schedules []db_models.Schedule, now time.Time) []response_models.UpcomingTask {
	pending := make([]db_models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.Status != db_models.ScheduleStatusCompleted && schedule.DueDate > now.Unix() {
			pending = append(pending, schedule)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})
	if len(pending) > 3 {
		pending = pending[:3]
	}

	tasks := make([]response_models.UpcomingTask, 0, len(pending))
	for i, schedule := range pending {
		priority := string(schedule.Priority)
		if priority == "" {
			priority = string(db_models.PriorityMedium)
		}
		tasks = append(tasks, response_models.UpcomingTask{
			ID:       i + 1,
			Text:     schedule.Title,
			Date:     schedule.DueDate,
			Priority: priority,
		})
	}
	return tasks
}

// formatMoney renders a rupee amount with comma grouping, matching what
// the web client expects to display verbatim.
func formatMoney(amount float64) string {
	negative := amount < 0
	whole := int64(math.Round(math.Abs(amount)))

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-₹" + b.String()
	}
	return "₹" + b.String()
}
