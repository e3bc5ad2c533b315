package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"verdure/internal/models/db_models"
)

func TestNextTaskMessage(t *testing.T) {
	now := time.Now()

	t.Run("no schedules at all", func(t *testing.T) {
		assert.Equal(t, "No upcoming tasks", nextTaskMessage(nil, now))
	})

	t.Run("first future pending schedule wins", func(t *testing.T) {
		schedules := []db_models.Schedule{
			{Title: "Old job", Status: db_models.ScheduleStatusCompleted, DueDate: now.AddDate(0, 0, 1).Unix()},
			{Title: "Water tomatoes", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, 2).Unix()},
		}
		msg := nextTaskMessage(schedules, now)
		assert.Contains(t, msg, "Water tomatoes")
		assert.Contains(t, msg, "Due")
	})

	t.Run("everything done or overdue", func(t *testing.T) {
		schedules := []db_models.Schedule{
			{Title: "Done", Status: db_models.ScheduleStatusCompleted, DueDate: now.AddDate(0, 0, 3).Unix()},
			{Title: "Past", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, -1).Unix()},
		}
		assert.Equal(t, "All tasks completed", nextTaskMessage(schedules, now))
	})
}

func TestAverageSoilHealth(t *testing.T) {
	t.Run("defaults to 75 without readings", func(t *testing.T) {
		crops := []db_models.Crop{{Name: "Rice"}, {Name: "Wheat"}}
		assert.Equal(t, float64(75), averageSoilHealth(crops))
	})

	t.Run("averages only reporting crops", func(t *testing.T) {
		a, b := 80.0, 60.0
		crops := []db_models.Crop{
			{Name: "Rice", SoilHealth: &a},
			{Name: "Wheat", SoilHealth: &b},
			{Name: "Maize"},
		}
		assert.Equal(t, float64(70), averageSoilHealth(crops))
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹0", formatMoney(0))
	assert.Equal(t, "₹950", formatMoney(950))
	assert.Equal(t, "₹1,000", formatMoney(1000))
	assert.Equal(t, "₹1,234,567", formatMoney(1234567))
	assert.Equal(t, "-₹12,500", formatMoney(-12500))
}

func TestAnalyticsLine(t *testing.T) {
	t.Run("no snapshots", func(t *testing.T) {
		assert.Equal(t, "No analytics data yet", analyticsLine(nil, 100, 50))
	})

	t.Run("derives yield and margin from the latest snapshot", func(t *testing.T) {
		snapshots := []db_models.AnalyticsData{
			{Metrics: db_models.Metrics{TotalRevenue: 1000, TotalExpenses: 400, TotalCrops: 2}},
			{Metrics: db_models.Metrics{TotalRevenue: 9999}},
		}
		// 1000/2 yield, (600*100)/1000 margin.
		assert.Equal(t, "Avg Yield: ₹500 | Profit Margin: 60%", analyticsLine(snapshots, 0, 0))
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("low soil health and empty farm lead the list", func(t *testing.T) {
		recs := recommendations(nil, 50, nil)
		assert.Len(t, recs, 3)
		assert.Contains(t, recs[0], "organic compost")
		assert.Contains(t, recs[1], "first crop")
	})

	t.Run("healthy diversified farm gets the generic tips", func(t *testing.T) {
		crops := []db_models.Crop{{}, {}, {}, {}}
		recs := recommendations(crops, 85, nil)
		assert.Len(t, recs, 2)
		assert.Contains(t, recs[0], "early morning")
	})

	t.Run("pending task overload", func(t *testing.T) {
		schedules := make([]db_models.Schedule, 6)
		for i := range schedules {
			schedules[i].Status = db_models.ScheduleStatusPending
		}
		recs := recommendations([]db_models.Crop{{}, {}, {}}, 85, schedules)
		assert.Contains(t, recs[0], "pending tasks")
	})
}

func TestWeatherAlerts(t *testing.T) {
	notifications := []db_models.Notification{
		{Type: db_models.NotificationWeather, Message: "Storm expected tonight"},
		{Type: db_models.NotificationCrop, Message: "Heavy RAIN forecast for your area"},
		{Type: db_models.NotificationSystem, Message: "Your profile was updated"},
		{Type: db_models.NotificationCrop, Message: "temperature dropping below 5C"},
	}

	alerts := weatherAlerts(notifications)

	// Matching is by type or keyword, capped at two.
	assert.Equal(t, []string{"Storm expected tonight", "Heavy RAIN forecast for your area"}, alerts)
}

func TestUpcomingTasks(t *testing.T) {
	now := time.Now()
	schedules := []db_models.Schedule{
		{Title: "C", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, 5).Unix()},
		{Title: "A", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, 1).Unix()},
		{Title: "Done", Status: db_models.ScheduleStatusCompleted, DueDate: now.AddDate(0, 0, 2).Unix()},
		{Title: "B", Status: db_models.ScheduleStatusInProgress, DueDate: now.AddDate(0, 0, 3).Unix()},
		{Title: "D", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, 8).Unix()},
		{Title: "Past", Status: db_models.ScheduleStatusPending, DueDate: now.AddDate(0, 0, -1).Unix()},
	}

	tasks := upcomingTasks(schedules, now)

	assert.Len(t, tasks, 3)
	assert.Equal(t, "A", tasks[0].Text)
	assert.Equal(t, "B", tasks[1].Text)
	assert.Equal(t, "C", tasks[2].Text)
	assert.Equal(t, "medium", tasks[0].Priority)
}

func TestRecentActivities(t *testing.T) {
	base := time.Now().Unix()

	crops := []db_models.Crop{{Name: "Tomato"}, {Name: "Rice"}, {Name: "Ignored"}}
	crops[0].CreatedAt = base - 100
	crops[1].CreatedAt = base - 50
	crops[2].CreatedAt = base - 10

	schedules := []db_models.Schedule{{Title: "Weed rows"}}
	schedules[0].CreatedAt = base - 20

	notifications := []db_models.Notification{{Message: "Rain tomorrow"}}
	notifications[0].CreatedAt = base - 5

	activities := recentActivities(crops, schedules, notifications, base-1000)

	// Join entry + two crops + one schedule + one notification.
	assert.Len(t, activities, 5)
	assert.Equal(t, "Rain tomorrow", activities[0].Text)
	assert.Equal(t, "Joined Verdure platform", activities[len(activities)-1].Text)
	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i-1].Time, activities[i].Time)
	}
}
