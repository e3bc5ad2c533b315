package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"verdure/internal/models/db_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

	t.Run("daily covers the calendar day", func(t *testing.T) {
		start, end, err := services.PeriodRange(db_models.PeriodDaily, now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC).Unix(), start)
		assert.Equal(t, time.Date(2026, time.August, 15, 23, 59, 59, 0, time.UTC).Unix(), end)
	})

	t.Run("weekly looks back seven days", func(t *testing.T) {
		start, end, err := services.PeriodRange(db_models.PeriodWeekly, now)
		assert.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -7).Unix(), start)
		assert.Equal(t, now.Unix(), end)
	})

	t.Run("monthly starts at the first of the month", func(t *testing.T) {
		start, _, err := services.PeriodRange(db_models.PeriodMonthly, now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC).Unix(), start)
	})

	t.Run("yearly starts on January first", func(t *testing.T) {
		start, _, err := services.PeriodRange(db_models.PeriodYearly, now)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(), start)
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		_, _, err := services.PeriodRange("quarterly", now)
		assert.ErrorIs(t, err, utils.ErrInvalidPeriod)
	})
}

func TestAnalyticsService_GetSummary(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("a cached summary is served untouched", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		cached := &db_models.AnalyticsSummary{
			UserID: userID,
			Period: db_models.PeriodMonthly,
			Summary: db_models.SummaryMetrics{
				TotalRevenue:       9000,
				BestPerformingCrop: "Tomato",
			},
		}
		analyticsRepo.On("FindSummary", ctx, userID.String(), db_models.PeriodMonthly,
			mock.Anything, mock.Anything).Return(cached, nil)

		summary, err := service.GetSummary(ctx, userID.String(), "monthly")

		assert.NoError(t, err)
		assert.Equal(t, cached, summary)
		analyticsRepo.AssertNotCalled(t, "InsertSummary", mock.Anything, mock.Anything)
	})

	t.Run("invalid period", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		summary, err := service.GetSummary(ctx, userID.String(), "fortnightly")
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, utils.ErrInvalidPeriod)
	})

	t.Run("generates, persists and aggregates when nothing is cached", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		analyticsRepo.On("FindSummary", ctx, userID.String(), db_models.PeriodWeekly,
			mock.Anything, mock.Anything).Return(nil, nil)
		cropRepo.On("ListByUser", ctx, userID.String()).Return([]db_models.Crop{
			{Status: db_models.CropStatusHarvested},
			{Status: db_models.CropStatusHarvested},
			{Status: db_models.CropStatusGrowing},
		}, nil)

		snapshots := []db_models.AnalyticsData{
			{
				Date:    time.Now().AddDate(0, 0, -2).Unix(),
				Metrics: db_models.Metrics{TotalRevenue: 1000, TotalExpenses: 400, GrowthRate: 10},
				CropBreakdown: []db_models.CropBreakdownEntry{
					{CropName: "Tomato", Revenue: 700},
					{CropName: "Onion", Revenue: 300},
				},
			},
			{
				Date:    time.Now().AddDate(0, 0, -1).Unix(),
				Metrics: db_models.Metrics{TotalRevenue: 500, TotalExpenses: 100, GrowthRate: 20},
				CropBreakdown: []db_models.CropBreakdownEntry{
					{CropName: "Onion", Revenue: 500},
				},
			},
		}
		analyticsRepo.On("ListDataBetween", ctx, userID.String(), mock.Anything, mock.Anything).
			Return(snapshots, nil)
		analyticsRepo.On("InsertSummary", ctx, mock.Anything).Return(nil)

		summary, err := service.GetSummary(ctx, userID.String(), "weekly")

		assert.NoError(t, err)
		assert.Equal(t, float64(1500), summary.Summary.TotalRevenue)
		assert.Equal(t, float64(500), summary.Summary.TotalExpenses)
		assert.Equal(t, float64(1000), summary.Summary.NetProfit)
		assert.Equal(t, float64(15), summary.Summary.AverageGrowthRate)
		// Onion totals 800 against Tomato's 700.
		assert.Equal(t, "Onion", summary.Summary.BestPerformingCrop)
		assert.Equal(t, 2, summary.Summary.TotalHarvests)
		assert.Equal(t, "improving", summary.Summary.SoilHealthTrend)
		assert.Len(t, summary.Trends.Revenue, 2)
		analyticsRepo.AssertExpectations(t)
	})

	t.Run("empty range yields None and a stable trend", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		analyticsRepo.On("FindSummary", ctx, userID.String(), db_models.PeriodDaily,
			mock.Anything, mock.Anything).Return(nil, nil)
		cropRepo.On("ListByUser", ctx, userID.String()).Return([]db_models.Crop{}, nil)
		analyticsRepo.On("ListDataBetween", ctx, userID.String(), mock.Anything, mock.Anything).
			Return([]db_models.AnalyticsData{}, nil)
		analyticsRepo.On("InsertSummary", ctx, mock.Anything).Return(nil)

		summary, err := service.GetSummary(ctx, userID.String(), "daily")

		assert.NoError(t, err)
		assert.Equal(t, "None", summary.Summary.BestPerformingCrop)
		assert.Equal(t, float64(0), summary.Summary.AverageGrowthRate)
		assert.Equal(t, "stable", summary.Summary.SoilHealthTrend)
	})
}

func TestAnalyticsService_GetDashboardAnalytics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New()

	analyticsRepo := new(MockAnalyticsRepository)
	cropRepo := new(MockCropRepository)
	service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

	cropRepo.On("ListByUser", ctx, userID.String()).Return([]db_models.Crop{
		{Name: "Tomato", Status: db_models.CropStatusGrowing, TotalIncome: 1200, Expenses: 300},
		{Name: "Rice", Status: db_models.CropStatusHarvested, TotalIncome: 800, Expenses: 500},
	}, nil)
	analyticsRepo.On("ListRecentData", ctx, userID.String(), mock.Anything, 7).
		Return([]db_models.AnalyticsData{}, nil)

	result, err := service.GetDashboardAnalytics(ctx, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Metrics.TotalCrops)
	assert.Equal(t, 1, result.Metrics.ActiveCrops)
	assert.Equal(t, float64(2000), result.Metrics.TotalRevenue)
	assert.Equal(t, float64(1200), result.Metrics.NetProfit)
	assert.Equal(t, float64(50), result.Metrics.GrowthRate)
	assert.GreaterOrEqual(t, result.Metrics.SoilHealth, float64(60))
	assert.LessOrEqual(t, result.Metrics.SoilHealth, float64(95))
	assert.Len(t, result.ChartData.Datasets, 2)
	assert.Equal(t, "#2c662d", result.ChartData.Datasets[0].BorderColor)
	assert.Len(t, result.CropBreakdown, 2)
}

func TestAnalyticsService_GetCropPerformance(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unknown crop is a not-found", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		cropID := uuid.New().String()
		cropRepo.On("FindByIDForUser", ctx, cropID, userID.String()).Return(nil, nil)

		result, err := service.GetCropPerformance(ctx, userID.String(), cropID)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrCropNotFound)
	})

	t.Run("margin and matching snapshots per crop", func(t *testing.T) {
		analyticsRepo := new(MockAnalyticsRepository)
		cropRepo := new(MockCropRepository)
		service := services.NewAnalyticsService(analyticsRepo, cropRepo, logger)

		crop := db_models.Crop{Name: "Tomato", TotalIncome: 1000, Expenses: 400, Status: db_models.CropStatusGrowing}
		crop.ID = uuid.New()
		cropRepo.On("FindByIDForUser", ctx, crop.ID.String(), userID.String()).Return(&crop, nil)

		analyticsRepo.On("ListRecentData", ctx, userID.String(), int64(0), mock.Anything).
			Return([]db_models.AnalyticsData{
				{CropBreakdown: []db_models.CropBreakdownEntry{{CropID: crop.ID, CropName: "Tomato"}}},
				{CropBreakdown: []db_models.CropBreakdownEntry{{CropID: uuid.New(), CropName: "Other"}}},
			}, nil)

		result, err := service.GetCropPerformance(ctx, userID.String(), crop.ID.String())

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, float64(60), result[0].ProfitMargin)
		assert.Len(t, result[0].RecentAnalytics, 1)
	})
}
