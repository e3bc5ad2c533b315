package services

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

// recentDataWindow bounds the per-crop analytics scan; snapshots are
// filtered in Go because cropBreakdown lives in a serialized column.
const recentDataWindow = 100

type AnalyticsServiceInterface interface {
	GetData(ctx context.Context, userID string, start, end int64) ([]db_models.AnalyticsData, error)
	GetSummary(ctx context.Context, userID, period string) (*db_models.AnalyticsSummary, error)
	GetDashboardAnalytics(ctx context.Context, userID string) (*response_models.DashboardAnalyticsResponse, error)
	Record(ctx context.Context, userID string, req request_models.RecordAnalyticsRequest) (*db_models.AnalyticsData, error)
	GetCropPerformance(ctx context.Context, userID, cropID string) ([]response_models.CropPerformance, error)
}

type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	cropRepo      repositories.CropRepository
	logger        *zap.Logger
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	cropRepo repositories.CropRepository,
	logger *zap.Logger,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		cropRepo:      cropRepo,
		logger:        logger,
	}
}

func (s *AnalyticsService) GetData(ctx context.Context, userID string, start, end int64) ([]db_models.AnalyticsData, error) {
	now := time.Now()
	if start == 0 {
		start = now.AddDate(0, 0, -30).Unix()
	}
	if end == 0 {
		end = now.Unix()
	}

	data, err := s.analyticsRepo.ListDataBetween(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("listing analytics data failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return data, nil
}

func (s *AnalyticsService) GetSummary(ctx context.Context, userID, period string) (*db_models.AnalyticsSummary, error) {
	if period == "" {
		period = string(db_models.PeriodMonthly)
	}

	start, end, err := PeriodRange(db_models.SummaryPeriod(period), time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := s.analyticsRepo.FindSummary(ctx, userID, db_models.SummaryPeriod(period), start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if summary != nil {
		return summary, nil
	}

	return s.generateSummary(ctx, userID, db_models.SummaryPeriod(period), start, end)
}

// PeriodRange resolves a summary period to its unix-second bounds.
func PeriodRange(period db_models.SummaryPeriod, now time.Time) (int64, int64, error) {
	switch period {
	case db_models.PeriodDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return start.Unix(), end.Unix(), nil
	case db_models.PeriodWeekly:
		return now.AddDate(0, 0, -7).Unix(), now.Unix(), nil
	case db_models.PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start.Unix(), now.Unix(), nil
	case db_models.PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start.Unix(), now.Unix(), nil
	default:
		return 0, 0, utils.ErrInvalidPeriod
	}
}

func (s *AnalyticsService) generateSummary(ctx context.Context, userID string, period db_models.SummaryPeriod, start, end int64) (*db_models.AnalyticsSummary, error) {
	crops, err := s.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	data, err := s.analyticsRepo.ListDataBetween(ctx, userID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var totalRevenue, totalExpenses, growthSum float64
	revenueByCrop := make(map[string]float64)
	trends := db_models.TrendSeries{
		Revenue:  make([]db_models.TrendPoint, 0, len(data)),
		Yield:    make([]db_models.TrendPoint, 0, len(data)),
		Expenses: make([]db_models.TrendPoint, 0, len(data)),
	}

	for i := range data {
		snapshot := &data[i]
		totalRevenue += snapshot.Metrics.TotalRevenue
		totalExpenses += snapshot.Metrics.TotalExpenses
		growthSum += snapshot.Metrics.GrowthRate

		for _, entry := range snapshot.CropBreakdown {
			revenueByCrop[entry.CropName] += entry.Revenue
		}

		trends.Revenue = append(trends.Revenue, db_models.TrendPoint{Date: snapshot.Date, Value: snapshot.Metrics.TotalRevenue})
		trends.Yield = append(trends.Yield, db_models.TrendPoint{Date: snapshot.Date, Value: snapshot.Metrics.TotalYield})
		trends.Expenses = append(trends.Expenses, db_models.TrendPoint{Date: snapshot.Date, Value: snapshot.Metrics.TotalExpenses})
	}

	averageGrowthRate := 0.0
	if len(data) > 0 {
		averageGrowthRate = growthSum / float64(len(data))
	}

	bestCrop := "None"
	bestRevenue := math.Inf(-1)
	for name, revenue := range revenueByCrop {
		if revenue > bestRevenue {
			bestCrop = name
			bestRevenue = revenue
		}
	}

	harvested := 0
	for _, crop := range crops {
		if crop.Status == db_models.CropStatusHarvested {
			harvested++
		}
	}

	soilHealthTrend := "stable"
	if averageGrowthRate > 0 {
		soilHealthTrend = "improving"
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	summary := &db_models.AnalyticsSummary{
		UserID:    uid,
		Period:    period,
		StartDate: start,
		EndDate:   end,
		Summary: db_models.SummaryMetrics{
			TotalRevenue:       totalRevenue,
			TotalExpenses:      totalExpenses,
			NetProfit:          totalRevenue - totalExpenses,
			AverageGrowthRate:  averageGrowthRate,
			BestPerformingCrop: bestCrop,
			TotalHarvests:      harvested,
			SoilHealthTrend:    soilHealthTrend,
		},
		Trends: trends,
	}

	if err := s.analyticsRepo.InsertSummary(ctx, summary); err != nil {
		s.logger.Error("persisting analytics summary failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *AnalyticsService) GetDashboardAnalytics(ctx context.Context, userID string) (*response_models.DashboardAnalyticsResponse, error) {
	crops, err := s.cropRepo.ListByUser(ctx, userID)
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

	growthRate := 0.0
	if totalCrops > 0 {
		growthRate = math.Round(float64(activeCrops) / float64(totalCrops) * 100)
	}

	recent, err := s.analyticsRepo.ListRecentData(ctx, userID, time.Now().AddDate(0, 0, -30).Unix(), 7)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	labels := make([]string, 0, len(recent))
	revenue := make([]float64, 0, len(recent))
	expenses := make([]float64, 0, len(recent))
	for i := range recent {
		labels = append(labels, time.Unix(recent[i].Date, 0).Format("1/2/2006"))
		revenue = append(revenue, recent[i].Metrics.TotalRevenue)
		expenses = append(expenses, recent[i].Metrics.TotalExpenses)
	}

	recentActivity := []db_models.ActivityEntry{}
	if len(recent) > 0 {
		recentActivity = recent[0].Activities
		if len(recentActivity) > 5 {
			recentActivity = recentActivity[:5]
		}
	}

	breakdown := make([]db_models.CropBreakdownEntry, 0, 5)
	for i, crop := range crops {
		if i == 5 {
			break
		}
		breakdown = append(breakdown, db_models.CropBreakdownEntry{
			CropID:   crop.ID,
			CropName: crop.Name,
			Yield:    crop.TotalIncome,
			Revenue:  crop.TotalIncome,
			Expenses: crop.Expenses,
		})
	}

	return &response_models.DashboardAnalyticsResponse{
		Metrics: db_models.Metrics{
			TotalCrops:    totalCrops,
			ActiveCrops:   activeCrops,
			TotalYield:    totalIncome,
			TotalRevenue:  totalIncome,
			TotalExpenses: totalExpenses,
			NetProfit:     totalIncome - totalExpenses,
			GrowthRate:    growthRate,
			// No sensor integration yet, so these two are simulated
			// within plausible bounds.
			SoilHealth:        math.Max(60, math.Min(95, 85+rand.Float64()*10)),
			HarvestEfficiency: math.Max(70, math.Min(95, 80+rand.Float64()*15)),
		},
		ChartData: response_models.ChartData{
			Labels: labels,
			Datasets: []response_models.ChartDataset{
				{
					Label:           "Revenue (₹)",
					Data:            revenue,
					BorderColor:     "#2c662d",
					BackgroundColor: "rgba(44, 102, 45, 0.2)",
					Tension:         0.4,
				},
				{
					Label:           "Expenses (₹)",
					Data:            expenses,
					BorderColor:     "#dc3545",
					BackgroundColor: "rgba(220, 53, 69, 0.2)",
					Tension:         0.4,
				},
			},
		},
		RecentActivity: recentActivity,
		CropBreakdown:  breakdown,
	}, nil
}

func (s *AnalyticsService) Record(ctx context.Context, userID string, req request_models.RecordAnalyticsRequest) (*db_models.AnalyticsData, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	data := &db_models.AnalyticsData{
		UserID:        uid,
		Date:          req.Date,
		Metrics:       *req.Metrics,
		CropBreakdown: req.CropBreakdown,
		Activities:    req.Activities,
	}
	if req.WeatherData != nil {
		data.WeatherData = *req.WeatherData
	}
	if data.CropBreakdown == nil {
		data.CropBreakdown = []db_models.CropBreakdownEntry{}
	}
	if data.Activities == nil {
		data.Activities = []db_models.ActivityEntry{}
	}

	if err := s.analyticsRepo.InsertData(ctx, data); err != nil {
		s.logger.Error("recording analytics data failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return data, nil
}

func (s *AnalyticsService) GetCropPerformance(ctx context.Context, userID, cropID string) ([]response_models.CropPerformance, error) {
	var crops []db_models.Crop
	if cropID != "" {
		crop, err := s.cropRepo.FindByIDForUser(ctx, cropID, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if crop == nil {
			return nil, utils.ErrCropNotFound
		}
		crops = []db_models.Crop{*crop}
	} else {
		var err error
		crops, err = s.cropRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	recent, err := s.analyticsRepo.ListRecentData(ctx, userID, 0, recentDataWindow)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	performance := make([]response_models.CropPerformance, 0, len(crops))
	for _, crop := range crops {
		cropAnalytics := make([]db_models.AnalyticsData, 0)
		for i := range recent {
			if len(cropAnalytics) == 10 {
				break
			}
			for _, entry := range recent[i].CropBreakdown {
				if entry.CropID == crop.ID {
					cropAnalytics = append(cropAnalytics, recent[i])
					break
				}
			}
		}

		profitMargin := 0.0
		if crop.TotalIncome > 0 {
			profitMargin = (crop.TotalIncome - crop.Expenses) / crop.TotalIncome * 100
		}

		performance = append(performance, response_models.CropPerformance{
			CropID:              crop.ID.String(),
			CropName:            crop.Name,
			TotalRevenue:        crop.TotalIncome,
			TotalExpenses:       crop.Expenses,
			ProfitMargin:        profitMargin,
			Status:              string(crop.Status),
			PlantedDate:         crop.PlantedDate,
			ExpectedHarvestDate: crop.ExpectedHarvestDate,
			Area:                crop.Area,
			Location:            crop.Location,
			RecentAnalytics:     cropAnalytics,
		})
	}

	return performance, nil
}
