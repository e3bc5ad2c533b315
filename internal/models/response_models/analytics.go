package response_models

import "verdure/internal/models/db_models"

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type DashboardAnalyticsResponse struct {
	Metrics        db_models.Metrics              `json:"metrics"`
	ChartData      ChartData                      `json:"chartData"`
	RecentActivity []db_models.ActivityEntry      `json:"recentActivity"`
	CropBreakdown  []db_models.CropBreakdownEntry `json:"cropBreakdown"`
}

type CropPerformance struct {
	CropID              string                    `json:"cropId"`
	CropName            string                    `json:"cropName"`
	TotalRevenue        float64                   `json:"totalRevenue"`
	TotalExpenses       float64                   `json:"totalExpenses"`
	ProfitMargin        float64                   `json:"profitMargin"`
	Status              string                    `json:"status"`
	PlantedDate         int64                     `json:"plantedDate"`
	ExpectedHarvestDate *int64                    `json:"expectedHarvestDate,omitempty"`
	Area                float64                   `json:"area"`
	Location            string                    `json:"location"`
	RecentAnalytics     []db_models.AnalyticsData `json:"recentAnalytics"`
}
