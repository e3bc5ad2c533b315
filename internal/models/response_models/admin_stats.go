package response_models

type UserBrief struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

type CropBrief struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	TotalIncome float64 `json:"totalIncome"`
	Expenses    float64 `json:"expenses"`
	CreatedAt   int64   `json:"createdAt"`
	Username    string  `json:"username"`
}

type UserTrendPoint struct {
	Month  string `json:"month"`
	Total  int64  `json:"total"`
	Active int64  `json:"active"`
}

type FinancialTrendPoint struct {
	Month string `json:"month"`
	Net   int64  `json:"net"`
}

type AdminStatsResponse struct {
	TotalUsers     int64                 `json:"totalUsers"`
	ActiveUsers    int64                 `json:"activeUsers"`
	TotalCrops     int64                 `json:"totalCrops"`
	TotalPayments  int64                 `json:"totalPayments"`
	Revenue        float64               `json:"revenue"`
	TotalIncome    float64               `json:"totalIncome"`
	TotalExpenses  float64               `json:"totalExpenses"`
	NetProfit      float64               `json:"netProfit"`
	CropsByStatus  map[string]int64      `json:"cropsByStatus"`
	UserTrend      []UserTrendPoint      `json:"userTrend"`
	FinancialTrend []FinancialTrendPoint `json:"financialTrend"`
	RecentUsers    []UserBrief           `json:"recentUsers"`
	RecentCrops    []CropBrief           `json:"recentCrops"`
	LastUpdated    string                `json:"lastUpdated"`
}

type UserSummaryResponse struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
	Active int64 `json:"active"`
}

type ProgressTrendPoint struct {
	Month    string `json:"month"`
	Progress int    `json:"progress"`
}

type UserDashboardTotals struct {
	TotalCrops    int     `json:"totalCrops"`
	ActiveCrops   int     `json:"activeCrops"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  int     `json:"profitMargin"`
}

type UserDashboardSummaryResponse struct {
	User          UserBrief            `json:"user"`
	Totals        UserDashboardTotals  `json:"totals"`
	ProgressTrend []ProgressTrendPoint `json:"progressTrend"`
}
