package response_models

type DashboardStats struct {
	Crops        int    `json:"crops"`
	TotalCrops   int    `json:"totalCrops"`
	SoilHealth   string `json:"soilHealth"`
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpenses"`
	NetProfit    string `json:"netProfit"`
	ProfitMargin string `json:"profitMargin"`
	NextTask     string `json:"nextTask"`
	Analytics    string `json:"analytics"`
}

type ActivityItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Time int64  `json:"time"`
	Type string `json:"type"`
}

type UpcomingTask struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Date     int64  `json:"date"`
	Priority string `json:"priority"`
}

type DashboardResponse struct {
	Stats           DashboardStats         `json:"stats"`
	Preferences     map[string]interface{} `json:"preferences"`
	Activities      []ActivityItem         `json:"activities"`
	WeatherAlerts   []string               `json:"weatherAlerts"`
	Recommendations []string               `json:"recommendations"`
	UpcomingTasks   []UpcomingTask         `json:"upcomingTasks"`
	LastUpdated     string                 `json:"lastUpdated"`
}
