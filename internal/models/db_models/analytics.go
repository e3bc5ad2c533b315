package db_models

import (
	"github.com/google/uuid"
)

type Metrics struct {
	TotalCrops        int     `json:"totalCrops"`
	ActiveCrops       int     `json:"activeCrops"`
	TotalYield        float64 `json:"totalYield"` // in kg
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetProfit         float64 `json:"netProfit"`
	SoilHealth        float64 `json:"soilHealth"`        // percentage
	GrowthRate        float64 `json:"growthRate"`        // percentage
	HarvestEfficiency float64 `json:"harvestEfficiency"` // percentage
}

type CropBreakdownEntry struct {
	CropID   uuid.UUID `json:"cropId"`
	CropName string    `json:"cropName"`
	Yield    float64   `json:"yield"`
	Revenue  float64   `json:"revenue"`
	Expenses float64   `json:"expenses"`
}

type WeatherSnapshot struct {
	Temperature float64 `json:"temperature,omitempty"`
	Humidity    float64 `json:"humidity,omitempty"`
	Rainfall    float64 `json:"rainfall,omitempty"`
	Conditions  string  `json:"conditions,omitempty"`
}

type ActivityEntry struct {
	Type        string  `json:"type"` // crop, harvest, expense, ...
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Timestamp   int64   `json:"timestamp"`
}

// AnalyticsData is one recorded snapshot of a user's farm metrics for a
// date. Nothing enforces one snapshot per date.
type AnalyticsData struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Date   int64     `gorm:"not null;index" json:"date"`

	Metrics       Metrics              `gorm:"serializer:json" json:"metrics"`
	CropBreakdown []CropBreakdownEntry `gorm:"serializer:json" json:"cropBreakdown"`
	WeatherData   WeatherSnapshot      `gorm:"serializer:json" json:"weatherData"`
	Activities    []ActivityEntry      `gorm:"serializer:json" json:"activities"`
}

type SummaryPeriod string

const (
	PeriodDaily   SummaryPeriod = "daily"
	PeriodWeekly  SummaryPeriod = "weekly"
	PeriodMonthly SummaryPeriod = "monthly"
	PeriodYearly  SummaryPeriod = "yearly"
)

type SummaryMetrics struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetProfit          float64 `json:"netProfit"`
	AverageGrowthRate  float64 `json:"averageGrowthRate"`
	BestPerformingCrop string  `json:"bestPerformingCrop"`
	TotalHarvests      int     `json:"totalHarvests"`
	SoilHealthTrend    string  `json:"soilHealthTrend"` // improving, declining, stable
}

type TrendPoint struct {
	Date  int64   `json:"date"`
	Value float64 `json:"value"`
}

type TrendSeries struct {
	Revenue  []TrendPoint `json:"revenue"`
	Yield    []TrendPoint `json:"yield"`
	Expenses []TrendPoint `json:"expenses"`
}

// AnalyticsSummary is a lazily computed rollup cached per
// (user, period, start, end); once written it is served as-is.
type AnalyticsSummary struct {
	BaseModel
	UserID    uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	Period    SummaryPeriod `gorm:"not null" json:"period"`
	StartDate int64         `gorm:"not null" json:"startDate"`
	EndDate   int64         `gorm:"not null" json:"endDate"`

	Summary SummaryMetrics `gorm:"serializer:json" json:"summary"`
	Trends  TrendSeries    `gorm:"serializer:json" json:"trends"`
}
