package request_models

import "verdure/internal/models/db_models"

type RecordAnalyticsRequest struct {
	Date          int64                          `json:"date" binding:"required"`
	Metrics       *db_models.Metrics             `json:"metrics" binding:"required"`
	CropBreakdown []db_models.CropBreakdownEntry `json:"cropBreakdown"`
	WeatherData   *db_models.WeatherSnapshot     `json:"weatherData"`
	Activities    []db_models.ActivityEntry      `json:"activities"`
}
