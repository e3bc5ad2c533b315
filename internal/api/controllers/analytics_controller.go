package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetData godoc
// @Summary Analytics snapshots
// @Description Snapshots in the requested range, defaulting to the last thirty days
// @Tags Analytics
// @Produce json
// @Param startDate query int false "Unix start"
// @Param endDate query int false "Unix end"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /analytics/data [get]
func (ac *AnalyticsController) GetData(c *gin.Context) {
	start, _ := strconv.ParseInt(c.Query("startDate"), 10, 64)
	end, _ := strconv.ParseInt(c.Query("endDate"), 10, 64)

	data, err := ac.analyticsService.GetData(c.Request.Context(), c.GetString("user_id"), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Analytics data fetched successfully")
}

// GetSummary godoc
// @Summary Analytics period summary
// @Description Cached rollup per (period, range); generated on first request
// @Tags Analytics
// @Produce json
// @Param period query string false "daily | weekly | monthly | yearly (default monthly)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analytics/summary [get]
func (ac *AnalyticsController) GetSummary(c *gin.Context) {
	summary, err := ac.analyticsService.GetSummary(c.Request.Context(), c.GetString("user_id"), c.Query("period"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Analytics summary fetched successfully")
}

// GetDashboardAnalytics godoc
// @Summary Real-time analytics
// @Description Live metrics plus chart series from recent snapshots
// @Tags Analytics
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /analytics/dashboard [get]
func (ac *AnalyticsController) GetDashboardAnalytics(c *gin.Context) {
	analytics, err := ac.analyticsService.GetDashboardAnalytics(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analytics, "Dashboard analytics fetched successfully")
}

// Record godoc
// @Summary Record a snapshot
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body request_models.RecordAnalyticsRequest true "Snapshot payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analytics/record [post]
func (ac *AnalyticsController) Record(c *gin.Context) {
	var req request_models.RecordAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date and metrics are required")
		return
	}

	data, err := ac.analyticsService.Record(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, data, "Analytics data recorded successfully")
}

// GetCropPerformance godoc
// @Summary Per-crop performance
// @Description One crop when an ID is given, otherwise every crop the caller owns
// @Tags Analytics
// @Produce json
// @Param cropId path string false "Crop ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /analytics/crop-performance/{cropId} [get]
func (ac *AnalyticsController) GetCropPerformance(c *gin.Context) {
	performance, err := ac.analyticsService.GetCropPerformance(c.Request.Context(), c.GetString("user_id"), c.Param("cropId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, performance, "Crop performance fetched successfully")
}
