package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	adminService     services.AdminServiceInterface
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	adminService services.AdminServiceInterface,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		adminService:     adminService,
	}
}

// GetDashboard godoc
// @Summary User dashboard
// @Description Derived stats, activity feed, alerts, recommendations and upcoming tasks
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := dc.dashboardService.GetDashboard(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}

// UpdateDashboard godoc
// @Summary Store dashboard stats and preferences
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.UpdateDashboardRequest true "Stats and preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /dashboard/update [post]
func (dc *DashboardController) UpdateDashboard(c *gin.Context) {
	var req request_models.UpdateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	blob, err := dc.dashboardService.UpdateDashboard(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"dashboardData": blob}, "Dashboard updated")
}

// GetAdminStats godoc
// @Summary Platform-wide statistics
// @Description Aggregate user, crop and financial figures with trend series
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboard/admin [get]
func (dc *DashboardController) GetAdminStats(c *gin.Context) {
	stats, err := dc.adminService.GetAdminStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Admin stats fetched successfully")
}
