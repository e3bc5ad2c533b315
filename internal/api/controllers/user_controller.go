package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type UserController struct {
	adminService services.AdminServiceInterface
}

func NewUserController(adminService services.AdminServiceInterface) *UserController {
	return &UserController{
		adminService: adminService,
	}
}

// GetUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.adminService.GetUsers(c.Request.Context(), c.Query("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.UpdateUserRoleRequest true "New role"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/{id} [patch]
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	var req request_models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	user, err := uc.adminService.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User role updated successfully")
}

// GetUserSummary godoc
// @Summary User totals
// @Description Overall, admin and recently-active user counts
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /users/summary [get]
func (uc *UserController) GetUserSummary(c *gin.Context) {
	summary, err := uc.adminService.GetUserSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "User summary fetched successfully")
}

// GetUserDashboard godoc
// @Summary A user's dashboard totals
// @Description Admin view of one user's crop and financial figures
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id}/dashboard [get]
func (uc *UserController) GetUserDashboard(c *gin.Context) {
	summary, err := uc.adminService.GetUserDashboardSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "User dashboard fetched successfully")
}
