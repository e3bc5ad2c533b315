package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/repositories"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetSchedules godoc
// @Summary List schedules
// @Description Paged schedules for the caller, by due date, optionally filtered by status or category
// @Tags Schedules
// @Produce json
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /schedule [get]
func (sc *ScheduleController) GetSchedules(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repositories.ScheduleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	result, err := sc.scheduleService.GetSchedules(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Schedules fetched successfully")
}

// GetUpcoming godoc
// @Summary Upcoming schedules
// @Description Pending work due within the next seven days
// @Tags Schedules
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /schedule/upcoming [get]
func (sc *ScheduleController) GetUpcoming(c *gin.Context) {
	schedules, err := sc.scheduleService.GetUpcoming(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Upcoming schedules fetched successfully")
}

// GetStats godoc
// @Summary Schedule totals
// @Tags Schedules
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /schedule/stats [get]
func (sc *ScheduleController) GetStats(c *gin.Context) {
	stats, err := sc.scheduleService.GetStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Schedule stats fetched successfully")
}

// CreateSchedule godoc
// @Summary Create a schedule
// @Description A linked crop, when given, must exist
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.CreateScheduleRequest true "Schedule payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /schedule [post]
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and due date are required")
		return
	}

	schedule, err := sc.scheduleService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, schedule, "Schedule created successfully")
}

// UpdateSchedule godoc
// @Summary Update a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /schedule/{id} [put]
func (sc *ScheduleController) UpdateSchedule(c *gin.Context) {
	var req request_models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := sc.scheduleService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule updated successfully")
}

// CompleteSchedule godoc
// @Summary Mark a schedule completed
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.CompleteScheduleRequest false "Optional actual duration"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /schedule/{id}/complete [patch]
func (sc *ScheduleController) CompleteSchedule(c *gin.Context) {
	var req request_models.CompleteScheduleRequest
	// Body is optional here.
	_ = c.ShouldBindJSON(&req)

	schedule, err := sc.scheduleService.Complete(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.ActualDuration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule completed successfully")
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /schedule/{id} [delete]
func (sc *ScheduleController) DeleteSchedule(c *gin.Context) {
	err := sc.scheduleService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}
