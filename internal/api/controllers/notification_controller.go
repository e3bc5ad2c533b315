package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/repositories"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// GetNotifications godoc
// @Summary List notifications
// @Description Paged notifications for the caller, newest first, with the unread total
// @Tags Notifications
// @Produce json
// @Param isRead query bool false "Read-state filter"
// @Param type query string false "Type filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repositories.NotificationFilter{
		Type:  c.Query("type"),
		Page:  page,
		Limit: limit,
	}
	if raw, ok := c.GetQuery("isRead"); ok {
		isRead := raw == "true"
		filter.IsRead = &isRead
	}

	result, err := nc.notificationService.GetNotifications(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Notifications fetched successfully")
}

// GetUnreadCount godoc
// @Summary Unread notification count
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/unread-count [get]
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	count, err := nc.notificationService.GetUnreadCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unreadCount": count}, "Unread count fetched successfully")
}

// GetStats godoc
// @Summary Notification totals
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/stats [get]
func (nc *NotificationController) GetStats(c *gin.Context) {
	stats, err := nc.notificationService.GetStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Notification stats fetched successfully")
}

// MarkAsRead godoc
// @Summary Mark one notification read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /notifications/{id}/read [patch]
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	notification, err := nc.notificationService.MarkAsRead(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notification, "Notification marked as read")
}

// MarkAllAsRead godoc
// @Summary Mark every notification read
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/mark-all-read [patch]
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	updated, err := nc.notificationService.MarkAllAsRead(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updatedCount": updated}, "All notifications marked as read")
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /notifications/{id} [delete]
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	err := nc.notificationService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted successfully")
}

// CreateNotification godoc
// @Summary Create a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /notifications [post]
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userId, type, title and message are required")
		return
	}

	notification, err := nc.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, notification, "Notification created successfully")
}

// CleanupExpired godoc
// @Summary Purge expired notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/cleanup [delete]
func (nc *NotificationController) CleanupExpired(c *gin.Context) {
	deleted, err := nc.notificationService.CleanupExpired(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deletedCount": deleted}, "Expired notifications cleaned up")
}
