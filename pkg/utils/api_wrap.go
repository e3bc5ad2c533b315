package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, "success", message, data)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, "success", message, data)
}

func RespondError(c *gin.Context, code int, message string) {
	respond(c, code, "error", message, nil)
}

func respond(c *gin.Context, code int, status, message string, data interface{}) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

// HandleServiceError maps service sentinel errors to HTTP statuses.
// Anything unrecognised is logged and surfaced as a bare 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, "Not authorized to access this record")
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCropNotFound),
		errors.Is(err, ErrScheduleNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrPostNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFeedUnavailable):
		log.Printf("News feed error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch news")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
