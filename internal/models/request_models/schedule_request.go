package request_models

import "verdure/internal/models/db_models"

type CreateScheduleRequest struct {
	Title             string               `json:"title" binding:"required"`
	Description       string               `json:"description"`
	DueDate           int64                `json:"dueDate" binding:"required"`
	Priority          string               `json:"priority"`
	Category          string               `json:"category"`
	CropID            string               `json:"cropId"`
	EstimatedDuration *int                 `json:"estimatedDuration"`
	Notes             string               `json:"notes"`
	Reminders         []db_models.Reminder `json:"reminders"`
}

// UpdateScheduleRequest carries only the fields the caller wants changed;
// empty values leave the stored ones alone.
type UpdateScheduleRequest struct {
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	DueDate           int64                `json:"dueDate"`
	Priority          string               `json:"priority"`
	Category          string               `json:"category"`
	Status            string               `json:"status"`
	EstimatedDuration *int                 `json:"estimatedDuration"`
	Notes             string               `json:"notes"`
	Reminders         []db_models.Reminder `json:"reminders"`
}

type CompleteScheduleRequest struct {
	ActualDuration *int `json:"actualDuration"`
}
