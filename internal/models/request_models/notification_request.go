package request_models

import "encoding/json"

type CreateNotificationRequest struct {
	UserID    string          `json:"userId" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Title     string          `json:"title" binding:"required"`
	Message   string          `json:"message" binding:"required"`
	Priority  string          `json:"priority"`
	Data      json.RawMessage `json:"data"`
	ActionURL string          `json:"actionUrl"`
	ExpiresAt *int64          `json:"expiresAt"`
}
