package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationPlan     NotificationType = "plan"
	NotificationPayment  NotificationType = "payment"
	NotificationSecurity NotificationType = "security"
	NotificationUpdate   NotificationType = "update"
	NotificationCrop     NotificationType = "crop"
	NotificationWeather  NotificationType = "weather"
	NotificationSystem   NotificationType = "system"
)

type NotificationMetadata struct {
	Source      string     `json:"source,omitempty"`      // what triggered this notification
	ReferenceID *uuid.UUID `json:"referenceId,omitempty"` // related object, if any
	IPAddress   string     `json:"ipAddress,omitempty"`
	UserAgent   string     `json:"userAgent,omitempty"`
}

type Notification struct {
	BaseModel
	UserID  uuid.UUID        `gorm:"type:uuid;index;not null" json:"userId"`
	Type    NotificationType `gorm:"not null;index" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `gorm:"not null" json:"message"`

	Data     datatypes.JSON       `gorm:"type:jsonb;default:'{}'" json:"data,omitempty"`
	Metadata NotificationMetadata `gorm:"serializer:json" json:"metadata,omitempty"`

	IsRead   bool             `gorm:"default:false;index" json:"isRead"`
	ReadAt   *int64           `json:"readAt,omitempty"`
	Priority SchedulePriority `gorm:"default:medium" json:"priority"`

	// Rows past this instant are eligible for deletion via the cleanup
	// endpoint; nothing removes them automatically.
	ExpiresAt *int64 `gorm:"index" json:"expiresAt,omitempty"`
	ActionURL string `json:"actionUrl,omitempty"`
}
