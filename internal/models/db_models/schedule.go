package db_models

import (
	"github.com/google/uuid"
)

type SchedulePriority string

const (
	PriorityLow    SchedulePriority = "low"
	PriorityMedium SchedulePriority = "medium"
	PriorityHigh   SchedulePriority = "high"
)

type ScheduleStatus string

const (
	ScheduleStatusPending    ScheduleStatus = "pending"
	ScheduleStatusInProgress ScheduleStatus = "in-progress"
	ScheduleStatusCompleted  ScheduleStatus = "completed"
	ScheduleStatusCancelled  ScheduleStatus = "cancelled"
)

type ScheduleCategory string

const (
	CategoryIrrigation  ScheduleCategory = "irrigation"
	CategoryFertilizer  ScheduleCategory = "fertilizer"
	CategoryHarvest     ScheduleCategory = "harvest"
	CategoryPlanting    ScheduleCategory = "planting"
	CategoryPestControl ScheduleCategory = "pest-control"
	CategorySoilCheck   ScheduleCategory = "soil-check"
	CategoryOther       ScheduleCategory = "other"
)

type Reminder struct {
	Time int64 `json:"time"`
	Sent bool  `json:"sent"`
}

type Schedule struct {
	BaseModel
	UserID      uuid.UUID        `gorm:"type:uuid;index;not null" json:"userId"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description,omitempty"`
	DueDate     int64            `gorm:"not null;index" json:"dueDate"`
	Priority    SchedulePriority `gorm:"default:medium" json:"priority"`
	Status      ScheduleStatus   `gorm:"default:pending;index" json:"status"`
	Category    ScheduleCategory `gorm:"default:other" json:"category"`

	CropID *uuid.UUID `gorm:"type:uuid;index" json:"cropId,omitempty"`
	Crop   *Crop      `gorm:"foreignKey:CropID" json:"crop,omitempty"`

	EstimatedDuration *int       `json:"estimatedDuration,omitempty"` // in minutes
	ActualDuration    *int       `json:"actualDuration,omitempty"`    // in minutes
	Notes             string     `json:"notes,omitempty"`
	Reminders         []Reminder `gorm:"serializer:json" json:"reminders,omitempty"`
	CompletedAt       *int64     `json:"completedAt,omitempty"`
}
