package db_models

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// Payment exists only for deployments that bill users; admin stats treats
// its repository as an optional collaborator.
type Payment struct {
	BaseModel
	UserID uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `gorm:"index" json:"status"`
}
