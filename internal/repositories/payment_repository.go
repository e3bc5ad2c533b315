package repositories

import (
	"context"

	"gorm.io/gorm"
	"verdure/internal/models/db_models"
)

// PaymentRepository is an optional collaborator: deployments without
// billing simply never provide it and admin stats reports zeroes.
type PaymentRepository interface {
	Count(ctx context.Context) (int64, error)
	SumPaid(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Payment{}).Count(&n).Error
	return n, err
}

func (r *paymentRepository) SumPaid(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", db_models.PaymentStatusPaid).
		Scan(&total).Error
	return total, err
}
