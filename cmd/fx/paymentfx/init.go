package paymentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"verdure/internal/repositories"
)

// Module wires the billing collaborator. Leave it out of the fx graph and
// admin stats reports zero payments and revenue.
var Module = fx.Provide(
	providePaymentRepo)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}
