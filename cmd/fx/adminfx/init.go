package adminfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	fx.Annotate(
		provideAdminService,
		fx.ParamTags("", "", `optional:"true"`, ""),
	),
)

func provideAdminService(
	userRepo repositories.UserRepository,
	cropRepo repositories.CropRepository,
	paymentRepo repositories.PaymentRepository,
	logger *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, cropRepo, paymentRepo, logger)
}
