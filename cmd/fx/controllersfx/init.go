package controllersfx

import (
	"go.uber.org/fx"
	"verdure/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCropController),
	fx.Provide(controllers.NewStoryController),
	fx.Provide(controllers.NewNewsController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewForumController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewAnalyticsController))
