package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"verdure/cmd/fx/adminfx"
	"verdure/cmd/fx/analyticsfx"
	"verdure/cmd/fx/authfx"
	"verdure/cmd/fx/controllersfx"
	"verdure/cmd/fx/corefx"
	"verdure/cmd/fx/cropfx"
	"verdure/cmd/fx/dashboardfx"
	"verdure/cmd/fx/forumfx"
	"verdure/cmd/fx/newsfx"
	"verdure/cmd/fx/notificationfx"
	"verdure/cmd/fx/paymentfx"
	"verdure/cmd/fx/schedulefx"
	"verdure/cmd/fx/storyfx"
	"verdure/internal/api/controllers"
	"verdure/internal/config"
	"verdure/pkg/middleware"
)

func main() {
	app := fx.New(
		corefx.Module,
		authfx.Module,
		cropfx.Module,
		storyfx.Module,
		newsfx.Module,
		schedulefx.Module,
		notificationfx.Module,
		forumfx.Module,
		analyticsfx.Module,
		dashboardfx.Module,
		paymentfx.Module,
		adminfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	cropController *controllers.CropController,
	storyController *controllers.StoryController,
	newsController *controllers.NewsController,
	dashboardController *controllers.DashboardController,
	userController *controllers.UserController,
	forumController *controllers.ForumController,
	scheduleController *controllers.ScheduleController,
	notificationController *controllers.NotificationController,
	analyticsController *controllers.AnalyticsController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r,
		authController, cropController, storyController, newsController,
		dashboardController, userController, forumController,
		scheduleController, notificationController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	cropController *controllers.CropController,
	storyController *controllers.StoryController,
	newsController *controllers.NewsController,
	dashboardController *controllers.DashboardController,
	userController *controllers.UserController,
	forumController *controllers.ForumController,
	scheduleController *controllers.ScheduleController,
	notificationController *controllers.NotificationController,
	analyticsController *controllers.AnalyticsController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)

	api.GET("/news", newsController.GetNews)
	api.GET("/crop", cropController.GetCrops)
	api.GET("/success-stories", storyController.GetStories)

	dashboardGroup := api.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboardGroup.GET("", dashboardController.GetDashboard)
	dashboardGroup.POST("/update", dashboardController.UpdateDashboard)
	dashboardGroup.GET("/admin", middleware.AdminOnlyMiddleware(), dashboardController.GetAdminStats)

	usersGroup := api.Group("/users", middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	usersGroup.GET("", userController.GetUsers)
	usersGroup.GET("/summary", userController.GetUserSummary)
	usersGroup.PATCH("/:id", userController.UpdateUserRole)
	usersGroup.GET("/:id/dashboard", userController.GetUserDashboard)

	forumGroup := api.Group("/forum", middleware.JWTAuthMiddleware())
	forumGroup.GET("", forumController.GetPosts)
	forumGroup.GET("/stats", forumController.GetStats)
	forumGroup.POST("", forumController.CreatePost)
	forumGroup.GET("/:id", forumController.GetPost)
	forumGroup.POST("/:id/comments", forumController.AddComment)
	forumGroup.POST("/:id/like", forumController.ToggleLike)
	forumGroup.PUT("/:id", forumController.UpdatePost)
	forumGroup.DELETE("/:id", forumController.DeletePost)

	scheduleGroup := api.Group("/schedule", middleware.JWTAuthMiddleware())
	scheduleGroup.GET("", scheduleController.GetSchedules)
	scheduleGroup.GET("/upcoming", scheduleController.GetUpcoming)
	scheduleGroup.GET("/stats", scheduleController.GetStats)
	scheduleGroup.POST("", scheduleController.CreateSchedule)
	scheduleGroup.PUT("/:id", scheduleController.UpdateSchedule)
	scheduleGroup.PATCH("/:id/complete", scheduleController.CompleteSchedule)
	scheduleGroup.DELETE("/:id", scheduleController.DeleteSchedule)

	notificationGroup := api.Group("/notifications", middleware.JWTAuthMiddleware())
	notificationGroup.GET("", notificationController.GetNotifications)
	notificationGroup.GET("/unread-count", notificationController.GetUnreadCount)
	notificationGroup.GET("/stats", notificationController.GetStats)
	notificationGroup.POST("", notificationController.CreateNotification)
	notificationGroup.PATCH("/mark-all-read", notificationController.MarkAllAsRead)
	notificationGroup.PATCH("/:id/read", notificationController.MarkAsRead)
	notificationGroup.DELETE("/cleanup", notificationController.CleanupExpired)
	notificationGroup.DELETE("/:id", notificationController.DeleteNotification)

	analyticsGroup := api.Group("/analytics", middleware.JWTAuthMiddleware())
	analyticsGroup.GET("/data", analyticsController.GetData)
	analyticsGroup.GET("/summary", analyticsController.GetSummary)
	analyticsGroup.GET("/dashboard", analyticsController.GetDashboardAnalytics)
	analyticsGroup.GET("/crop-performance", analyticsController.GetCropPerformance)
	analyticsGroup.GET("/crop-performance/:cropId", analyticsController.GetCropPerformance)
	analyticsGroup.POST("/record", analyticsController.Record)
}
