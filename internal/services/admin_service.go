package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"verdure/internal/models/db_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

// trendMonths is the fixed window the admin charts render; trends are
// distributed proportionally across it until real historical rollups
// exist.
var trendMonths = []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep"}

type AdminServiceInterface interface {
	GetUsers(ctx context.Context, role string) ([]db_models.User, error)
	UpdateUserRole(ctx context.Context, userID, role string) (*db_models.User, error)
	GetUserSummary(ctx context.Context) (*response_models.UserSummaryResponse, error)
	GetUserDashboardSummary(ctx context.Context, userID string) (*response_models.UserDashboardSummaryResponse, error)
	GetAdminStats(ctx context.Context) (*response_models.AdminStatsResponse, error)
}

type AdminService struct {
	userRepo    repositories.UserRepository
	cropRepo    repositories.CropRepository
	paymentRepo repositories.PaymentRepository // nil when billing is not deployed
	logger      *zap.Logger
}

func NewAdminService(
	userRepo repositories.UserRepository,
	cropRepo repositories.CropRepository,
	paymentRepo repositories.PaymentRepository,
	logger *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		userRepo:    userRepo,
		cropRepo:    cropRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (s *AdminService) GetUsers(ctx context.Context, role string) ([]db_models.User, error) {
	users, err := s.userRepo.List(ctx, role)
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, userID, role string) (*db_models.User, error) {
	if role != "user" && role != "admin" {
		return nil, utils.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	user.Role = role
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("updating user role failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *AdminService) GetUserSummary(ctx context.Context) (*response_models.UserSummaryResponse, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	admins, err := s.userRepo.CountByRole(ctx, "admin")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	active, err := s.userRepo.CountActiveSince(ctx, time.Now().AddDate(0, 0, -7).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserSummaryResponse{
		Total:  total,
		Admins: admins,
		Active: active,
	}, nil
}

func (s *AdminService) GetUserDashboardSummary(ctx context.Context, userID string) (*response_models.UserDashboardSummaryResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	crops, err := s.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalCrops := len(crops)
	activeCrops := 0
	var totalIncome, totalExpenses float64
	for _, crop := range crops {
		if crop.Status != db_models.CropStatusHarvested {
			activeCrops++
		}
		totalIncome += crop.TotalIncome
		totalExpenses += crop.Expenses
	}
	netProfit := totalIncome - totalExpenses

	profitMargin := 0
	if totalIncome > 0 {
		profitMargin = int(math.Round(netProfit * 100 / totalIncome))
	}

	activeRatio := 0.0
	if activeCrops > 0 {
		divisor := totalCrops
		if divisor == 0 {
			divisor = 1
		}
		activeRatio = 100 * float64(activeCrops) / float64(divisor)
	}
	progressTrend := make([]response_models.ProgressTrendPoint, 0, len(trendMonths))
	for i, month := range trendMonths {
		progressTrend = append(progressTrend, response_models.ProgressTrendPoint{
			Month:    month,
			Progress: int(math.Round(float64(i+1) * activeRatio / float64(len(trendMonths)))),
		})
	}

	return &response_models.UserDashboardSummaryResponse{
		User: response_models.UserBrief{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Totals: response_models.UserDashboardTotals{
			TotalCrops:    totalCrops,
			ActiveCrops:   activeCrops,
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetProfit:     netProfit,
			ProfitMargin:  profitMargin,
		},
		ProgressTrend: progressTrend,
	}, nil
}

func (s *AdminService) GetAdminStats(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	totalUsers, err := s.userRepo.CountByRole(ctx, "user")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	activeUsers, err := s.userRepo.CountCreatedSince(ctx, "user", time.Now().AddDate(0, 0, -30).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalCrops, err := s.cropRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	cropsByStatus, err := s.cropRepo.CountByStatus(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalIncome, totalExpenses, err := s.cropRepo.SumIncomeAndExpenses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var totalPayments int64
	var revenue float64
	if s.paymentRepo != nil {
		totalPayments, err = s.paymentRepo.Count(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		revenue, err = s.paymentRepo.SumPaid(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	recentUsers, err := s.userRepo.Recent(ctx, "user", 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recentCrops, err := s.cropRepo.Recent(ctx, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	userBriefs := make([]response_models.UserBrief, 0, len(recentUsers))
	for _, user := range recentUsers {
		userBriefs = append(userBriefs, response_models.UserBrief{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}

	cropBriefs := make([]response_models.CropBrief, 0, len(recentCrops))
	for _, crop := range recentCrops {
		cropBriefs = append(cropBriefs, response_models.CropBrief{
			ID:          crop.ID.String(),
			Name:        crop.Name,
			Status:      string(crop.Status),
			TotalIncome: crop.TotalIncome,
			Expenses:    crop.Expenses,
			CreatedAt:   crop.CreatedAt,
			Username:    crop.User.Username,
		})
	}

	netProfit := totalIncome - totalExpenses
	userTrend := make([]response_models.UserTrendPoint, 0, len(trendMonths))
	financialTrend := make([]response_models.FinancialTrendPoint, 0, len(trendMonths))
	for i, month := range trendMonths {
		active := activeUsers
		if i != len(trendMonths)-1 {
			active = int64(math.Round(float64(activeUsers) * float64(i+1) / float64(len(trendMonths))))
		}
		userTrend = append(userTrend, response_models.UserTrendPoint{
			Month:  month,
			Total:  totalUsers,
			Active: active,
		})
		financialTrend = append(financialTrend, response_models.FinancialTrendPoint{
			Month: month,
			Net:   int64(math.Round(netProfit * float64(i+1) / float64(len(trendMonths)))),
		})
	}

	return &response_models.AdminStatsResponse{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalCrops:     totalCrops,
		TotalPayments:  totalPayments,
		Revenue:        revenue,
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		NetProfit:      netProfit,
		CropsByStatus:  cropsByStatus,
		UserTrend:      userTrend,
		FinancialTrend: financialTrend,
		RecentUsers:    userBriefs,
		RecentCrops:    cropBriefs,
		LastUpdated:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}
