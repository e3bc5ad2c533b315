package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, req request_models.SignupRequest) (*response_models.SignupResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepository, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (a *AuthService) Signup(ctx context.Context, req request_models.SignupRequest) (*response_models.SignupResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("signup lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &db_models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		a.logger.Error("signup insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Role, utils.SignupTokenTTL)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SignupResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("login lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password fail identically so callers cannot
	// probe which addresses are registered.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	now := time.Now().Unix()
	user.LastLogin = &now
	if err := a.userRepo.Save(ctx, user); err != nil {
		a.logger.Error("updating last login failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Role, utils.LoginTokenTTL)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.UserInfo{
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}
