package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

func init() {
	utils.SetSigningKey("test-secret")
}

func TestAuthService_Signup(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates user with hashed password and default role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		mockRepo.On("FindByEmail", ctx, "ravi@example.com").Return(nil, nil)
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(u *db_models.User) bool {
			return u.Email == "ravi@example.com" &&
				u.Role == "user" &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret123"
		})).Return(nil)

		result, err := service.Signup(ctx, request_models.SignupRequest{
			Username: "ravi",
			Email:    "ravi@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "ravi", result.Username)
		assert.Equal(t, "user", result.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		mockRepo.On("FindByEmail", ctx, "taken@example.com").
			Return(&db_models.User{Email: "taken@example.com"}, nil)

		result, err := service.Signup(ctx, request_models.SignupRequest{
			Username: "someone",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("honours an explicit role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		mockRepo.On("FindByEmail", ctx, "admin@example.com").Return(nil, nil)
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(u *db_models.User) bool {
			return u.Role == "admin"
		})).Return(nil)

		result, err := service.Signup(ctx, request_models.SignupRequest{
			Username: "boss",
			Email:    "admin@example.com",
			Password: "secret123",
			Role:     "admin",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin", result.Role)
	})
}

func TestAuthService_Login(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	hashed, _ := utils.HashPassword("correct-horse")

	t.Run("unknown email answers the same as a bad password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		mockRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		result, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		mockRepo.On("FindByEmail", ctx, "ravi@example.com").
			Return(&db_models.User{Email: "ravi@example.com", PasswordHash: hashed}, nil)

		result, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "ravi@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("successful login records last login and issues a token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := services.NewAuthService(mockRepo, logger)

		user := &db_models.User{
			Username:     "ravi",
			Email:        "ravi@example.com",
			PasswordHash: hashed,
			Role:         "user",
		}
		mockRepo.On("FindByEmail", ctx, "ravi@example.com").Return(user, nil)
		mockRepo.On("Save", ctx, mock.MatchedBy(func(u *db_models.User) bool {
			return u.LastLogin != nil
		})).Return(nil)

		result, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "ravi@example.com",
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "ravi", result.User.Username)

		claims, err := utils.ValidateToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "user", claims.Role)
		mockRepo.AssertExpectations(t)
	})
}
