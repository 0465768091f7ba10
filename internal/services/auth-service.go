package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type AuthService struct {
	users  repositories.UserRepositoryInterface
	logger *zap.Logger
}

func NewAuthService(users repositories.UserRepositoryInterface, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login verifies the credentials and returns the account. An unknown
// username and a wrong password produce the same error so the response
// never reveals which part failed.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	user, err := s.users.FindUserByUsername(ctx, payload.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password != payload.Password {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
