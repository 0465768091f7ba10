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

type UserService struct {
	users       repositories.UserRepositoryInterface
	departments repositories.DepartmentRepositoryInterface
	logger      *zap.Logger
}

func NewUserService(
	users repositories.UserRepositoryInterface,
	departments repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{users: users, departments: departments, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.GetUsers(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	if payload.DepartmentID.Valid {
		_, err := s.departments.FindDepartment(ctx, payload.DepartmentID.Int64)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrDepartmentMissing
		}
		if err != nil {
			return nil, err
		}
	}
	return s.users.CreateUser(ctx, payload)
}

func (s *UserService) ResetPassword(ctx context.Context, id int64, payload dto.ResetPasswordDTO) error {
	return s.users.UpdateUserPassword(ctx, id, payload.Password)
}
