package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type DepartmentService struct {
	departments repositories.DepartmentRepositoryInterface
	logger      *zap.Logger
}

func NewDepartmentService(departments repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, logger: logger}
}

func (s *DepartmentService) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	return s.departments.GetDepartments(ctx)
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id int64) (*entities.Department, error) {
	return s.departments.FindDepartment(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	return s.departments.CreateDepartment(ctx, payload)
}
