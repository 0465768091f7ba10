package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// EquipmentService enforces the row-level visibility rules: admins and
// managers see every record, a plain user sees only the equipment of their
// own department.
type EquipmentService struct {
	equipment   repositories.EquipmentRepositoryInterface
	departments repositories.DepartmentRepositoryInterface
	logger      *zap.Logger
}

func NewEquipmentService(
	equipment repositories.EquipmentRepositoryInterface,
	departments repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{equipment: equipment, departments: departments, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, actor *entities.User, filter types.Filter) ([]entities.Equipment, error) {
	if !constants.IsElevatedRole(actor.Role) {
		if !actor.DepartmentID.Valid {
			return []entities.Equipment{}, nil
		}
		departmentID := actor.DepartmentID.Int64
		filter.DepartmentID = &departmentID
	}
	return s.equipment.GetEquipment(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, actor *entities.User, id int64) (*entities.Equipment, error) {
	e, err := s.equipment.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constants.IsElevatedRole(actor.Role) {
		if !actor.DepartmentID.Valid || !e.DepartmentID.Valid || e.DepartmentID.Int64 != actor.DepartmentID.Int64 {
			return nil, apperrors.ErrForbidden
		}
	}
	return e, nil
}

func (s *EquipmentService) checkDepartment(ctx context.Context, id int64) error {
	_, err := s.departments.FindDepartment(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrDepartmentMissing
	}
	return err
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if payload.DepartmentID.Valid {
		if err := s.checkDepartment(ctx, payload.DepartmentID.Int64); err != nil {
			return nil, err
		}
	}
	return s.equipment.CreateEquipment(ctx, payload)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id int64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if payload.DepartmentID.Valid {
		if err := s.checkDepartment(ctx, payload.DepartmentID.Int64); err != nil {
			return nil, err
		}
	}
	return s.equipment.UpdateEquipment(ctx, id, payload)
}
