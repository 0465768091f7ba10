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

type MaintenanceService struct {
	maintenance repositories.MaintenanceRepositoryInterface
	equipment   repositories.EquipmentRepositoryInterface
	logger      *zap.Logger
}

func NewMaintenanceService(
	maintenance repositories.MaintenanceRepositoryInterface,
	equipment repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{maintenance: maintenance, equipment: equipment, logger: logger}
}

// GetMaintenance lists maintenance records. For a plain user the list is
// narrowed to the records of equipment in their own department.
func (s *MaintenanceService) GetMaintenance(ctx context.Context, actor *entities.User) ([]entities.Maintenance, error) {
	records, err := s.maintenance.GetMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	if constants.IsElevatedRole(actor.Role) {
		return records, nil
	}
	if !actor.DepartmentID.Valid {
		return []entities.Maintenance{}, nil
	}

	departmentID := actor.DepartmentID.Int64
	visible, err := s.equipment.GetEquipment(ctx, types.Filter{DepartmentID: &departmentID})
	if err != nil {
		return nil, err
	}
	visibleIDs := make(map[int64]struct{}, len(visible))
	for _, e := range visible {
		visibleIDs[e.ID] = struct{}{}
	}

	filtered := make([]entities.Maintenance, 0, len(records))
	for _, m := range records {
		if !m.EquipmentID.Valid {
			continue
		}
		if _, ok := visibleIDs[m.EquipmentID.Int64]; ok {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// GetMaintenanceByEquipment returns the history of one piece of equipment,
// applying the same visibility check as a direct equipment lookup.
func (s *MaintenanceService) GetMaintenanceByEquipment(ctx context.Context, actor *entities.User, equipmentID int64) ([]entities.Maintenance, error) {
	e, err := s.equipment.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !constants.IsElevatedRole(actor.Role) {
		if !actor.DepartmentID.Valid || !e.DepartmentID.Valid || e.DepartmentID.Int64 != actor.DepartmentID.Int64 {
			return nil, apperrors.ErrForbidden
		}
	}
	return s.maintenance.GetMaintenanceByEquipment(ctx, equipmentID)
}

// CreateMaintenance records a maintenance request and flips the referenced
// equipment to PendingMaintenance. The two writes are not atomic: if the
// status update fails the request still stands and the mismatch is logged.
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, actor *entities.User, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	if payload.Status == "" {
		payload.Status = constants.MaintenanceStatusPending
	}

	if payload.EquipmentID.Valid {
		e, err := s.equipment.FindEquipment(ctx, payload.EquipmentID.Int64)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEquipmentMissing
		}
		if err != nil {
			return nil, err
		}
		if !constants.IsElevatedRole(actor.Role) {
			if !actor.DepartmentID.Valid || !e.DepartmentID.Valid || e.DepartmentID.Int64 != actor.DepartmentID.Int64 {
				return nil, apperrors.ErrForbidden
			}
		}
	}

	record, err := s.maintenance.CreateMaintenance(ctx, payload)
	if err != nil {
		return nil, err
	}

	if payload.EquipmentID.Valid {
		if err := s.equipment.UpdateEquipmentStatus(ctx, payload.EquipmentID.Int64, constants.EquipmentStatusPendingMaintenance); err != nil {
			s.logger.Warn("maintenance recorded but equipment status not updated",
				zap.Int64("equipmentID", payload.EquipmentID.Int64),
				zap.Error(err),
			)
		}
	}
	return record, nil
}
