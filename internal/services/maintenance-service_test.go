package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

func testEquipment(code string, departmentID null.Int64) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		EquipmentID:     code,
		EquipmentName:   "Ultrasound Scanner",
		EquipmentType:   "Diagnostic",
		Model:           "Voluson E10",
		SerialNumber:    "SN-" + code,
		CountryOfOrigin: "Austria",
		Manufacturer:    "GE Healthcare",
		UnitPrice:       types.Decimal("45000.00"),
		VAT:             types.Decimal("20"),
		FundingSource:   "State budget",
		Supplier:        "MedSupply LLC",
		Status:          constants.EquipmentStatusActive,
		PurchaseDate:    "2024-03-15",
		WarrantyExpiry:  "2027-03-15",
		DepartmentID:    departmentID,
	}
}

func TestCreateMaintenanceFlipsEquipmentStatus(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	ctx := context.Background()
	admin := &entities.User{ID: 1, Role: constants.RoleAdmin}

	e, err := storage.Equipment.CreateEquipment(ctx, testEquipment("EQ-001", null.Int64From(1)))
	require.NoError(t, err)

	svc := NewMaintenanceService(storage.Maintenance, storage.Equipment, zap.NewNop())
	record, err := svc.CreateMaintenance(ctx, admin, dto.CreateMaintenanceDTO{
		EquipmentID:     null.Int64From(e.ID),
		StartDate:       "2025-01-10",
		EndDate:         "2025-01-12",
		MaintenanceType: "Preventive",
		PerformedBy:     "TechCorp",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.MaintenanceStatusPending, record.Status)

	after, err := storage.Equipment.FindEquipment(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusPendingMaintenance, after.Status)
}

func TestCreateMaintenanceUnknownEquipment(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	admin := &entities.User{ID: 1, Role: constants.RoleAdmin}

	svc := NewMaintenanceService(storage.Maintenance, storage.Equipment, zap.NewNop())
	_, err := svc.CreateMaintenance(context.Background(), admin, dto.CreateMaintenanceDTO{
		EquipmentID:     null.Int64From(99),
		StartDate:       "2025-01-10",
		EndDate:         "2025-01-12",
		MaintenanceType: "Preventive",
		PerformedBy:     "TechCorp",
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentMissing)
}

func TestCreateMaintenanceForeignDepartmentForbidden(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	ctx := context.Background()

	e, err := storage.Equipment.CreateEquipment(ctx, testEquipment("EQ-001", null.Int64From(2)))
	require.NoError(t, err)

	outsider := &entities.User{ID: 5, Role: constants.RoleUser, DepartmentID: null.Int64From(1)}
	svc := NewMaintenanceService(storage.Maintenance, storage.Equipment, zap.NewNop())
	_, err = svc.CreateMaintenance(ctx, outsider, dto.CreateMaintenanceDTO{
		EquipmentID:     null.Int64From(e.ID),
		StartDate:       "2025-01-10",
		EndDate:         "2025-01-12",
		MaintenanceType: "Preventive",
		PerformedBy:     "TechCorp",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetMaintenanceRowFiltering(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	ctx := context.Background()
	admin := &entities.User{ID: 1, Role: constants.RoleAdmin}

	mine, err := storage.Equipment.CreateEquipment(ctx, testEquipment("EQ-001", null.Int64From(1)))
	require.NoError(t, err)
	other, err := storage.Equipment.CreateEquipment(ctx, testEquipment("EQ-002", null.Int64From(2)))
	require.NoError(t, err)

	svc := NewMaintenanceService(storage.Maintenance, storage.Equipment, zap.NewNop())
	for _, id := range []int64{mine.ID, other.ID} {
		_, err := svc.CreateMaintenance(ctx, admin, dto.CreateMaintenanceDTO{
			EquipmentID:     null.Int64From(id),
			StartDate:       "2025-01-10",
			EndDate:         "2025-01-12",
			MaintenanceType: "Preventive",
			PerformedBy:     "TechCorp",
		})
		require.NoError(t, err)
	}

	all, err := svc.GetMaintenance(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	deptUser := &entities.User{ID: 2, Role: constants.RoleUser, DepartmentID: null.Int64From(1)}
	visible, err := svc.GetMaintenance(ctx, deptUser)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, mine.ID, visible[0].EquipmentID.Int64)

	homeless := &entities.User{ID: 3, Role: constants.RoleUser}
	none, err := svc.GetMaintenance(ctx, homeless)
	require.NoError(t, err)
	assert.Empty(t, none)
}
