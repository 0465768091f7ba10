package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const maintenanceColumns = "id, equipment_id, start_date::text, end_date::text, maintenance_type, performed_by, notes, status"

type MaintenanceRepositoryInterface interface {
	GetMaintenance(ctx context.Context) ([]entities.Maintenance, error)
	GetMaintenanceByEquipment(ctx context.Context, equipmentID int64) ([]entities.Maintenance, error)
	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	err := row.Scan(&m.ID, &m.EquipmentID, &m.StartDate, &m.EndDate, &m.MaintenanceType, &m.PerformedBy, &m.Notes, &m.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan maintenance: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) queryMaintenance(ctx context.Context, query string, args ...interface{}) ([]entities.Maintenance, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.Maintenance, 0)
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *m)
	}
	return records, rows.Err()
}

func (r *MaintenanceRepository) GetMaintenance(ctx context.Context) ([]entities.Maintenance, error) {
	query := fmt.Sprintf("SELECT %s FROM maintenance ORDER BY id", maintenanceColumns)
	return r.queryMaintenance(ctx, query)
}

func (r *MaintenanceRepository) GetMaintenanceByEquipment(ctx context.Context, equipmentID int64) ([]entities.Maintenance, error) {
	query := fmt.Sprintf("SELECT %s FROM maintenance WHERE equipment_id = $1 ORDER BY id", maintenanceColumns)
	return r.queryMaintenance(ctx, query, equipmentID)
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`INSERT INTO maintenance (
		equipment_id, start_date, end_date, maintenance_type, performed_by, notes, status
	) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, maintenanceColumns)

	return scanMaintenance(r.storage.QueryRow(ctx, query,
		payload.EquipmentID, payload.StartDate, payload.EndDate, payload.MaintenanceType,
		payload.PerformedBy, payload.Notes, payload.Status,
	))
}
