package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const equipmentTable = "equipment"

// Currency, percentage and date columns are selected as text so their
// values round-trip as decimal-precise strings, never float64.
const equipmentColumns = "id, equipment_id, equipment_name, equipment_type, model, serial_number, " +
	"country_of_origin, manufacturer, unit_price::text, vat::text, funding_source, supplier, " +
	"status, purchase_date::text, warranty_expiry::text, department_id"

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, id int64, status string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var unitPrice, vat string
	err := row.Scan(
		&e.ID, &e.EquipmentID, &e.EquipmentName, &e.EquipmentType, &e.Model, &e.SerialNumber,
		&e.CountryOfOrigin, &e.Manufacturer, &unitPrice, &vat, &e.FundingSource, &e.Supplier,
		&e.Status, &e.PurchaseDate, &e.WarrantyExpiry, &e.DepartmentID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	e.UnitPrice = types.Decimal(unitPrice)
	e.VAT = types.Decimal(vat)
	return &e, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	qb := sq.Select(equipmentColumns).
		From(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		OrderBy("id")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		qb = qb.Where(sq.Or{sq.ILike{"equipment_name": pattern}, sq.ILike{"equipment_id": pattern}})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": filter.Status})
	}
	if filter.DepartmentID != nil {
		qb = qb.Where(sq.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.WithPagination {
		qb = qb.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipment := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id int64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM equipment WHERE id = $1", equipmentColumns)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query := fmt.Sprintf(`INSERT INTO equipment (
		equipment_id, equipment_name, equipment_type, model, serial_number, country_of_origin,
		manufacturer, unit_price, vat, funding_source, supplier, status, purchase_date,
		warranty_expiry, department_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING %s`, equipmentColumns)

	e, err := scanEquipment(r.storage.QueryRow(ctx, query,
		payload.EquipmentID, payload.EquipmentName, payload.EquipmentType, payload.Model,
		payload.SerialNumber, payload.CountryOfOrigin, payload.Manufacturer,
		payload.UnitPrice.String(), payload.VAT.String(), payload.FundingSource, payload.Supplier,
		payload.Status, payload.PurchaseDate, payload.WarrantyExpiry, payload.DepartmentID,
	))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrEquipmentCodeTaken
	}
	return e, err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id int64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	ub := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id})

	hasChanges := false
	set := func(column string, value interface{}) {
		ub = ub.Set(column, value)
		hasChanges = true
	}
	if payload.EquipmentID != nil {
		set("equipment_id", *payload.EquipmentID)
	}
	if payload.EquipmentName != nil {
		set("equipment_name", *payload.EquipmentName)
	}
	if payload.EquipmentType != nil {
		set("equipment_type", *payload.EquipmentType)
	}
	if payload.Model != nil {
		set("model", *payload.Model)
	}
	if payload.SerialNumber != nil {
		set("serial_number", *payload.SerialNumber)
	}
	if payload.CountryOfOrigin != nil {
		set("country_of_origin", *payload.CountryOfOrigin)
	}
	if payload.Manufacturer != nil {
		set("manufacturer", *payload.Manufacturer)
	}
	if payload.UnitPrice != nil {
		set("unit_price", payload.UnitPrice.String())
	}
	if payload.VAT != nil {
		set("vat", payload.VAT.String())
	}
	if payload.FundingSource != nil {
		set("funding_source", *payload.FundingSource)
	}
	if payload.Supplier != nil {
		set("supplier", *payload.Supplier)
	}
	if payload.Status != nil {
		set("status", *payload.Status)
	}
	if payload.PurchaseDate != nil {
		set("purchase_date", *payload.PurchaseDate)
	}
	if payload.WarrantyExpiry != nil {
		set("warranty_expiry", *payload.WarrantyExpiry)
	}
	if payload.DepartmentID.Valid {
		set("department_id", payload.DepartmentID.Int64)
	}
	if !hasChanges {
		return r.FindEquipment(ctx, id)
	}

	query, args, err := ub.Suffix("RETURNING " + equipmentColumns).ToSql()
	if err != nil {
		return nil, err
	}
	e, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if isUniqueViolation(err) {
		return nil, apperrors.ErrEquipmentCodeTaken
	}
	return e, err
}

func (r *EquipmentRepository) UpdateEquipmentStatus(ctx context.Context, id int64, status string) error {
	result, err := r.storage.Exec(ctx, "UPDATE equipment SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
