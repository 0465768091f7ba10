package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

// Storage bundles the per-entity repositories behind one contract so the
// SQL-backed and map-backed variants are interchangeable at startup.
type Storage struct {
	Departments DepartmentRepositoryInterface
	Equipment   EquipmentRepositoryInterface
	Maintenance MaintenanceRepositoryInterface
	Users       UserRepositoryInterface
}

func NewPostgresStorage(pool *pgxpool.Pool, logger *zap.Logger) *Storage {
	return &Storage{
		Departments: NewDepartmentRepository(pool, logger),
		Equipment:   NewEquipmentRepository(pool, logger),
		Maintenance: NewMaintenanceRepository(pool, logger),
		Users:       NewUserRepository(pool, logger),
	}
}

func NewMemoryStorage() *Storage {
	db := newMemoryDB()
	return &Storage{
		Departments: &MemoryDepartmentRepository{db: db},
		Equipment:   &MemoryEquipmentRepository{db: db},
		Maintenance: &MemoryMaintenanceRepository{db: db},
		Users:       &MemoryUserRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func departmentFromCreate(payload dto.CreateDepartmentDTO) entities.Department {
	return entities.Department{Name: payload.Name, Code: payload.Code}
}

func equipmentFromCreate(payload dto.CreateEquipmentDTO) entities.Equipment {
	return entities.Equipment{
		EquipmentID:     payload.EquipmentID,
		EquipmentName:   payload.EquipmentName,
		EquipmentType:   payload.EquipmentType,
		Model:           payload.Model,
		SerialNumber:    payload.SerialNumber,
		CountryOfOrigin: payload.CountryOfOrigin,
		Manufacturer:    payload.Manufacturer,
		UnitPrice:       payload.UnitPrice,
		VAT:             payload.VAT,
		FundingSource:   payload.FundingSource,
		Supplier:        payload.Supplier,
		Status:          payload.Status,
		PurchaseDate:    payload.PurchaseDate,
		WarrantyExpiry:  payload.WarrantyExpiry,
		DepartmentID:    payload.DepartmentID,
	}
}

func maintenanceFromCreate(payload dto.CreateMaintenanceDTO) entities.Maintenance {
	return entities.Maintenance{
		EquipmentID:     payload.EquipmentID,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		MaintenanceType: payload.MaintenanceType,
		PerformedBy:     payload.PerformedBy,
		Notes:           payload.Notes,
		Status:          payload.Status,
	}
}

func userFromCreate(payload dto.CreateUserDTO) entities.User {
	return entities.User{
		Username:     payload.Username,
		Password:     payload.Password,
		FullName:     payload.FullName,
		Role:         payload.Role,
		DepartmentID: payload.DepartmentID,
	}
}

func applyEquipmentUpdate(e *entities.Equipment, payload dto.UpdateEquipmentDTO) {
	if payload.EquipmentID != nil {
		e.EquipmentID = *payload.EquipmentID
	}
	if payload.EquipmentName != nil {
		e.EquipmentName = *payload.EquipmentName
	}
	if payload.EquipmentType != nil {
		e.EquipmentType = *payload.EquipmentType
	}
	if payload.Model != nil {
		e.Model = *payload.Model
	}
	if payload.SerialNumber != nil {
		e.SerialNumber = *payload.SerialNumber
	}
	if payload.CountryOfOrigin != nil {
		e.CountryOfOrigin = *payload.CountryOfOrigin
	}
	if payload.Manufacturer != nil {
		e.Manufacturer = *payload.Manufacturer
	}
	if payload.UnitPrice != nil {
		e.UnitPrice = *payload.UnitPrice
	}
	if payload.VAT != nil {
		e.VAT = *payload.VAT
	}
	if payload.FundingSource != nil {
		e.FundingSource = *payload.FundingSource
	}
	if payload.Supplier != nil {
		e.Supplier = *payload.Supplier
	}
	if payload.Status != nil {
		e.Status = *payload.Status
	}
	if payload.PurchaseDate != nil {
		e.PurchaseDate = *payload.PurchaseDate
	}
	if payload.WarrantyExpiry != nil {
		e.WarrantyExpiry = *payload.WarrantyExpiry
	}
	if payload.DepartmentID.Valid {
		e.DepartmentID = payload.DepartmentID
	}
}
