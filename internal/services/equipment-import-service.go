package services

import (
	"context"
	"io"
	"strconv"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

// EquipmentImportService runs the spreadsheet bulk import for equipment.
// Rows are processed independently: a bad row is reported and skipped, the
// rest still land.
type EquipmentImportService struct {
	equipment repositories.EquipmentRepositoryInterface
	validator *utils.Validator
	logger    *zap.Logger
}

func NewEquipmentImportService(
	equipment repositories.EquipmentRepositoryInterface,
	validator *utils.Validator,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{equipment: equipment, validator: validator, logger: logger}
}

func equipmentFromRow(record importRow) (dto.CreateEquipmentDTO, error) {
	payload := dto.CreateEquipmentDTO{
		EquipmentID:     record.pick("equipment_id", "equipmentId"),
		EquipmentName:   record.pick("equipment_name", "equipmentName"),
		EquipmentType:   record.pick("equipment_type", "equipmentType"),
		Model:           record.pick("model"),
		SerialNumber:    record.pick("serial_number", "serialNumber"),
		CountryOfOrigin: record.pick("country_of_origin", "countryOfOrigin"),
		Manufacturer:    record.pick("manufacturer"),
		UnitPrice:       types.Decimal(record.pick("unit_price", "unitPrice")),
		VAT:             types.Decimal(record.pick("vat")),
		FundingSource:   record.pick("funding_source", "fundingSource"),
		Supplier:        record.pick("supplier"),
		Status:          record.pick("status"),
		PurchaseDate:    record.pick("purchase_date", "purchaseDate"),
		WarrantyExpiry:  record.pick("warranty_expiry", "warrantyExpiry"),
	}
	if payload.Status == "" {
		payload.Status = constants.EquipmentStatusActive
	}
	if raw := record.pick("department_id", "departmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return payload, err
		}
		payload.DepartmentID = null.Int64From(id)
	}
	return payload, nil
}

func (s *EquipmentImportService) Import(ctx context.Context, filename string, file io.Reader) (*dto.ImportResultDTO, error) {
	rows, err := decodeUploadRows(filename, file)
	if err != nil {
		return nil, err
	}
	records, err := rowsToRecords(rows)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Total: len(records)}
	for i, record := range records {
		rowNum := i + 1
		payload, err := equipmentFromRow(record)
		if err == nil {
			err = s.validator.Validate(payload)
		}
		if err == nil {
			_, err = s.equipment.CreateEquipment(ctx, payload)
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		result.Imported++
	}
	result.Success = true
	s.logger.Info("equipment import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
