package dto

import (
	"github.com/aarondl/null/v8"

	"inventory-system/pkg/types"
)

// CreateEquipmentDTO is the validated insert schema shared by the direct
// API creation endpoint and the import pipeline.
type CreateEquipmentDTO struct {
	EquipmentID     string        `json:"equipmentId" validate:"required"`
	EquipmentName   string        `json:"equipmentName" validate:"required"`
	EquipmentType   string        `json:"equipmentType" validate:"required"`
	Model           string        `json:"model" validate:"required"`
	SerialNumber    string        `json:"serialNumber" validate:"required"`
	CountryOfOrigin string        `json:"countryOfOrigin" validate:"required"`
	Manufacturer    string        `json:"manufacturer" validate:"required"`
	UnitPrice       types.Decimal `json:"unitPrice" validate:"required,decimal"`
	VAT             types.Decimal `json:"vat" validate:"required,vat"`
	FundingSource   string        `json:"fundingSource" validate:"required"`
	Supplier        string        `json:"supplier" validate:"required"`
	Status          string        `json:"status" validate:"required,oneof=Active Maintenance Inactive PendingMaintenance"`
	PurchaseDate    string        `json:"purchaseDate" validate:"required"`
	WarrantyExpiry  string        `json:"warrantyExpiry" validate:"required"`
	DepartmentID    null.Int64    `json:"departmentId"`
}

// UpdateEquipmentDTO applies a partial update: absent fields stay unchanged.
type UpdateEquipmentDTO struct {
	EquipmentID     *string        `json:"equipmentId"`
	EquipmentName   *string        `json:"equipmentName"`
	EquipmentType   *string        `json:"equipmentType"`
	Model           *string        `json:"model"`
	SerialNumber    *string        `json:"serialNumber"`
	CountryOfOrigin *string        `json:"countryOfOrigin"`
	Manufacturer    *string        `json:"manufacturer"`
	UnitPrice       *types.Decimal `json:"unitPrice" validate:"omitempty,decimal"`
	VAT             *types.Decimal `json:"vat" validate:"omitempty,vat"`
	FundingSource   *string        `json:"fundingSource"`
	Supplier        *string        `json:"supplier"`
	Status          *string        `json:"status" validate:"omitempty,oneof=Active Maintenance Inactive PendingMaintenance"`
	PurchaseDate    *string        `json:"purchaseDate"`
	WarrantyExpiry  *string        `json:"warrantyExpiry"`
	DepartmentID    null.Int64     `json:"departmentId"`
}
