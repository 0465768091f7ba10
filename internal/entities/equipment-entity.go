package entities

import (
	"github.com/aarondl/null/v8"

	"inventory-system/pkg/types"
)

type Equipment struct {
	ID              int64         `json:"id"`
	EquipmentID     string        `json:"equipmentId"`
	EquipmentName   string        `json:"equipmentName"`
	EquipmentType   string        `json:"equipmentType"`
	Model           string        `json:"model"`
	SerialNumber    string        `json:"serialNumber"`
	CountryOfOrigin string        `json:"countryOfOrigin"`
	Manufacturer    string        `json:"manufacturer"`
	UnitPrice       types.Decimal `json:"unitPrice"`
	VAT             types.Decimal `json:"vat"`
	FundingSource   string        `json:"fundingSource"`
	Supplier        string        `json:"supplier"`
	Status          string        `json:"status"`
	PurchaseDate    string        `json:"purchaseDate"`
	WarrantyExpiry  string        `json:"warrantyExpiry"`
	DepartmentID    null.Int64    `json:"departmentId"`
}
