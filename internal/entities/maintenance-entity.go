package entities

import "github.com/aarondl/null/v8"

// Maintenance records are append-only: no update or delete operations exist.
type Maintenance struct {
	ID              int64       `json:"id"`
	EquipmentID     null.Int64  `json:"equipmentId"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	MaintenanceType string      `json:"maintenanceType"`
	PerformedBy     string      `json:"performedBy"`
	Notes           null.String `json:"notes"`
	Status          string      `json:"status"`
}
