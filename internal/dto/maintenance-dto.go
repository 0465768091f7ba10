package dto

import "github.com/aarondl/null/v8"

type CreateMaintenanceDTO struct {
	EquipmentID     null.Int64  `json:"equipmentId"`
	StartDate       string      `json:"startDate" validate:"required"`
	EndDate         string      `json:"endDate" validate:"required"`
	MaintenanceType string      `json:"maintenanceType" validate:"required"`
	PerformedBy     string      `json:"performedBy" validate:"required"`
	Notes           null.String `json:"notes"`
	Status          string      `json:"status" validate:"omitempty"`
}
