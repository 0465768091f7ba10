package constants

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

const (
	EquipmentStatusActive             = "Active"
	EquipmentStatusMaintenance        = "Maintenance"
	EquipmentStatusInactive           = "Inactive"
	EquipmentStatusPendingMaintenance = "PendingMaintenance"
)

// MaintenanceStatusPending is the initial status of every maintenance request.
const MaintenanceStatusPending = "Pending"

// IsElevatedRole reports whether a role may manage equipment and users.
func IsElevatedRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}
