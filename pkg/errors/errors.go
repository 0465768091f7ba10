package errors

import "fmt"

var (
	// Auth
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrUnauthorized       = fmt.Errorf("authentication required")
	ErrForbidden          = fmt.Errorf("access denied")

	// Context
	ErrUserNotFoundInContext = fmt.Errorf("user not found in request context")

	// General
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("invalid request")

	// Referential integrity
	ErrUsernameTaken      = fmt.Errorf("username already exists")
	ErrEquipmentCodeTaken = fmt.Errorf("equipment id already exists")
	ErrDepartmentMissing  = fmt.Errorf("referenced department does not exist")
	ErrEquipmentMissing   = fmt.Errorf("referenced equipment does not exist")
)

// InvalidInputError carries field-level validation detail to the boundary.
type InvalidInputError struct {
	Message string
	Fields  map[string]string
}

func (e *InvalidInputError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	msg := e.Message
	for field, rule := range e.Fields {
		msg += fmt.Sprintf("; %s (%s)", field, rule)
	}
	return msg
}

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
