package entities

import "github.com/aarondl/null/v8"

// User carries its password only inside the process; the json tag keeps it
// out of every response body.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Password     string     `json:"-"`
	FullName     string     `json:"fullName"`
	Role         string     `json:"role"`
	DepartmentID null.Int64 `json:"departmentId"`
}
