package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Username     string     `json:"username" validate:"required,min=3"`
	Password     string     `json:"password" validate:"required,min=4"`
	FullName     string     `json:"fullName" validate:"required"`
	Role         string     `json:"role" validate:"required,oneof=admin manager user"`
	DepartmentID null.Int64 `json:"departmentId"`
}

type ResetPasswordDTO struct {
	Password string `json:"password" validate:"required,min=4"`
}
