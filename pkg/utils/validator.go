package utils

import (
	apperrors "inventory-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator and turns
// field errors into the boundary's InvalidInputError shape.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &apperrors.InvalidInputError{Message: "validation failed", Fields: fields}
}
