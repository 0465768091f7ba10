package customvalidator

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the domain rules used by the insert
// schemas: "decimal" for non-negative decimal-as-text fields and "vat" for
// percentages in [0,100].
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal", isNonNegativeDecimal); err != nil {
		return err
	}
	return v.RegisterValidation("vat", isVatPercentage)
}

func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && f >= 0
}

func isVatPercentage(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && f >= 0 && f <= 100
}
