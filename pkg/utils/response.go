package utils

import (
	"errors"
	"net/http"

	apperrors "inventory-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse maps a service or repository error to its HTTP status and
// JSON body. Unexpected errors are logged and reported as a bare 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var invalid *apperrors.InvalidInputError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, &ErrorBody{Error: invalid.Message, Details: invalid.Fields})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, &ErrorBody{Error: msg})
	}

	switch {
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrEquipmentCodeTaken),
		errors.Is(err, apperrors.ErrDepartmentMissing):
		return c.JSON(http.StatusBadRequest, &ErrorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrUserNotFoundInContext):
		return c.JSON(http.StatusUnauthorized, &ErrorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		return c.JSON(http.StatusForbidden, &ErrorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrEquipmentMissing):
		return c.JSON(http.StatusNotFound, &ErrorBody{Error: err.Error()})
	}

	logger.Error("unexpected error",
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, &ErrorBody{Error: "internal server error"})
}
