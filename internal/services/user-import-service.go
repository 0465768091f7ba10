package services

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

// UserImportService runs the spreadsheet bulk import for accounts. Unlike
// the equipment import it resolves the department reference up front, so a
// dangling department id fails the row before anything is written.
type UserImportService struct {
	users       repositories.UserRepositoryInterface
	departments repositories.DepartmentRepositoryInterface
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewUserImportService(
	users repositories.UserRepositoryInterface,
	departments repositories.DepartmentRepositoryInterface,
	validator *utils.Validator,
	logger *zap.Logger,
) *UserImportService {
	return &UserImportService{users: users, departments: departments, validator: validator, logger: logger}
}

func userFromRow(record importRow) (dto.CreateUserDTO, error) {
	payload := dto.CreateUserDTO{
		Username: record.pick("username"),
		Password: record.pick("password"),
		FullName: record.pick("full_name", "fullName"),
		Role:     record.pick("role"),
	}
	if raw := record.pick("department_id", "departmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return payload, err
		}
		payload.DepartmentID = null.Int64From(id)
	}
	return payload, nil
}

func (s *UserImportService) importRow(ctx context.Context, record importRow) error {
	payload, err := userFromRow(record)
	if err != nil {
		return err
	}
	if err := s.validator.Validate(payload); err != nil {
		return err
	}
	if payload.DepartmentID.Valid {
		_, err := s.departments.FindDepartment(ctx, payload.DepartmentID.Int64)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrDepartmentMissing
		}
		if err != nil {
			return err
		}
	}
	_, err = s.users.CreateUser(ctx, payload)
	return err
}

func (s *UserImportService) Import(ctx context.Context, filename string, file io.Reader) (*dto.ImportResultDTO, error) {
	rows, err := decodeUploadRows(filename, file)
	if err != nil {
		return nil, err
	}
	records, err := rowsToRecords(rows)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Total: len(records)}
	for i, record := range records {
		if err := s.importRow(ctx, record); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		result.Imported++
	}
	result.Success = true
	s.logger.Info("user import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
