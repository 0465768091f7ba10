package seeders

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

// EnsureDefaultAdmin creates the bootstrap administrator account if it does
// not exist yet. Runs against either storage backend, so a fresh in-memory
// instance is immediately usable.
func EnsureDefaultAdmin(ctx context.Context, storage *repositories.Storage, logger *zap.Logger) error {
	_, err := storage.Users.FindUserByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	_, err = storage.Users.CreateUser(ctx, dto.CreateUserDTO{
		Username: "admin",
		Password: "admin123",
		FullName: "System Administrator",
		Role:     constants.RoleAdmin,
	})
	if errors.Is(err, apperrors.ErrUsernameTaken) {
		// Another instance seeded first.
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("seeded default admin account", zap.String("username", "admin"))
	return nil
}
