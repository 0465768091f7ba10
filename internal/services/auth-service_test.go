package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

func TestAuthServiceLogin(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	ctx := context.Background()
	_, err := storage.Users.CreateUser(ctx, dto.CreateUserDTO{
		Username: "admin",
		Password: "admin123",
		FullName: "System Administrator",
		Role:     "admin",
	})
	require.NoError(t, err)

	svc := NewAuthService(storage.Users, zap.NewNop())

	user, err := svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	// Wrong password and unknown username must be indistinguishable.
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
