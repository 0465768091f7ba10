package middleware

import (
	"context"

	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/session"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	sessions   session.Store
	users      repositories.UserRepositoryInterface
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(sessions session.Store, users repositories.UserRepositoryInterface, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireAuth resolves the session cookie to a user and places the user in
// the request context; without a valid session the request stays anonymous
// and is rejected with 401.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		userID, err := m.sessions.Get(ctx, cookie.Value)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		user, err := m.users.FindUser(ctx, userID)
		if err != nil {
			// Session outlived the account; treat as anonymous.
			m.logger.Warn("session resolved to unknown user", zap.Int64("userID", userID))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		c.SetRequest(c.Request().WithContext(context.WithValue(ctx, contextkeys.UserKey, user)))
		return next(c)
	}
}

// RequireAdminOrManager rejects authenticated callers whose role grants no
// management rights.
func (m *AuthMiddleware) RequireAdminOrManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := utils.UserFromContext(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if !constants.IsElevatedRole(user.Role) {
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}
