package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/session"
	"inventory-system/pkg/utils"
)

type AuthController struct {
	authService *services.AuthService
	sessions    session.Store
	cookieName  string
	ttl         time.Duration
	logger      *zap.Logger
}

func NewAuthController(authService *services.AuthService, sessions session.Store, cookieName string, ttl time.Duration, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookieName:  cookieName,
		ttl:         ttl,
		logger:      logger,
	}
}

func (c *AuthController) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sid, err := c.sessions.Create(ctx.Request().Context(), user.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ctx.SetCookie(c.sessionCookie(sid, int(c.ttl.Seconds())))

	c.logger.Info("user logged in", zap.String("username", user.Username))
	return ctx.JSON(http.StatusOK, user)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(c.cookieName); err == nil && cookie.Value != "" {
		if err := c.sessions.Delete(ctx.Request().Context(), cookie.Value); err != nil {
			c.logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	ctx.SetCookie(c.sessionCookie("", -1))
	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (c *AuthController) Me(ctx echo.Context) error {
	user, err := utils.UserFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, user)
}
