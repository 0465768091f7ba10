package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/session"
)

func runAuthRouter(api *echo.Group, storage *repositories.Storage, sessions session.Store, authMW *middleware.AuthMiddleware, logger *zap.Logger, cfg *config.Config) {
	var (
		authService = services.NewAuthService(storage.Users, logger)
		authCtrl    = controllers.NewAuthController(authService, sessions, cfg.Session.CookieName, cfg.Session.TTL, logger)
	)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.GET("/auth/me", authCtrl.Me, authMW.RequireAuth)
}
