package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/session"
	"inventory-system/pkg/utils"
)

// InitRouter wires every route group onto the echo instance. It takes the
// already-selected storage and session backends so tests can run the full
// HTTP surface on the in-memory variants.
func InitRouter(e *echo.Echo, storage *repositories.Storage, sessions session.Store, v *utils.Validator, logger *zap.Logger, cfg *config.Config) {
	e.Validator = v

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(sessions, storage.Users, cfg.Session.CookieName, logger)

	runAuthRouter(api, storage, sessions, authMW, logger, cfg)
	runDepartmentRouter(api, storage, authMW, logger)
	runEquipmentRouter(api, storage, v, authMW, logger)
	runMaintenanceRouter(api, storage, authMW, logger)
	runUserRouter(api, storage, v, authMW, logger)
	runTemplateRouter(e, logger)
}
