package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
)

func runMaintenanceRouter(api *echo.Group, storage *repositories.Storage, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	var (
		maintenanceService = services.NewMaintenanceService(storage.Maintenance, storage.Equipment, logger)
		maintenanceCtrl    = controllers.NewMaintenanceController(maintenanceService, logger)
	)
	api.GET("/maintenance", maintenanceCtrl.GetMaintenance, authMW.RequireAuth)
	api.POST("/maintenance", maintenanceCtrl.CreateMaintenance, authMW.RequireAuth)
	api.GET("/equipment/:id/maintenance", maintenanceCtrl.GetMaintenanceByEquipment, authMW.RequireAuth)
}
