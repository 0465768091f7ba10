package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
)

func runEquipmentRouter(api *echo.Group, storage *repositories.Storage, v *utils.Validator, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	var (
		equipmentService = services.NewEquipmentService(storage.Equipment, storage.Departments, logger)
		importService    = services.NewEquipmentImportService(storage.Equipment, v, logger)
		equipmentCtrl    = controllers.NewEquipmentController(equipmentService, importService, logger)
	)
	group := api.Group("/equipment", authMW.RequireAuth)
	group.GET("", equipmentCtrl.GetEquipment)
	group.GET("/:id", equipmentCtrl.FindEquipment)
	group.POST("", equipmentCtrl.CreateEquipment, authMW.RequireAdminOrManager)
	group.PATCH("/:id", equipmentCtrl.UpdateEquipment, authMW.RequireAdminOrManager)
	group.POST("/import", equipmentCtrl.Import, authMW.RequireAdminOrManager)
}
