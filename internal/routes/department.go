package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/middleware"
)

func runDepartmentRouter(api *echo.Group, storage *repositories.Storage, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	var (
		departmentService = services.NewDepartmentService(storage.Departments, logger)
		departmentCtrl    = controllers.NewDepartmentController(departmentService, logger)
	)
	api.GET("/departments", departmentCtrl.GetDepartments, authMW.RequireAuth)
	api.POST("/departments", departmentCtrl.CreateDepartment, authMW.RequireAuth, authMW.RequireAdminOrManager)
}
