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

func runUserRouter(api *echo.Group, storage *repositories.Storage, v *utils.Validator, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	var (
		userService   = services.NewUserService(storage.Users, storage.Departments, logger)
		importService = services.NewUserImportService(storage.Users, storage.Departments, v, logger)
		userCtrl      = controllers.NewUserController(userService, importService, logger)
	)
	group := api.Group("/users", authMW.RequireAuth, authMW.RequireAdminOrManager)
	group.GET("", userCtrl.GetUsers)
	group.POST("", userCtrl.CreateUser)
	group.POST("/:id/reset-password", userCtrl.ResetPassword)
	group.POST("/import", userCtrl.Import)
}
