package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

// Template downloads are public: they contain no data, only headers and a
// sample row.
func runTemplateRouter(e *echo.Echo, logger *zap.Logger) {
	var (
		templateService = services.NewTemplateService()
		templateCtrl    = controllers.NewTemplateController(templateService, logger)
	)
	e.GET("/template.xlsx", templateCtrl.EquipmentXLSX)
	e.GET("/template.csv", templateCtrl.EquipmentCSV)
	e.GET("/user-template.xlsx", templateCtrl.UserXLSX)
	e.GET("/user-template.csv", templateCtrl.UserCSV)
}
