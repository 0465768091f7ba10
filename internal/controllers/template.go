package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TemplateController struct {
	templateService *services.TemplateService
	logger          *zap.Logger
}

func NewTemplateController(service *services.TemplateService, logger *zap.Logger) *TemplateController {
	return &TemplateController{templateService: service, logger: logger}
}

func (c *TemplateController) serve(ctx echo.Context, filename, contentType string, data []byte, err error) error {
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, contentType, data)
}

func (c *TemplateController) EquipmentXLSX(ctx echo.Context) error {
	data, err := c.templateService.EquipmentXLSX()
	return c.serve(ctx, "template.xlsx", xlsxContentType, data, err)
}

func (c *TemplateController) EquipmentCSV(ctx echo.Context) error {
	data, err := c.templateService.EquipmentCSV()
	return c.serve(ctx, "template.csv", "text/csv", data, err)
}

func (c *TemplateController) UserXLSX(ctx echo.Context) error {
	data, err := c.templateService.UserXLSX()
	return c.serve(ctx, "user-template.xlsx", xlsxContentType, data, err)
}

func (c *TemplateController) UserCSV(ctx echo.Context) error {
	data, err := c.templateService.UserCSV()
	return c.serve(ctx, "user-template.csv", "text/csv", data, err)
}
