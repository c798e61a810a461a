package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gmao-system/internal/services"
	"gmao-system/pkg/types"
	"gmao-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetParcReport renvoie le récapitulatif du parc, en JSON par défaut ou en
// xlsx avec ?format=xlsx.
func (c *ReportController) GetParcReport(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))

	stats, err := c.reportService.GetParcSummary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, stats)
	}

	return utils.SuccessResponse(ctx, stats, "Récapitulatif du parc généré", http.StatusOK, uint64(len(stats)))
}

var parcReportHeaders = []string{
	"Département", "Total équipements", "Opérationnels", "En maintenance", "En panne",
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, stats []types.DepartmentParcStat) error {
	f := excelize.NewFile()
	sheet := "Parc par département"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &parcReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "E1", style)

	for i, s := range stats {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{s.Name, s.TotalCount, s.OperationalCount, s.MaintenanceCount, s.DownCount}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "E", 18)

	fileName := fmt.Sprintf("parc_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
