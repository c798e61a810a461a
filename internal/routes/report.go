package routes

import (
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/parc", ctrl.GetParcReport)
}
