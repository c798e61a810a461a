package routes

import (
	"github.com/labstack/echo/v4"

	"gmao-system/internal/controllers"
)

func runAssistantRouter(g *echo.Group, ctrl *controllers.AssistantController) {
	g.POST("/assistant", ctrl.Ask)
}
