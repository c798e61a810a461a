package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gmao-system/internal/dto"
	"gmao-system/internal/services"
	apperrors "gmao-system/pkg/errors"
	"gmao-system/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
	logger           *zap.Logger
}

func NewAssistantController(assistantService services.AssistantServiceInterface, logger *zap.Logger) *AssistantController {
	return &AssistantController{assistantService: assistantService, logger: logger}
}

// Ask reçoit une question libre et renvoie la réponse de l'assistant.
// L'assistant ne remonte jamais d'erreur : une fois la question validée,
// la réponse HTTP est toujours un 200 avec une chaîne.
func (c *AssistantController) Ask(ctx echo.Context) error {
	var payload dto.AskQuestionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	answer := c.assistantService.Answer(ctx.Request().Context(), payload.Question)

	return utils.SuccessResponse(ctx, dto.AssistantAnswerDTO{
		Question: payload.Question,
		Answer:   answer,
	}, "Réponse générée", http.StatusOK)
}
