package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gmao-system/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total,omitempty"`
}

func SuccessResponse(c echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.Total = &total[0]
	}
	return c.JSON(code, response)
}

// ErrorResponse est la frontière HTTP unique : on logge la cause technique,
// le client ne reçoit que le message utilisateur.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("Erreur HTTP",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		response := &HttpResponse{
			Status:  false,
			Message: httpErr.Message,
		}
		if httpErr.Details != nil {
			response.Body = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Le champ '%s' ne respecte pas la règle '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HttpResponse{
			Status:  false,
			Message: "Erreur de validation : " + strings.Join(msgs, " ; "),
		})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.JSON(http.StatusNotFound, &HttpResponse{Status: false, Message: err.Error()})
	}

	logger.Error("Erreur interne non typée", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HttpResponse{
		Status:  false,
		Message: "Une erreur interne s'est produite",
	})
}
