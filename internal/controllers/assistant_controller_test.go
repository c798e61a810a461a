package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gmao-system/pkg/utils"
)

type fakeAssistantService struct {
	lastQuestion string
	answer       string
}

func (f *fakeAssistantService) Answer(ctx context.Context, question string) string {
	f.lastQuestion = question
	return f.answer
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func TestAssistantController_Ask(t *testing.T) {
	e := newTestEcho()
	svc := &fakeAssistantService{answer: "Le taux de résolution des pannes est de 40.0% (4 résolues sur 10)."}
	ctrl := NewAssistantController(svc, zap.NewNop())

	body := `{"question": "Quel est le taux de résolution des pannes ?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.Ask(e.NewContext(req, rec))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quel est le taux de résolution des pannes ?", svc.lastQuestion)
	assert.Contains(t, rec.Body.String(), "40.0%")
	assert.Contains(t, rec.Body.String(), `"status":true`)
}

func TestAssistantController_Ask_EmptyQuestionRejected(t *testing.T) {
	e := newTestEcho()
	ctrl := NewAssistantController(&fakeAssistantService{answer: "ne doit pas être appelé"}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(`{"question": ""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.Ask(e.NewContext(req, rec))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestAssistantController_Ask_MalformedBodyRejected(t *testing.T) {
	e := newTestEcho()
	ctrl := NewAssistantController(&fakeAssistantService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(`{pas du json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.Ask(e.NewContext(req, rec))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
