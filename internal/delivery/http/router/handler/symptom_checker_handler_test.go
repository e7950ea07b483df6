package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "zml/internal/domain/errors"
	mockUsecase "zml/internal/mocks/usecase"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSymptomCheckerHandler_Init_Success(t *testing.T) {
	uc := mockUsecase.NewMockSymptomCheckerUsecase(t)
	h := NewSymptomCheckerHandler(uc, discardLogger())

	uc.EXPECT().
		Init(mock.Anything).
		Return(&usecase.InitConversationOutput{ConversationID: "conv-abc"}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/symptom-checker/init", h.Init)
	})

	rec := doJSON(e, http.MethodPost, "/symptom-checker/init", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "conv-abc", body["conversation_id"])
}

func TestSymptomCheckerHandler_Submit_Success(t *testing.T) {
	uc := mockUsecase.NewMockSymptomCheckerUsecase(t)
	h := NewSymptomCheckerHandler(uc, discardLogger())

	uc.EXPECT().
		Submit(mock.Anything, &usecase.SubmitSymptomsInput{
			ConversationID: "conv-abc",
			Symptoms:       []string{"headache", "fever"},
		}).
		Return(&usecase.SubmitSymptomsOutput{Detail: "Symptoms submitted successfully."}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/symptom-checker/submit", h.Submit)
	})

	rec := doJSON(e, http.MethodPost, "/symptom-checker/submit",
		`{"conversation_id": "conv-abc", "symptoms": ["headache", "fever"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Symptoms submitted successfully.", body["detail"])
}

func TestSymptomCheckerHandler_Submit_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing conversation id", `{"symptoms": ["headache"]}`},
		{"missing symptoms", `{"conversation_id": "conv-abc"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockSymptomCheckerUsecase(t)
			h := NewSymptomCheckerHandler(uc, discardLogger())

			e := newTestServer(func(e *echo.Echo) {
				e.POST("/symptom-checker/submit", h.Submit)
			})

			rec := doJSON(e, http.MethodPost, "/symptom-checker/submit", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
		})
	}
}

func TestSymptomCheckerHandler_Submit_AgentTimeout(t *testing.T) {
	uc := mockUsecase.NewMockSymptomCheckerUsecase(t)
	h := NewSymptomCheckerHandler(uc, discardLogger())

	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*usecase.SubmitSymptomsInput")).
		Return(nil, domainerrors.ErrAgentTimeout.
			WithDetails("The agent did not respond within the configured timeout."))

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/symptom-checker/submit", h.Submit)
	})

	rec := doJSON(e, http.MethodPost, "/symptom-checker/submit",
		`{"conversation_id": "conv-abc", "symptoms": ["headache"]}`)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "AGENT_TIMEOUT", envelope.Error.Code)
}

func TestSymptomCheckerHandler_Submit_AgentFailure(t *testing.T) {
	uc := mockUsecase.NewMockSymptomCheckerUsecase(t)
	h := NewSymptomCheckerHandler(uc, discardLogger())

	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*usecase.SubmitSymptomsInput")).
		Return(nil, domainerrors.ErrInternal.WithDetails("Failed to get response from agent."))

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/symptom-checker/submit", h.Submit)
	})

	rec := doJSON(e, http.MethodPost, "/symptom-checker/submit",
		`{"conversation_id": "conv-abc", "symptoms": ["headache"]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	assert.Equal(t, "Failed to get response from agent.", envelope.Error.Message)
}
