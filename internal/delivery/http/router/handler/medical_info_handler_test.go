package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"zml/internal/domain/entity"
	mockUsecase "zml/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMedicalInfoHandler_Get_Success(t *testing.T) {
	uc := mockUsecase.NewMockMedicalInfoUsecase(t)
	h := NewMedicalInfoHandler(uc, discardLogger())

	uc.EXPECT().
		GetMedicalInfo(mock.Anything, "user-123").
		Return(&entity.MedicalInfo{UserID: "user-123", Height: 180.5, Weight: 75.2}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.GET("/medical-info/:user_id", h.Get)
	})

	rec := doJSON(e, http.MethodGet, "/medical-info/user-123", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-123", body["user_id"])
	assert.InDelta(t, 180.5, body["height"], 0.001)
	assert.InDelta(t, 75.2, body["weight"], 0.001)
}

func TestMedicalInfoHandler_Get_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockMedicalInfoUsecase(t)
	h := NewMedicalInfoHandler(uc, discardLogger())

	uc.EXPECT().GetMedicalInfo(mock.Anything, "ghost").Return(nil, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.GET("/medical-info/:user_id", h.Get)
	})

	rec := doJSON(e, http.MethodGet, "/medical-info/ghost", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "not found")
	assert.Equal(t, "/medical-info/ghost", envelope.Error.Path)
}

func TestMedicalInfoHandler_Set_Success(t *testing.T) {
	uc := mockUsecase.NewMockMedicalInfoUsecase(t)
	h := NewMedicalInfoHandler(uc, discardLogger())

	uc.EXPECT().
		SetMedicalInfo(mock.Anything, "user-123", 180.5, 75.2).
		Return(&entity.MedicalInfo{UserID: "user-123", Height: 180.5, Weight: 75.2}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/medical-info/:user_id", h.Set)
	})

	rec := doJSON(e, http.MethodPost, "/medical-info/user-123",
		`{"height": 180.5, "weight": 75.2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-123", body["user_id"])
}

func TestMedicalInfoHandler_Set_RejectsNonPositiveValues(t *testing.T) {
	values := []float64{0, -1, -0.001}

	for _, value := range values {
		t.Run(fmt.Sprintf("height=%v", value), func(t *testing.T) {
			uc := mockUsecase.NewMockMedicalInfoUsecase(t)
			h := NewMedicalInfoHandler(uc, discardLogger())

			e := newTestServer(func(e *echo.Echo) {
				e.POST("/medical-info/:user_id", h.Set)
			})

			rec := doJSON(e, http.MethodPost, "/medical-info/user-123",
				fmt.Sprintf(`{"height": %v, "weight": 75.2}`, value))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
		})
	}
}

func TestMedicalInfoHandler_Set_RejectsMalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockMedicalInfoUsecase(t)
	h := NewMedicalInfoHandler(uc, discardLogger())

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/medical-info/:user_id", h.Set)
	})

	rec := doJSON(e, http.MethodPost, "/medical-info/user-123", `{"height": "tall"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}
