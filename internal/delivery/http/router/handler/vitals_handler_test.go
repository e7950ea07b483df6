package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/errors"
	mockUsecase "zml/internal/mocks/usecase"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVitalsHandler_Update_Success(t *testing.T) {
	uc := mockUsecase.NewMockVitalsUsecase(t)
	h := NewVitalsHandler(uc, discardLogger())

	uc.EXPECT().
		UpdateVitals(mock.Anything, "user-123").
		Return(&usecase.UpdateVitalsOutput{
			Status:        "updated",
			UserID:        "user-123",
			Heartrate:     72,
			BloodPressure: 120,
		}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/vitals/:user_id", h.Update)
	})

	rec := doJSON(e, http.MethodPost, "/vitals/user-123", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "updated", body["status"])
	assert.Equal(t, "user-123", body["user_id"])
	assert.InDelta(t, 72, body["heartrate"], 0.001)
	assert.InDelta(t, 120, body["blood_pressure"], 0.001)
}

func TestVitalsHandler_Update_StorageFailure(t *testing.T) {
	uc := mockUsecase.NewMockVitalsUsecase(t)
	h := NewVitalsHandler(uc, discardLogger())

	uc.EXPECT().
		UpdateVitals(mock.Anything, "user-123").
		Return(nil, domainerrors.NewDatabaseError(errors.New("write rejected"), "failed to update vitals"))

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/vitals/:user_id", h.Update)
	})

	rec := doJSON(e, http.MethodPost, "/vitals/user-123", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "DATABASE_ERROR", envelope.Error.Code)
	assert.Equal(t, "/vitals/user-123", envelope.Error.Path)
}
