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

func TestAuthenticationHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthenticationUsecase(t)
	h := NewAuthenticationHandler(uc, discardLogger())

	uc.EXPECT().
		Register(mock.Anything, "valid-token").
		Return(&usecase.RegisterOutput{Detail: "User registered successfully", UID: "user-123"}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/authentication/register", h.Register)
	})

	rec := doJSON(e, http.MethodPost, "/authentication/register", `{"token": "valid-token"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["detail"])
	assert.Equal(t, "user-123", body["uid"])
}

func TestAuthenticationHandler_Register_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthenticationUsecase(t)
	h := NewAuthenticationHandler(uc, discardLogger())

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/authentication/register", h.Register)
	})

	rec := doJSON(e, http.MethodPost, "/authentication/register", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestAuthenticationHandler_Register_TokenExpired(t *testing.T) {
	uc := mockUsecase.NewMockAuthenticationUsecase(t)
	h := NewAuthenticationHandler(uc, discardLogger())

	uc.EXPECT().
		Register(mock.Anything, "stale-token").
		Return(nil, domainerrors.ErrTokenExpired.
			WithDetails("The provided token has expired. Please re-authenticate."))

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/authentication/register", h.Register)
	})

	rec := doJSON(e, http.MethodPost, "/authentication/register", `{"token": "stale-token"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "TOKEN_EXPIRED", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "expired")
}

func TestAuthenticationHandler_Register_InvalidToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthenticationUsecase(t)
	h := NewAuthenticationHandler(uc, discardLogger())

	uc.EXPECT().
		Register(mock.Anything, "garbage").
		Return(nil, domainerrors.ErrInvalidToken.WithDetails("Invalid token: bad signature"))

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/authentication/register", h.Register)
	})

	rec := doJSON(e, http.MethodPost, "/authentication/register", `{"token": "garbage"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_TOKEN", envelope.Error.Code)
}

func TestAuthenticationHandler_GetMe_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthenticationUsecase(t)
	h := NewAuthenticationHandler(uc, discardLogger())

	uc.EXPECT().
		GetMe(mock.Anything, "valid-token").
		Return(map[string]any{"uid": "user-123", "role": "Dawggy", "version": "1.0"}, nil)

	e := newTestServer(func(e *echo.Echo) {
		e.POST("/authentication/me", h.GetMe)
	})

	rec := doJSON(e, http.MethodPost, "/authentication/me", `{"token": "valid-token"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claims))
	assert.Equal(t, "user-123", claims["uid"])
	assert.Equal(t, "Dawggy", claims["role"])
}
