package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zml/internal/delivery/http/response"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func getEnvelope(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)

	return rec, envelope
}

func TestErrorMiddleware_DomainErrorUsesDetails(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return domainerrors.ErrNotFound.WithDetails("Medical info not found for user ghost")
	})

	rec, envelope := getEnvelope(t, e, "/boom")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	assert.Equal(t, "Medical info not found for user ghost", envelope.Error.Message)
	assert.Equal(t, "/boom", envelope.Error.Path)
}

func TestErrorMiddleware_DomainErrorFallsBackToMessage(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return domainerrors.ErrConflict
	})

	rec, envelope := getEnvelope(t, e, "/boom")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
	assert.Equal(t, domainerrors.ErrConflict.Message(), envelope.Error.Message)
}

func TestErrorMiddleware_UnauthorizedSetsBearerChallenge(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return domainerrors.ErrTokenExpired
	})

	rec, envelope := getEnvelope(t, e, "/boom")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "TOKEN_EXPIRED", envelope.Error.Code)
}

func TestErrorMiddleware_WrappedDomainErrorStillRecognized(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrAgentTimeout, "submitting symptoms")
	})

	rec, envelope := getEnvelope(t, e, "/boom")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "AGENT_TIMEOUT", envelope.Error.Code)
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := newTestEcho()

	rec, envelope := getEnvelope(t, e, "/no-such-route")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestErrorMiddleware_CatchAllIsInternalError(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("something deep broke")
	})

	rec, envelope := getEnvelope(t, e, "/boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	// the raw error text never leaks to the client
	assert.NotContains(t, envelope.Error.Message, "something deep broke")
}
