// Package middleware contains the HTTP-level middleware for the echo
// server.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"zml/internal/delivery/http/response"
	domainerrors "zml/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler failure as the uniform error
// envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Domain
// errors carry their own status and code; validation failures map to
// 422; everything unrecognized collapses to 500 INTERNAL_ERROR.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	path := c.Request().URL.Path

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.render(c, appErr.HTTPCode(), appErr.ErrorCode(), envelopeMessage(appErr), path)
		return
	}

	var validationErrs playgroundvalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.render(c, http.StatusUnprocessableEntity,
			domainerrors.ErrValidation.ErrorCode(), validationErrs.Error(), path)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.render(c, httpErr.Code, httpErrorCode(httpErr.Code),
			fmt.Sprintf("%v", httpErr.Message), path)
		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", path),
		slog.String("method", c.Request().Method),
	)

	m.render(c, http.StatusInternalServerError,
		domainerrors.ErrInternal.ErrorCode(), domainerrors.ErrInternal.Message(), path)
}

func (m *ErrorMiddleware) render(c echo.Context, status int, code, message, path string) {
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	if err := c.JSON(status, response.NewError(code, message, path)); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

// envelopeMessage prefers the detailed description when one was attached.
func envelopeMessage(appErr domainerrors.AppError) string {
	if details := appErr.Details(); details != "" {
		return details
	}

	return appErr.Message()
}

// httpErrorCode maps raw echo statuses (unknown routes, bad JSON bodies)
// onto the business error codes.
func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode()
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.ErrorCode()
	case http.StatusConflict:
		return domainerrors.ErrConflict.ErrorCode()
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return domainerrors.ErrValidation.ErrorCode()
	default:
		return domainerrors.ErrInternal.ErrorCode()
	}
}
