package handler

import (
	"log/slog"
	"net/http"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthenticationHandler holds dependencies for authentication handlers.
type AuthenticationHandler struct {
	uc     usecase.AuthenticationUsecase
	logger *slog.Logger
}

// NewAuthenticationHandler is the constructor for AuthenticationHandler,
// injected by Fx.
func NewAuthenticationHandler(uc usecase.AuthenticationUsecase, logger *slog.Logger) *AuthenticationHandler {
	return &AuthenticationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthenticationHandler) Register(c echo.Context) error {
	var input usecase.TokenInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WithDetails("Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// GetMe decodes the caller's token and returns the full claim set.
func (h *AuthenticationHandler) GetMe(c echo.Context) error {
	var input usecase.TokenInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WithDetails("Invalid token input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	claims, err := h.uc.GetMe(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, claims)
}
