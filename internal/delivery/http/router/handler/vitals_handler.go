package handler

import (
	"log/slog"
	"net/http"

	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VitalsHandler holds dependencies for the vitals simulation endpoint.
type VitalsHandler struct {
	uc     usecase.VitalsUsecase
	logger *slog.Logger
}

// NewVitalsHandler is the constructor for VitalsHandler, injected by Fx.
func NewVitalsHandler(uc usecase.VitalsUsecase, logger *slog.Logger) *VitalsHandler {
	return &VitalsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Update generates fresh readings for the user and replaces their vitals
// subtree.
func (h *VitalsHandler) Update(c echo.Context) error {
	userID := c.Param("user_id")

	output, err := h.uc.UpdateVitals(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}
