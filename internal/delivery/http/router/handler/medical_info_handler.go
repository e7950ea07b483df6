package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MedicalInfoHandler holds dependencies for medical info handlers.
type MedicalInfoHandler struct {
	uc     usecase.MedicalInfoUsecase
	logger *slog.Logger
}

// NewMedicalInfoHandler is the constructor for MedicalInfoHandler,
// injected by Fx.
func NewMedicalInfoHandler(uc usecase.MedicalInfoUsecase, logger *slog.Logger) *MedicalInfoHandler {
	return &MedicalInfoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the user's medical record or a 404 when none exists.
func (h *MedicalInfoHandler) Get(c echo.Context) error {
	userID := c.Param("user_id")

	record, err := h.uc.GetMedicalInfo(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if record == nil {
		return domainerrors.ErrNotFound.
			WithDetails(fmt.Sprintf("Medical info not found for user %s", userID))
	}

	return c.JSON(http.StatusOK, record)
}

// Set merge-writes height and weight for the user.
func (h *MedicalInfoHandler) Set(c echo.Context) error {
	userID := c.Param("user_id")

	var input usecase.MedicalInfoInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WithDetails("Invalid medical info input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.SetMedicalInfo(c.Request().Context(), userID, input.Height, input.Weight)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, record)
}
