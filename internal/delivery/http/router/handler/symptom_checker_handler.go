package handler

import (
	"log/slog"
	"net/http"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SymptomCheckerHandler holds dependencies for the symptom checker
// conversation endpoints.
type SymptomCheckerHandler struct {
	uc     usecase.SymptomCheckerUsecase
	logger *slog.Logger
}

// NewSymptomCheckerHandler is the constructor for SymptomCheckerHandler,
// injected by Fx.
func NewSymptomCheckerHandler(uc usecase.SymptomCheckerUsecase, logger *slog.Logger) *SymptomCheckerHandler {
	return &SymptomCheckerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Init starts a new conversation.
func (h *SymptomCheckerHandler) Init(c echo.Context) error {
	output, err := h.uc.Init(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Submit forwards the selected symptoms to the external agent.
func (h *SymptomCheckerHandler) Submit(c echo.Context) error {
	var input usecase.SubmitSymptomsInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WithDetails("Invalid symptom submission input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}
