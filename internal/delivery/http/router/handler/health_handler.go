// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"zml/config"
	"zml/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the root info and health endpoints.
type HealthHandler struct {
	uc  usecase.HealthUsecase
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(uc usecase.HealthUsecase, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		uc:  uc,
		cfg: cfg,
	}
}

// Root returns basic service identification.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":        h.cfg.Env.ServiceName,
		"version":     h.cfg.Env.Version,
		"environment": h.cfg.Env.Env,
	})
}

// Live reports process liveness.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Live())
}

// Ready pings the managed backends. An unready service still answers 200;
// callers inspect the status field.
func (h *HealthHandler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Ready(c.Request().Context()))
}
