// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zml/internal/delivery/http/router/handler"
	"zml/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler         *handler.HealthHandler
	AuthenticationHandler *handler.AuthenticationHandler
	MedicalInfoHandler    *handler.MedicalInfoHandler
	VitalsHandler         *handler.VitalsHandler
	SymptomCheckerHandler *handler.SymptomCheckerHandler
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler         *handler.HealthHandler
	authenticationHandler *handler.AuthenticationHandler
	medicalInfoHandler    *handler.MedicalInfoHandler
	vitalsHandler         *handler.VitalsHandler
	symptomCheckerHandler *handler.SymptomCheckerHandler
	requestIDMiddleware   *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:         params.HealthHandler,
		authenticationHandler: params.AuthenticationHandler,
		medicalInfoHandler:    params.MedicalInfoHandler,
		vitalsHandler:         params.VitalsHandler,
		symptomCheckerHandler: params.SymptomCheckerHandler,
		requestIDMiddleware:   params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	authGroup := e.Group("/authentication")
	{
		authGroup.POST("/register", r.authenticationHandler.Register)
		authGroup.POST("/me", r.authenticationHandler.GetMe)
	}

	medicalGroup := e.Group("/medical-info")
	{
		medicalGroup.GET("/:user_id", r.medicalInfoHandler.Get)
		medicalGroup.POST("/:user_id", r.medicalInfoHandler.Set)
	}

	checkerGroup := e.Group("/symptom-checker")
	{
		checkerGroup.POST("/init", r.symptomCheckerHandler.Init)
		checkerGroup.POST("/submit", r.symptomCheckerHandler.Submit)
	}

	e.POST("/vitals/:user_id", r.vitalsHandler.Update)
}
