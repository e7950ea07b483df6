package usecase

import "context"

// HealthUsecase defines the liveness and readiness checks.
type HealthUsecase interface {
	Live() *LivenessOutput
	Ready(ctx context.Context) *ReadinessOutput
}

// --- Output DTOs ---

// LivenessOutput is the basic liveness payload.
type LivenessOutput struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// ReadinessOutput reports per-backend connectivity.
type ReadinessOutput struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
