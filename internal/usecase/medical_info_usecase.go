package usecase

import (
	"context"

	"zml/internal/domain/entity"
)

// MedicalInfoUsecase defines the interface for medical info operations.
type MedicalInfoUsecase interface {
	// GetMedicalInfo returns nil when the user has no record; the handler
	// turns that into a 404.
	GetMedicalInfo(ctx context.Context, userID string) (*entity.MedicalInfo, error)

	// SetMedicalInfo stores height and weight for the user and echoes the
	// input back. Positivity of both values is enforced at the request
	// boundary, not here.
	SetMedicalInfo(ctx context.Context, userID string, height, weight float64) (*entity.MedicalInfo, error)
}

// --- Input DTOs ---

// MedicalInfoInput defines the body for setting medical info.
type MedicalInfoInput struct {
	Height float64 `json:"height" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}
