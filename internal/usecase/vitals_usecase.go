package usecase

import "context"

// VitalsUsecase defines the interface for the simulated vitals generator.
type VitalsUsecase interface {
	UpdateVitals(ctx context.Context, userID string) (*UpdateVitalsOutput, error)
}

// --- Output DTOs ---

// UpdateVitalsOutput returns the raw generated readings, not the derived
// status strings.
type UpdateVitalsOutput struct {
	Status        string `json:"status"`
	UserID        string `json:"user_id"`
	Heartrate     int    `json:"heartrate"`
	BloodPressure int    `json:"blood_pressure"`
}
