// Package repository defines the persistence contracts consumed by the
// application services.
package repository

import (
	"context"

	"zml/internal/domain/entity"
)

// MedicalInfoRepository persists per-user medical profiles.
type MedicalInfoRepository interface {
	// GetUserMedicalInfo returns nil (not an error) when no record exists
	// for the user.
	GetUserMedicalInfo(ctx context.Context, userID string) (*entity.MedicalInfo, error)

	// SetUserMedicalInfo merge-writes height and weight, preserving any
	// unrelated fields already stored on the record.
	SetUserMedicalInfo(ctx context.Context, userID string, height, weight float64) error
}
