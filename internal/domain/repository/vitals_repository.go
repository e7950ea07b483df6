package repository

import (
	"context"

	"zml/internal/domain/entity"
)

// VitalsRepository persists simulated vitals in the real-time tree.
type VitalsRepository interface {
	// UpdateUserVitals replaces the user's whole vitals subtree with the
	// given nested structure.
	UpdateUserVitals(ctx context.Context, userID string, vitals *entity.Vitals) error

	// GetUserVitals returns nil when the user has no vitals recorded.
	GetUserVitals(ctx context.Context, userID string) (*entity.Vitals, error)
}
