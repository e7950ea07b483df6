// Package service defines the contracts for external collaborators.
package service

import (
	"context"

	"zml/internal/domain/entity"
)

// IdentityProvider is the managed identity backend. Verification failures
// surface as the structured domain error variants (token expired, token
// invalid, user not found) rather than free-text matching.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (*entity.VerifiedToken, error)
	SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error
}
