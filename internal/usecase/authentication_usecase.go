// Package usecase contains the application-specific business rules.
package usecase

import "context"

// AuthenticationUsecase defines the interface for authentication-related
// business operations. The identity provider stays authoritative; no
// session state is held locally.
type AuthenticationUsecase interface {
	Register(ctx context.Context, token string) (*RegisterOutput, error)
	GetMe(ctx context.Context, token string) (map[string]any, error)
}

// --- Input DTOs ---

// TokenInput carries the identity provider token for register/me calls.
type TokenInput struct {
	Token string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput is the registration acknowledgment.
type RegisterOutput struct {
	Detail string `json:"detail"`
	UID    string `json:"uid"`
}
