// Package firebase adapts Firebase Auth to the domain's identity
// provider contract.
package firebase

import (
	"context"
	"log/slog"

	"zml/internal/domain/entity"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/service"

	admin "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type identityProvider struct {
	client *auth.Client
	logger *slog.Logger
}

// NewIdentityProvider creates the Firebase Auth identity provider adapter.
func NewIdentityProvider(ctx context.Context, app *admin.App, logger *slog.Logger) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityProvider{
		client: client,
		logger: logger,
	}, nil
}

// VerifyToken verifies the ID token and returns the decoded uid and claim
// set. Failure variants are structural: the SDK's error predicates decide
// between expired and malformed, never the error text.
func (p *identityProvider) VerifyToken(ctx context.Context, token string) (*entity.VerifiedToken, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		switch {
		case auth.IsIDTokenExpired(err):
			p.logger.Warn("Expired token received", slog.Any("error", err))

			return nil, domainerrors.ErrTokenExpired.
				WithDetails("The provided token has expired. Please re-authenticate.").
				WrapMessage("verify id token")
		default:
			p.logger.Warn("Invalid token received", slog.Any("error", err))

			return nil, domainerrors.ErrInvalidToken.
				WithDetails("Invalid token: " + err.Error()).
				WrapMessage("verify id token")
		}
	}

	return &entity.VerifiedToken{
		UID:    decoded.UID,
		Claims: decoded.Claims,
	}, nil
}

// SetCustomClaims replaces the user's custom claim set. A uid that
// resolves from a valid token but has no identity record behind it is an
// authentication failure, not an internal one.
func (p *identityProvider) SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		if auth.IsUserNotFound(err) {
			p.logger.Error("User not found", slog.String("uid", uid), slog.Any("error", err))

			return domainerrors.ErrAuthentication.
				WithDetails("User not found in Firebase").
				WrapMessage("set custom claims")
		}

		return errors.Wrap(err, "failed to set custom claims")
	}

	return nil
}
