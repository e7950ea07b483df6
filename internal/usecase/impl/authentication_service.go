package impl

import (
	"context"
	"log/slog"

	"zml/internal/domain/entity"
	"zml/internal/domain/repository"
	"zml/internal/domain/service"
	"zml/internal/usecase"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	provider service.IdentityProvider
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(
	provider service.IdentityProvider,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.AuthenticationUsecase {
	return &authenticationService{
		provider: provider,
		users:    users,
		logger:   logger,
	}
}

// Register verifies the token, attaches the fixed custom claim set to the
// identity record and mirrors the identity into the document store.
// Repeating the call reapplies the same claim set; there is nothing to
// accumulate.
func (srv *authenticationService) Register(ctx context.Context, token string) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Processing registration request")

	verified, err := srv.provider.VerifyToken(ctx, token)
	if err != nil {
		return nil, passThrough(err, "an unexpected error occurred during registration")
	}

	if err := srv.provider.SetCustomClaims(ctx, verified.UID, entity.RegistrationClaims()); err != nil {
		return nil, passThrough(err, "an unexpected error occurred during registration")
	}

	profile := map[string]any{"uid": verified.UID}
	if email, ok := verified.Claims["email"]; ok {
		profile["email"] = email
	}
	if err := srv.users.RegisterUser(ctx, verified.UID, profile); err != nil {
		return nil, passThrough(err, "failed to register user")
	}

	srv.logger.Info("User registered successfully", slog.String("uid", verified.UID))

	return &usecase.RegisterOutput{
		Detail: "User registered successfully",
		UID:    verified.UID,
	}, nil
}

// GetMe verifies the token and returns the full claim set unmodified.
func (srv *authenticationService) GetMe(ctx context.Context, token string) (map[string]any, error) {
	srv.logger.Info("Processing get me request")

	verified, err := srv.provider.VerifyToken(ctx, token)
	if err != nil {
		return nil, passThrough(err, "an unexpected error occurred")
	}

	claims := make(map[string]any, len(verified.Claims)+1)
	for key, value := range verified.Claims {
		claims[key] = value
	}
	claims["uid"] = verified.UID

	srv.logger.Info("Token decoded successfully", slog.String("uid", verified.UID))

	return claims, nil
}
