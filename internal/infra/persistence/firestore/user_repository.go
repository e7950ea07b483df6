package firestore

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

const collectionUsers = "users"

type userRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *fs.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// RegisterUser merge-writes the profile fields under the identity
// provider's uid. The identity provider stays authoritative; this is only
// a mirror for document-store reads.
func (repo *userRepository) RegisterUser(ctx context.Context, uid string, data map[string]any) error {
	_, err := repo.client.Collection(collectionUsers).Doc(uid).Set(ctx, data, fs.MergeAll)
	if err != nil {
		repo.logger.Error("Failed to register user", slog.String("uid", uid), slog.Any("error", err))

		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to register user %s", uid))
	}

	return nil
}
