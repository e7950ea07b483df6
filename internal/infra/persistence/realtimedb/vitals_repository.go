package realtimedb

import (
	"context"
	"fmt"
	"log/slog"

	"zml/internal/domain/entity"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/repository"
)

type vitalsRepository struct {
	client *Client
	logger *slog.Logger
}

// NewVitalsRepository is the constructor for vitalsRepository. Vitals live
// under users/{user_id}/vitals below the client's base path.
func NewVitalsRepository(client *Client, logger *slog.Logger) repository.VitalsRepository {
	return &vitalsRepository{
		client: client,
		logger: logger,
	}
}

func vitalsPath(userID string) string {
	return fmt.Sprintf("users/%s/vitals", userID)
}

// UpdateUserVitals replaces the user's whole vitals subtree in one write;
// the two sub-objects are never written separately.
func (repo *vitalsRepository) UpdateUserVitals(ctx context.Context, userID string, vitals *entity.Vitals) error {
	if err := repo.client.Set(ctx, vitalsPath(userID), vitals); err != nil {
		repo.logger.Error("Failed to update vitals", slog.String("userID", userID), slog.Any("error", err))

		return err
	}

	return nil
}

// GetUserVitals returns the stored vitals, or nil when none exist.
func (repo *vitalsRepository) GetUserVitals(ctx context.Context, userID string) (*entity.Vitals, error) {
	var raw map[string]any
	if err := repo.client.Get(ctx, vitalsPath(userID), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	vitals, err := decodeRecord[entity.Vitals](raw)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to decode vitals for user %s", userID))
	}

	return vitals, nil
}
