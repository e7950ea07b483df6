package firestore

import (
	"context"
	"fmt"
	"log/slog"

	"zml/internal/domain/entity"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

// Medical info lives in one flat collection keyed by user id, separate
// from the identity records.
const collectionMedicalInfo = "medical_info"

type medicalInfoRepository struct {
	client *fs.Client
	col    *Collection[entity.MedicalInfo]
	logger *slog.Logger
}

// NewMedicalInfoRepository is the constructor for medicalInfoRepository.
func NewMedicalInfoRepository(client *fs.Client, logger *slog.Logger) repository.MedicalInfoRepository {
	return &medicalInfoRepository{
		client: client,
		col:    NewCollection[entity.MedicalInfo](client, collectionMedicalInfo),
		logger: logger,
	}
}

// GetUserMedicalInfo returns the user's record, or nil when none exists.
func (repo *medicalInfoRepository) GetUserMedicalInfo(ctx context.Context, userID string) (*entity.MedicalInfo, error) {
	return repo.col.GetByID(ctx, userID)
}

// SetUserMedicalInfo merge-writes height and weight together with server
// timestamps. Unrelated fields already stored on the record survive.
func (repo *medicalInfoRepository) SetUserMedicalInfo(ctx context.Context, userID string, height, weight float64) error {
	data := map[string]any{
		"height":     height,
		"weight":     weight,
		"created_at": fs.ServerTimestamp,
		"updated_at": fs.ServerTimestamp,
	}

	_, err := repo.client.Collection(collectionMedicalInfo).Doc(userID).Set(ctx, data, fs.MergeAll)
	if err != nil {
		repo.logger.Error("Failed to set medical info", slog.String("userID", userID), slog.Any("error", err))

		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to set medical info for user %s", userID))
	}

	return nil
}
