package impl

import (
	"context"
	"log/slog"

	"zml/internal/domain/entity"
	"zml/internal/domain/repository"
	"zml/internal/usecase"
)

// medicalInfoService implements the MedicalInfoUsecase interface.
type medicalInfoService struct {
	repo   repository.MedicalInfoRepository
	logger *slog.Logger
}

// NewMedicalInfoService is the constructor for medicalInfoService.
func NewMedicalInfoService(repo repository.MedicalInfoRepository, logger *slog.Logger) usecase.MedicalInfoUsecase {
	return &medicalInfoService{
		repo:   repo,
		logger: logger,
	}
}

// GetMedicalInfo fetches the user's record and injects the user id; the
// stored document does not carry its own id. Returns nil when absent.
func (srv *medicalInfoService) GetMedicalInfo(ctx context.Context, userID string) (*entity.MedicalInfo, error) {
	srv.logger.Debug("Getting medical info", slog.String("userID", userID))

	record, err := srv.repo.GetUserMedicalInfo(ctx, userID)
	if err != nil {
		return nil, passThrough(err, "failed to get medical info")
	}
	if record == nil {
		return nil, nil
	}

	record.UserID = userID

	return record, nil
}

// SetMedicalInfo merge-writes height and weight and echoes the input
// back with the user id attached.
func (srv *medicalInfoService) SetMedicalInfo(ctx context.Context, userID string, height, weight float64) (*entity.MedicalInfo, error) {
	srv.logger.Info("Setting medical info", slog.String("userID", userID))

	if err := srv.repo.SetUserMedicalInfo(ctx, userID, height, weight); err != nil {
		return nil, passThrough(err, "failed to set medical info")
	}

	return &entity.MedicalInfo{
		UserID: userID,
		Height: height,
		Weight: weight,
	}, nil
}
