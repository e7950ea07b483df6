package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"zml/internal/domain/entity"
	"zml/internal/domain/repository"
	"zml/internal/usecase"
)

// Simulation contract: two readings per update, each in [1, 1000], with
// fixed derivation thresholds. The numbers are demo data, not medicine.
const (
	readingMax             = 1000
	heartRateLowBelow      = 60
	bloodPressureWatchOver = 130
)

// vitalsService implements the VitalsUsecase interface. The random source
// and clock are struct fields so tests can pin them.
type vitalsService struct {
	repo   repository.VitalsRepository
	logger *slog.Logger
	intn   func(n int) int
	now    func() int64
}

// NewVitalsService is the constructor for vitalsService.
func NewVitalsService(repo repository.VitalsRepository, logger *slog.Logger) usecase.VitalsUsecase {
	return &vitalsService{
		repo:   repo,
		logger: logger,
		intn:   rand.Intn,
		now:    func() int64 { return time.Now().Unix() },
	}
}

// UpdateVitals generates two independent readings, derives their status
// labels, stamps both sub-objects with the same timestamp and replaces
// the user's vitals subtree in one write. The raw readings are returned,
// not the derived labels.
func (srv *vitalsService) UpdateVitals(ctx context.Context, userID string) (*usecase.UpdateVitalsOutput, error) {
	srv.logger.Info("Updating vitals", slog.String("userID", userID))

	timestamp := srv.now()
	heartrate := srv.intn(readingMax) + 1
	bloodPressure := srv.intn(readingMax) + 1

	heartRateStatus := entity.VitalStatusNormal
	if heartrate < heartRateLowBelow {
		heartRateStatus = entity.VitalStatusLow
	}

	bloodPressureStatus := entity.VitalStatusNormal
	if bloodPressure > bloodPressureWatchOver {
		bloodPressureStatus = entity.VitalStatusWatch
	}

	vitals := &entity.Vitals{
		HeartRate: entity.HeartRate{
			Value:     heartrate,
			Unit:      "bpm",
			Status:    heartRateStatus,
			UpdatedAt: timestamp,
		},
		BloodPressure: entity.BloodPressure{
			Systolic:  bloodPressure,
			Unit:      "mmHg",
			Status:    bloodPressureStatus,
			UpdatedAt: timestamp,
		},
	}

	if err := srv.repo.UpdateUserVitals(ctx, userID, vitals); err != nil {
		return nil, passThrough(err, "failed to update vitals")
	}

	srv.logger.Info("Vitals updated successfully", slog.String("userID", userID))

	return &usecase.UpdateVitalsOutput{
		Status:        "updated",
		UserID:        userID,
		Heartrate:     heartrate,
		BloodPressure: bloodPressure,
	}, nil
}
