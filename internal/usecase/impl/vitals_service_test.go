package impl

import (
	"context"
	"testing"

	"zml/internal/domain/entity"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/errors"
	mockRepo "zml/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPinnedVitalsService returns a service whose readings and clock are
// deterministic: successive calls to the random source pop values off the
// given list (heart rate first, then blood pressure).
func newPinnedVitalsService(repo *mockRepo.MockVitalsRepository, readings []int, timestamp int64) *vitalsService {
	draws := readings
	return &vitalsService{
		repo:   repo,
		logger: newDiscardLogger(),
		intn: func(n int) int {
			value := draws[0]
			draws = draws[1:]
			// the production source yields [0, n), the service adds one
			return value - 1
		},
		now: func() int64 { return timestamp },
	}
}

func TestVitalsService_UpdateVitals_Success(t *testing.T) {
	repo := mockRepo.NewMockVitalsRepository(t)
	service := newPinnedVitalsService(repo, []int{72, 120}, 1700000000)

	ctx := context.Background()
	var captured *entity.Vitals

	repo.EXPECT().
		UpdateUserVitals(ctx, "user-123", mock.AnythingOfType("*entity.Vitals")).
		Run(func(ctx context.Context, userID string, vitals *entity.Vitals) {
			captured = vitals
		}).
		Return(nil)

	output, err := service.UpdateVitals(ctx, "user-123")

	require.NoError(t, err)
	assert.Equal(t, "updated", output.Status)
	assert.Equal(t, "user-123", output.UserID)
	assert.Equal(t, 72, output.Heartrate)
	assert.Equal(t, 120, output.BloodPressure)

	require.NotNil(t, captured)
	assert.Equal(t, 72, captured.HeartRate.Value)
	assert.Equal(t, "bpm", captured.HeartRate.Unit)
	assert.Equal(t, entity.VitalStatusNormal, captured.HeartRate.Status)
	assert.Equal(t, 120, captured.BloodPressure.Systolic)
	assert.Equal(t, "mmHg", captured.BloodPressure.Unit)
	assert.Equal(t, entity.VitalStatusNormal, captured.BloodPressure.Status)
	assert.Equal(t, int64(1700000000), captured.HeartRate.UpdatedAt)
	assert.Equal(t, captured.HeartRate.UpdatedAt, captured.BloodPressure.UpdatedAt)
}

func TestVitalsService_UpdateVitals_StatusThresholds(t *testing.T) {
	tests := []struct {
		name              string
		heartrate         int
		bloodPressure     int
		wantHeartStatus   string
		wantPressureLabel string
	}{
		{"heart rate just below the low cutoff", 59, 100, entity.VitalStatusLow, entity.VitalStatusNormal},
		{"heart rate exactly at the cutoff", 60, 100, entity.VitalStatusNormal, entity.VitalStatusNormal},
		{"heart rate just above the cutoff", 61, 100, entity.VitalStatusNormal, entity.VitalStatusNormal},
		{"blood pressure exactly at the watch cutoff", 80, 130, entity.VitalStatusNormal, entity.VitalStatusNormal},
		{"blood pressure just above the watch cutoff", 80, 131, entity.VitalStatusNormal, entity.VitalStatusWatch},
		{"both readings out of range", 1, 1000, entity.VitalStatusLow, entity.VitalStatusWatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockVitalsRepository(t)
			service := newPinnedVitalsService(repo, []int{tt.heartrate, tt.bloodPressure}, 1700000000)

			ctx := context.Background()
			var captured *entity.Vitals

			repo.EXPECT().
				UpdateUserVitals(ctx, "user-123", mock.AnythingOfType("*entity.Vitals")).
				Run(func(ctx context.Context, userID string, vitals *entity.Vitals) {
					captured = vitals
				}).
				Return(nil)

			output, err := service.UpdateVitals(ctx, "user-123")

			require.NoError(t, err)
			assert.Equal(t, tt.heartrate, output.Heartrate)
			assert.Equal(t, tt.bloodPressure, output.BloodPressure)

			require.NotNil(t, captured)
			assert.Equal(t, tt.wantHeartStatus, captured.HeartRate.Status)
			assert.Equal(t, tt.wantPressureLabel, captured.BloodPressure.Status)
		})
	}
}

func TestVitalsService_UpdateVitals_ReadingsStayInRange(t *testing.T) {
	repo := mockRepo.NewMockVitalsRepository(t)
	service := NewVitalsService(repo, newDiscardLogger()).(*vitalsService)

	ctx := context.Background()

	repo.EXPECT().
		UpdateUserVitals(ctx, "user-123", mock.AnythingOfType("*entity.Vitals")).
		Return(nil)

	for range 50 {
		output, err := service.UpdateVitals(ctx, "user-123")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, output.Heartrate, 1)
		assert.LessOrEqual(t, output.Heartrate, 1000)
		assert.GreaterOrEqual(t, output.BloodPressure, 1)
		assert.LessOrEqual(t, output.BloodPressure, 1000)
	}
}

func TestVitalsService_UpdateVitals_StorageFailure(t *testing.T) {
	repo := mockRepo.NewMockVitalsRepository(t)
	service := newPinnedVitalsService(repo, []int{72, 120}, 1700000000)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseError(errors.New("write rejected"), "failed to update vitals")

	repo.EXPECT().
		UpdateUserVitals(ctx, "user-123", mock.AnythingOfType("*entity.Vitals")).
		Return(dbErr)

	output, err := service.UpdateVitals(ctx, "user-123")

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}
