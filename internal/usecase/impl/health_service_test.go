package impl

import (
	"context"
	"testing"

	"zml/config"
	"zml/internal/domain/service"
	"zml/internal/errors"
	mockService "zml/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.Version = "1.0.0"
	return cfg
}

func newHealthServiceForTest(t *testing.T, probes ...service.ReadinessProbe) *healthService {
	t.Helper()
	return NewHealthService(HealthParams{
		Config: newHealthTestConfig(),
		Logger: newDiscardLogger(),
		Probes: probes,
	}).(*healthService)
}

func TestHealthService_Live(t *testing.T) {
	health := newHealthServiceForTest(t)

	output := health.Live()

	assert.Equal(t, "healthy", output.Status)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Equal(t, "test", output.Environment)
}

func TestHealthService_Ready_AllHealthy(t *testing.T) {
	docStore := mockService.NewMockReadinessProbe(t)
	tree := mockService.NewMockReadinessProbe(t)
	health := newHealthServiceForTest(t, docStore, tree)

	ctx := context.Background()

	docStore.EXPECT().Name().Return("firestore")
	docStore.EXPECT().Ping(ctx).Return(nil)
	tree.EXPECT().Name().Return("realtime_db")
	tree.EXPECT().Ping(ctx).Return(nil)

	output := health.Ready(ctx)

	assert.Equal(t, "ready", output.Status)
	assert.Equal(t, map[string]string{
		"firestore":   "healthy",
		"realtime_db": "healthy",
	}, output.Checks)
}

func TestHealthService_Ready_OneUnhealthy(t *testing.T) {
	docStore := mockService.NewMockReadinessProbe(t)
	tree := mockService.NewMockReadinessProbe(t)
	health := newHealthServiceForTest(t, docStore, tree)

	ctx := context.Background()

	docStore.EXPECT().Name().Return("firestore")
	docStore.EXPECT().Ping(ctx).Return(nil)
	tree.EXPECT().Name().Return("realtime_db")
	tree.EXPECT().Ping(ctx).Return(errors.New("connection refused"))

	output := health.Ready(ctx)

	assert.Equal(t, "not_ready", output.Status)
	assert.Equal(t, "healthy", output.Checks["firestore"])
	assert.Equal(t, "unhealthy", output.Checks["realtime_db"])
}

// Probes for unconfigured backends register as nil and must be skipped.
func TestHealthService_Ready_SkipsNilProbes(t *testing.T) {
	docStore := mockService.NewMockReadinessProbe(t)
	health := newHealthServiceForTest(t, docStore, nil)

	ctx := context.Background()

	docStore.EXPECT().Name().Return("firestore")
	docStore.EXPECT().Ping(ctx).Return(nil)

	output := health.Ready(ctx)

	require.Equal(t, "ready", output.Status)
	assert.Len(t, output.Checks, 1)
}
