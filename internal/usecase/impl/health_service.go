package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"zml/config"
	"zml/internal/domain/service"
	"zml/internal/usecase"
)

// HealthParams collects the readiness probes registered by the
// persistence layer. Probes may be nil when their backend is not
// configured.
type HealthParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Probes []service.ReadinessProbe `group:"probes"`
}

type healthService struct {
	cfg    *config.Config
	logger *slog.Logger
	probes []service.ReadinessProbe
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthParams) usecase.HealthUsecase {
	probes := make([]service.ReadinessProbe, 0, len(params.Probes))
	for _, probe := range params.Probes {
		if probe != nil {
			probes = append(probes, probe)
		}
	}

	return &healthService{
		cfg:    params.Config,
		logger: params.Logger,
		probes: probes,
	}
}

func (srv *healthService) Live() *usecase.LivenessOutput {
	return &usecase.LivenessOutput{
		Status:      "healthy",
		Version:     srv.cfg.Env.Version,
		Environment: srv.cfg.Env.Env,
	}
}

func (srv *healthService) Ready(ctx context.Context) *usecase.ReadinessOutput {
	output := &usecase.ReadinessOutput{
		Status: "ready",
		Checks: make(map[string]string, len(srv.probes)),
	}

	for _, probe := range srv.probes {
		if err := probe.Ping(ctx); err != nil {
			srv.logger.Warn("Readiness probe failed",
				slog.String("probe", probe.Name()),
				slog.Any("error", err))
			output.Checks[probe.Name()] = "unhealthy"
			output.Status = "not_ready"
			continue
		}
		output.Checks[probe.Name()] = "healthy"
	}

	return output
}
