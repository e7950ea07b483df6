package main

import (
	"context"
	"log/slog"
	"os"

	"zml/config"
	"zml/internal/delivery"
	httpdelivery "zml/internal/delivery/http"
	httpmiddleware "zml/internal/delivery/http/middleware"
	"zml/internal/delivery/http/router/handler"
	deliverymiddleware "zml/internal/delivery/middleware"
	"zml/internal/infra/agent"
	authfirebase "zml/internal/infra/auth/firebase"
	logs "zml/internal/infra/log"
	"zml/internal/infra/persistence/firebase"
	"zml/internal/infra/persistence/firestore"
	"zml/internal/infra/persistence/realtimedb"
	"zml/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firestore.NewClient,
		realtimedb.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewMedicalInfoRepository,
			firestore.NewUserRepository,
			firestore.NewConversationRepository,
			realtimedb.NewVitalsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			authfirebase.NewIdentityProvider,
			agent.NewClient,
			fx.Annotate(
				firestore.NewProbe,
				fx.ResultTags(`group:"probes"`),
			),
			fx.Annotate(
				realtimedb.NewProbe,
				fx.ResultTags(`group:"probes"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthenticationService,
			impl.NewMedicalInfoService,
			impl.NewVitalsService,
			impl.NewSymptomCheckerService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthenticationHandler,
			handler.NewMedicalInfoHandler,
			handler.NewVitalsHandler,
			handler.NewSymptomCheckerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				httpdelivery.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
