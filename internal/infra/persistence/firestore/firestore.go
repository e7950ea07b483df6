// Package firestore contains the document-store side of the persistence
// layer: the managed client, a generic collection repository and the
// entity repositories built on it.
package firestore

import (
	"context"

	"zml/config"
	"zml/internal/domain/service"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Params defines the dependencies for the Firestore client.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewClient creates the process-wide Firestore client. The client is
// closed through the fx lifecycle on shutdown.
func NewClient(params Params) (*fs.Client, error) {
	cfg := params.Config.Firebase

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = fs.DefaultDatabaseID
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := fs.NewClientWithDatabase(params.Ctx, cfg.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// probe implements the readiness check against Firestore.
type probe struct {
	client *fs.Client
}

// NewProbe creates the Firestore readiness probe.
func NewProbe(client *fs.Client) service.ReadinessProbe {
	return &probe{client: client}
}

func (p *probe) Name() string {
	return "firestore"
}

// Ping lists at most one root collection to verify connectivity.
func (p *probe) Ping(ctx context.Context) error {
	_, err := p.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return errors.Wrap(err, "firestore connection check failed")
	}

	return nil
}
