// Package firebase bootstraps the Firebase Admin SDK app shared by the
// identity provider and the Realtime Database client.
package firebase

import (
	"context"

	"zml/config"

	admin "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp creates the process-wide Firebase Admin app from the configured
// credentials. Constructed once by the composition root and injected into
// every consumer; there is no lazily-mutated global.
func NewApp(ctx context.Context, cfg *config.Config) (*admin.App, error) {
	conf := &admin.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.RealtimeDatabaseURL,
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := admin.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
