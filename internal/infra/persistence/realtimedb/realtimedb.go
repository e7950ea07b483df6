// Package realtimedb contains the real-time tree side of the persistence
// layer: a path-scoped client, a generic tree repository and the vitals
// repository built on it.
package realtimedb

import (
	"context"
	"fmt"
	"strings"

	"zml/config"
	domainerrors "zml/internal/domain/errors"
	"zml/internal/domain/service"

	admin "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client wraps the Realtime Database handle with a fixed base path under
// which every operation is scoped. When no database URL is configured the
// client is inert and every operation fails with a DatabaseError.
type Client struct {
	db       *db.Client
	basePath string
}

// Params defines the dependencies for the Realtime Database client.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *admin.App
}

// NewClient creates the process-wide Realtime Database client scoped to
// the configured base path.
func NewClient(params Params) (*Client, error) {
	basePath := strings.Trim(params.Config.Firebase.BasePath, "/")

	if params.Config.Firebase.RealtimeDatabaseURL == "" {
		return &Client{basePath: basePath}, nil
	}

	client, err := params.App.Database(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Realtime Database client")
	}

	return &Client{
		db:       client,
		basePath: basePath,
	}, nil
}

// Configured reports whether a database URL was provided.
func (c *Client) Configured() bool {
	return c.db != nil
}

func (c *Client) ref(path string) (*db.Ref, error) {
	if c.db == nil {
		return nil, domainerrors.NewDatabaseError(nil, "realtime database is not configured")
	}

	full := c.basePath
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		if full == "" {
			full = trimmed
		} else {
			full = full + "/" + trimmed
		}
	}

	return c.db.NewRef(full), nil
}

// Get reads the value at path into v. Absent data leaves v at its zero
// value; absence is not a failure.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	ref, err := c.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Get(ctx, v); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to get data at %s", path))
	}

	return nil
}

// Set overwrites the value at path.
func (c *Client) Set(ctx context.Context, path string, v any) error {
	ref, err := c.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Set(ctx, v); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to set data at %s", path))
	}

	return nil
}

// Update writes only the given child fields at path.
func (c *Client) Update(ctx context.Context, path string, data map[string]any) error {
	ref, err := c.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Update(ctx, data); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to update data at %s", path))
	}

	return nil
}

// Push appends v under path with an auto-generated key and returns the key.
func (c *Client) Push(ctx context.Context, path string, v any) (string, error) {
	ref, err := c.ref(path)
	if err != nil {
		return "", err
	}

	child, err := ref.Push(ctx, v)
	if err != nil {
		return "", domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to push data at %s", path))
	}

	return child.Key, nil
}

// Delete removes the value at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	ref, err := c.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to delete data at %s", path))
	}

	return nil
}

// QueryByChild returns up to limit children of path whose child field
// equals value. Equality is the only supported filter, and the field
// should be indexed server-side for efficiency.
func (c *Client) QueryByChild(ctx context.Context, path, child string, value any, limit int) ([]db.QueryNode, error) {
	ref, err := c.ref(path)
	if err != nil {
		return nil, err
	}

	nodes, err := ref.OrderByChild(child).EqualTo(value).LimitToFirst(limit).GetOrdered(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to query data at %s by %s", path, child))
	}

	return nodes, nil
}

// probe implements the readiness check against the Realtime Database.
type probe struct {
	client *Client
}

// NewProbe creates the Realtime Database readiness probe, or nil when no
// database URL is configured.
func NewProbe(client *Client) service.ReadinessProbe {
	if !client.Configured() {
		return nil
	}

	return &probe{client: client}
}

func (p *probe) Name() string {
	return "realtime_db"
}

// Ping reads a tiny marker path to verify connectivity.
func (p *probe) Ping(ctx context.Context) error {
	var raw any
	if err := p.client.Get(ctx, "healthcheck", &raw); err != nil {
		return errors.Wrap(err, "realtime database connection check failed")
	}

	return nil
}
