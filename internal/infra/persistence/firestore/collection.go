package firestore

import (
	"context"
	"fmt"

	domainerrors "zml/internal/domain/errors"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection provides generic CRUD and query access to one flat Firestore
// collection. It is the sole normalization point between Firestore
// failures and the domain error taxonomy: every backend failure returns
// as a DatabaseError. Absence of a document is not a failure.
type Collection[T any] struct {
	client *fs.Client
	name   string
}

// NewCollection creates a typed view over the named collection.
func NewCollection[T any](client *fs.Client, name string) *Collection[T] {
	return &Collection[T]{
		client: client,
		name:   name,
	}
}

// GetByID returns the document with the given id, or nil when it does not
// exist.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	snap, err := c.client.Collection(c.name).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to get document %s/%s", c.name, id))
	}

	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to decode document %s/%s", c.name, id))
	}

	return &out, nil
}

// GetAll streams up to limit documents, silently skipping any that
// vanished between listing and fetch.
func (c *Collection[T]) GetAll(ctx context.Context, limit int) ([]T, error) {
	iter := c.client.Collection(c.name).Limit(limit).Documents(ctx)
	defer iter.Stop()

	return c.collect(iter)
}

// Create writes a new document. When id is empty, Firestore generates one.
// Returns the document id.
func (c *Collection[T]) Create(ctx context.Context, data map[string]any, id string) (string, error) {
	ref := c.client.Collection(c.name).Doc(id)
	if id == "" {
		ref = c.client.Collection(c.name).NewDoc()
	}

	if _, err := ref.Set(ctx, data); err != nil {
		return "", domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to create document in %s", c.name))
	}

	return ref.ID, nil
}

// Update overwrites the given fields of an existing document.
func (c *Collection[T]) Update(ctx context.Context, id string, data map[string]any) error {
	updates := make([]fs.Update, 0, len(data))
	for field, value := range data {
		updates = append(updates, fs.Update{Path: field, Value: value})
	}

	if _, err := c.client.Collection(c.name).Doc(id).Update(ctx, updates); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to update document %s/%s", c.name, id))
	}

	return nil
}

// Delete removes a document.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.client.Collection(c.name).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to delete document %s/%s", c.name, id))
	}

	return nil
}

// Exists reports whether a document with the given id exists.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	snap, err := c.client.Collection(c.name).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to check document %s/%s", c.name, id))
	}

	return snap.Exists(), nil
}

// Query streams up to limit documents matching the field condition.
// Supported operators are Firestore's (==, <, >, <=, >=, !=, in, ...).
func (c *Collection[T]) Query(ctx context.Context, field, operator string, value any, limit int) ([]T, error) {
	iter := c.client.Collection(c.name).Where(field, operator, value).Limit(limit).Documents(ctx)
	defer iter.Stop()

	return c.collect(iter)
}

func (c *Collection[T]) collect(iter *fs.DocumentIterator) ([]T, error) {
	var out []T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if status.Code(err) == codes.NotFound {
			continue
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to stream documents from %s", c.name))
		}

		var item T
		if err := snap.DataTo(&item); err != nil {
			return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to decode document %s/%s", c.name, snap.Ref.ID))
		}
		out = append(out, item)
	}

	return out, nil
}
