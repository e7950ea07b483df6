package realtimedb

import (
	"context"
	"encoding/json"
	"fmt"

	domainerrors "zml/internal/domain/errors"
)

// Tree provides generic CRUD and equality-query access to one subtree of
// the real-time tree. Like the Firestore Collection it normalizes every
// backend failure to a DatabaseError, and treats absence as nil rather
// than an error.
type Tree[T any] struct {
	client *Client
	path   string
}

// NewTree creates a typed view over the subtree rooted at path (relative
// to the client's base path).
func NewTree[T any](client *Client, path string) *Tree[T] {
	return &Tree[T]{
		client: client,
		path:   path,
	}
}

func (t *Tree[T]) childPath(id string) string {
	if t.path == "" {
		return id
	}

	return t.path + "/" + id
}

// GetByID returns the record with the given key, or nil when it does not
// exist.
func (t *Tree[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var raw map[string]any
	if err := t.client.Get(ctx, t.childPath(id), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	out, err := decodeRecord[T](raw)
	if err != nil {
		return nil, domainerrors.NewDatabaseError(err, fmt.Sprintf("failed to decode record %s", t.childPath(id)))
	}

	return out, nil
}

// GetAll fetches the entire subtree and truncates to limit locally; the
// Realtime Database has no server-side paging on plain reads. Acceptable
// while record counts stay small.
func (t *Tree[T]) GetAll(ctx context.Context, limit int) ([]T, error) {
	var raw map[string]json.RawMessage
	if err := t.client.Get(ctx, t.path, &raw); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, value := range raw {
		if len(out) >= limit {
			break
		}

		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			// Skip children that are not record-shaped.
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// Create writes a new record. When id is empty an auto-generated key is
// used. Returns the record key.
func (t *Tree[T]) Create(ctx context.Context, data map[string]any, id string) (string, error) {
	// The key is the identity, never a stored field.
	delete(data, "id")

	if id != "" {
		if err := t.client.Set(ctx, t.childPath(id), data); err != nil {
			return "", err
		}

		return id, nil
	}

	return t.client.Push(ctx, t.path, data)
}

// Update writes only the given fields of an existing record.
func (t *Tree[T]) Update(ctx context.Context, id string, data map[string]any) error {
	delete(data, "id")

	return t.client.Update(ctx, t.childPath(id), data)
}

// Delete removes a record.
func (t *Tree[T]) Delete(ctx context.Context, id string) error {
	return t.client.Delete(ctx, t.childPath(id))
}

// Exists reports whether a record with the given key exists.
func (t *Tree[T]) Exists(ctx context.Context, id string) (bool, error) {
	var raw map[string]any
	if err := t.client.Get(ctx, t.childPath(id), &raw); err != nil {
		return false, err
	}

	return raw != nil, nil
}

// QueryByChild returns up to limit records whose field equals value.
func (t *Tree[T]) QueryByChild(ctx context.Context, field string, value any, limit int) ([]T, error) {
	nodes, err := t.client.QueryByChild(ctx, t.path, field, value, limit)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(nodes))
	for _, node := range nodes {
		var item T
		if err := node.Unmarshal(&item); err != nil {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func decodeRecord[T any](raw map[string]any) (*T, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := json.Unmarshal(encoded, out); err != nil {
		return nil, err
	}

	return out, nil
}
