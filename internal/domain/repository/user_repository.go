package repository

import "context"

// UserRepository mirrors identity records into the document store.
type UserRepository interface {
	// RegisterUser merge-writes the given profile fields under the
	// identity provider's uid.
	RegisterUser(ctx context.Context, uid string, data map[string]any) error
}
