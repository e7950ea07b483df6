// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a transport server that can be started by the composition
// root. Implementations block inside Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
