package service

import "context"

// ReadinessProbe is a connectivity check against one managed backend.
// Implementations are collected into the readiness endpoint's check map
// under their Name.
type ReadinessProbe interface {
	Name() string
	Ping(ctx context.Context) error
}
