package domain

import (
	"context"

	"forgeapi/internal/core/forge"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Lookup(ctx context.Context, op forge.Operation, in TargetInput) (forge.Result, error)
	Tarball(ctx context.Context, op forge.Operation, in TargetInput) (TarballResponse, error)
	Discover(ctx context.Context, in DiscoverInput) (DiscoverResponse, error)
}
