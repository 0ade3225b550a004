package module

import (
	"context"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/services/api/forge/domain"
	forgesvc "forgeapi/internal/services/api/forge/service"
)

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return adaptForgePort{svc: m.svc} }

type adaptForgePort struct{ svc forgesvc.Service }

// Lookup runs op against the target forge
func (a adaptForgePort) Lookup(ctx context.Context, op forge.Operation, in domain.TargetInput) (forge.Result, error) {
	return a.svc.Lookup(ctx, op, in)
}

// Tarball resolves the archive URL for op
func (a adaptForgePort) Tarball(ctx context.Context, op forge.Operation, in domain.TargetInput) (domain.TarballResponse, error) {
	return a.svc.Tarball(ctx, op, in)
}

// Discover reports which forge serves a host
func (a adaptForgePort) Discover(ctx context.Context, in domain.DiscoverInput) (domain.DiscoverResponse, error) {
	return a.svc.Discover(ctx, in)
}
