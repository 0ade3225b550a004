// Package service contains forge lookup workflows
package service

import (
	"context"

	"forgeapi/internal/core/forge"
	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/platform/logger"
	"forgeapi/internal/services/api/forge/domain"
)

// Service defines the forge service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the forge service on top of the dispatcher
type Svc struct {
	forge *forge.Dispatcher
	log   *logger.Logger
}

// New constructs a forge service
func New(d *forge.Dispatcher) *Svc {
	if d == nil {
		panic("forge.Service requires a non nil Dispatcher")
	}
	return &Svc{forge: d, log: logger.Named("forge-api")}
}

// Lookup validates in and runs op through the dispatcher
// failures leave here as wire errors carrying only the literal message
func (s *Svc) Lookup(ctx context.Context, op forge.Operation, in domain.TargetInput) (forge.Result, error) {
	if err := domain.Validate(in); err != nil {
		return forge.Result{}, err
	}
	if needsRef(op) && in.Ref == "" {
		return forge.Result{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "ref is required for %s", op), "ref")
	}

	res, err := s.forge.Dispatch(ctx, op, in.Target())
	if err != nil {
		forge.Log(s.log, err)
		return forge.Result{}, forge.Wire(err)
	}
	return res, nil
}

// Tarball resolves the archive URL for op
// an operation that yields no archive is reported as endpoint unavailable
func (s *Svc) Tarball(ctx context.Context, op forge.Operation, in domain.TargetInput) (domain.TarballResponse, error) {
	res, err := s.Lookup(ctx, op, in)
	if err != nil {
		return domain.TarballResponse{}, err
	}
	if res.TarballURL == "" {
		return domain.TarballResponse{}, forge.Wire(forge.ErrEndpointUnavailable)
	}
	return domain.TarballResponse{URL: res.TarballURL}, nil
}

// Discover reports which forge serves in.Host
func (s *Svc) Discover(ctx context.Context, in domain.DiscoverInput) (domain.DiscoverResponse, error) {
	if err := domain.Validate(in); err != nil {
		return domain.DiscoverResponse{}, err
	}
	found, err := s.forge.Discover(ctx, in.Host)
	if err != nil {
		forge.Log(s.log, err)
		return domain.DiscoverResponse{}, forge.Wire(err)
	}
	return domain.DiscoverResponse{
		Host:     found.Host,
		Kind:     found.Kind.String(),
		Strategy: found.Strategy,
	}, nil
}

func needsRef(op forge.Operation) bool {
	return op == forge.OpVersion || op == forge.OpBranch
}
