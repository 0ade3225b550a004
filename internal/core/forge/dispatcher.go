package forge

import (
	"context"

	"forgeapi/internal/platform/logger"
)

// Dispatcher is the single entry point callers use to talk to any forge
// it holds only read-only state and is safe for concurrent use
type Dispatcher struct {
	registry  *Registry
	discovery *Discovery
	flagships *Flagships
	log       *logger.Logger
}

// NewDispatcher wires the registry, discovery engine and flagship table
func NewDispatcher(reg *Registry, disc *Discovery, flags *Flagships) *Dispatcher {
	if disc == nil {
		disc = NewDiscovery()
	}
	if flags == nil {
		flags = NewFlagships(nil)
	}
	return &Dispatcher{
		registry:  reg,
		discovery: disc,
		flagships: flags,
		log:       logger.Named("forge"),
	}
}

// Dispatch resolves target to an adapter and runs op against it
// every failure is a *Error; nothing is retried here
func (d *Dispatcher) Dispatch(ctx context.Context, op Operation, t Target) (Result, error) {
	a, host, err := d.resolve(ctx, t)
	if err != nil {
		return Result{}, err
	}
	kind := a.Kind()

	call, ok := bind(a, op)
	if !ok {
		d.log.Debug().Str("kind", kind.String()).Str("op", op.String()).Msg("operation not supported by forge")
		return Result{}, ErrEndpointUnavailable
	}

	res, err := call(ctx, t.request(host))
	if err != nil {
		return Result{}, normalize(err)
	}
	if res.Kind == KindUnknown {
		res.Kind = kind
	}
	if res.Host == "" {
		res.Host = host
	}
	return res, nil
}

// Resolve returns the kind and host a target would be dispatched to without calling the adapter
func (d *Dispatcher) Resolve(ctx context.Context, t Target) (Kind, string, error) {
	a, host, err := d.resolve(ctx, t)
	if err != nil {
		return KindUnknown, "", err
	}
	return a.Kind(), host, nil
}

// Discover exposes the discovery engine
func (d *Dispatcher) Discover(ctx context.Context, host string) (Discovered, error) {
	found, ok := d.discovery.Discover(ctx, host)
	if !ok {
		return Discovered{}, ErrEndpointUnavailable
	}
	return found, nil
}

// Registry returns the adapter registry
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Flagships returns the flagship table
func (d *Dispatcher) Flagships() *Flagships { return d.flagships }

// Strategies returns the discovery strategy names in order
func (d *Dispatcher) Strategies() []string { return d.discovery.Strategies() }

// resolve runs the decision path: kind (explicit or discovered), adapter, then host (explicit or flagship)
func (d *Dispatcher) resolve(ctx context.Context, t Target) (Adapter, string, error) {
	host := NormalizeHost(t.Host)
	kind := t.Kind

	switch {
	case kind == KindUnknown && host == "":
		return nil, "", ErrEndpointUnavailable
	case kind == KindUnknown:
		found, ok := d.discovery.Discover(ctx, host)
		if !ok {
			return nil, "", ErrEndpointUnavailable
		}
		kind = found.Kind
		d.log.Debug().Str("host", host).Str("kind", kind.String()).Str("strategy", found.Strategy).Msg("forge resolved")
	}

	a, ok := d.registry.Adapter(kind)
	if !ok {
		return nil, "", ErrEndpointUnavailable
	}

	if host == "" {
		fh, err := d.flagships.Resolve(kind)
		if err != nil {
			return nil, "", err
		}
		host = fh
	}
	return a, host, nil
}
