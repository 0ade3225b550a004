// Package probe implements the active discovery strategy: it fingerprints an unknown host
// by asking it for well-known version endpoints
package probe

import (
	"context"
	"encoding/json"
	stderrs "errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/platform/logger"
)

const defaultTimeout = 3 * time.Second

// Options configures the probe
type Options struct {
	Client  *transport.Client
	Timeout time.Duration
	Scheme  string
}

// Probe is a forge.Strategy. Fingerprints run concurrently but the winner is chosen in
// fixed priority order, so the answer for a host never depends on timing
type Probe struct {
	c       *transport.Client
	timeout time.Duration
	scheme  string
	prints  []fingerprint
	flight  singleflight.Group
	log     logger.Logger
}

var _ forge.Strategy = (*Probe)(nil)

// New builds the probe; the client should not retry, a miss is cheaper than a slow answer
func New(o Options) *Probe {
	if o.Client == nil {
		o.Client = transport.New(transport.Options{Timeout: defaultTimeout})
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Probe{
		c:       o.Client,
		timeout: o.Timeout,
		scheme:  o.Scheme,
		prints:  fingerprints,
		log:     *logger.Named("probe"),
	}
}

// Name implements forge.Strategy
func (p *Probe) Name() string { return "probe" }

type outcome struct {
	kind forge.Kind
	ok   bool
}

// Match implements forge.Strategy. Unreachable hosts are a miss, never an error
// concurrent callers for a host share one run, detached from any caller's cancellation and
// bounded by the probe timeout; each caller still returns once its own ctx is done
func (p *Probe) Match(ctx context.Context, host string) (forge.Kind, bool) {
	ch := p.flight.DoChan(host, func() (any, error) {
		return p.match(context.WithoutCancel(ctx), host), nil
	})
	select {
	case r := <-ch:
		o := r.Val.(outcome)
		return o.kind, o.ok
	case <-ctx.Done():
		return forge.KindUnknown, false
	}
}

func (p *Probe) match(ctx context.Context, host string) outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	hits := make([]bool, len(p.prints))
	var g errgroup.Group
	for i, fp := range p.prints {
		g.Go(func() error {
			hits[i] = p.try(ctx, host, fp)
			return nil
		})
	}
	_ = g.Wait()

	for i, fp := range p.prints {
		if hits[i] {
			p.log.Debug().Str("host", host).Str("fingerprint", fp.name).Msg("probe matched")
			return outcome{kind: fp.kind, ok: true}
		}
	}
	p.log.Debug().Str("host", host).Msg("probe found no forge")
	return outcome{}
}

// try fetches the fingerprint path; non-2xx answers are still evidence, transport failures are not
func (p *Probe) try(ctx context.Context, host string, fp fingerprint) bool {
	h := http.Header{}
	h.Set("Accept", "application/json")
	resp, err := p.c.Get(ctx, transport.BaseURL(p.scheme, host)+fp.path, h)
	if err == nil {
		return fp.match(answer{status: resp.Status, header: resp.Header, body: resp.Body})
	}
	var se *perr.StatusError
	if !stderrs.As(err, &se) {
		return false
	}
	return fp.match(answer{status: se.Status, header: se.Header, body: []byte(se.Body)})
}

type answer struct {
	status int
	header http.Header
	body   []byte
}

func (a answer) fields() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(a.body, &m); err != nil {
		return nil
	}
	return m
}

func (a answer) hasString(keys ...string) bool {
	m := a.fields()
	if m == nil {
		return false
	}
	for _, k := range keys {
		if s, _ := m[k].(string); s == "" {
			return false
		}
	}
	return true
}
