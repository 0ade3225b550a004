// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "forgeapi/internal/modkit"
	"forgeapi/internal/modkit/httpkit"
	metahttp "forgeapi/internal/services/api/meta/http"
)

// Module serves health, readiness and forge capability endpoints
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module; META_SERVICE_NAME overrides the reported name
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	return &Module{b: b, deps: metahttp.Deps{
		ServiceName: deps.Cfg.MayString("META_SERVICE_NAME", "forgeapi"),
		StartedAt:   time.Now(),
		Forge:       deps.Forge,
	}}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface; meta exports nothing
func (m *Module) Ports() any { return nil }
