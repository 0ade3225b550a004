// Package module wires forge lookups into the API using modkit
package module

import (
	modkit "forgeapi/internal/modkit"
	"forgeapi/internal/modkit/httpkit"
	forgehttp "forgeapi/internal/services/api/forge/http"
	forgesvc "forgeapi/internal/services/api/forge/service"
)

// Module implements the forge module
type Module struct {
	b    modkit.Built
	deps modkit.Deps
	svc  forgesvc.Service
}

// New constructs the forge module; deps.Forge must be set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("forge"), modkit.WithPrefix("/forge")}, opts...)...)
	return &Module{b: b, deps: deps, svc: forgesvc.New(deps.Forge)}
}

// MountRoutes mounts lookups, tarballs and discovery under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { forgehttp.Register(rr, m.svc) })
	m.deps.Log.Debug().Str("module", m.b.Name).Str("prefix", m.b.Prefix).Msg("routes mounted")
}
