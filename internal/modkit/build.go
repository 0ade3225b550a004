package modkit

import (
	"net/http"

	"forgeapi/internal/modkit/httpkit"
	str "forgeapi/internal/platform/strings"
)

// Built is the resolved configuration of a module
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	register []func(httpkit.Router)
}

// Build applies opts in order; a missing name or prefix panics at startup
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:     str.MustString(c.name, "module name"),
		Prefix:   str.MustPrefix(c.prefix),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		register: append(([]func(httpkit.Router))(nil), c.register...),
	}
}

// Mount scopes own plus any WithRegister routes under the prefix and middleware
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(b.Prefix, func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		own(rr)
		for _, fn := range b.register {
			fn(rr)
		}
	})
}
