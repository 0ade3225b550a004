package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes mount under /api/{version} with its own middleware
//
//	httpkit.MountAPI(r, "v1", nil, func(api httpkit.Router) {
//	  api.Route("/forge", forgehttp.Mount)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.Trim(version, "/")
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
