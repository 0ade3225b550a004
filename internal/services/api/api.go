// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/platform/config"
	"forgeapi/internal/platform/logger"
	phttp "forgeapi/internal/platform/net/http"
	"forgeapi/internal/platform/net/middleware"

	"forgeapi/internal/modkit"
	"forgeapi/internal/modkit/httpkit"
	"forgeapi/internal/modkit/swaggerkit"

	forgemod "forgeapi/internal/services/api/forge/module"
	metamod "forgeapi/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Forge          *forge.Dispatcher
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// LookupTimeout bounds one forge request end to end; zero keeps the common stack's limit
	LookupTimeout time.Duration
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Forge: opt.Forge,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	var forgeOpts []modkit.Option
	if opt.LookupTimeout > 0 {
		forgeOpts = append(forgeOpts, modkit.WithMiddlewares(middleware.Timeout(opt.LookupTimeout)))
	}

	mods := []modkit.Module{
		metamod.New(deps),
		forgemod.New(deps, forgeOpts...),
	}

	// swagger and profiler live outside the versioned stack
	docs := []swaggerkit.SpecMutator{swaggerkit.TitleSuffix(opt.Config.MayString("DOCS_TITLE_SUFFIX", ""))}
	if opt.Forge != nil {
		var kinds []string
		for _, k := range opt.Forge.Registry().Kinds() {
			kinds = append(kinds, k.String())
		}
		docs = append(docs, swaggerkit.KindEnum(kinds))
	}
	swaggerkit.Mount(r, opt.EnableSwagger, docs...)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().Int("modules", len(mods)).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
}

// Handler builds a standalone chi backed handler, mostly for tests and embedding
func Handler(opt Options) http.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, opt)
	return r.Mux()
}
