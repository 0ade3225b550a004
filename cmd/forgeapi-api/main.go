// @title         forgeapi
// @version       0.1.0
// @description   Uniform read-only access to GitHub, GitLab, Forgejo, SourceHut and FlakeHub

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"forgeapi/internal/modkit/forgekit"
	"forgeapi/internal/platform/config"
	"forgeapi/internal/platform/logger"
	phttp "forgeapi/internal/platform/net/http"

	"forgeapi/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// forge config is validated before the server accepts traffic
	fo, err := forgekit.FromConfig(root)
	if err != nil {
		l.Fatal().Err(err).Msg("invalid forge configuration")
	}
	dispatcher, err := forgekit.Build(fo)
	if err != nil {
		l.Fatal().Err(err).Msg("forge dispatcher build failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Forge:          dispatcher,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			LookupTimeout:  apiCfg.MayDuration("LOOKUP_TIMEOUT", 0),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
