package forgekit

import (
	"forgeapi/internal/adapters/forge/flakehub"
	"forgeapi/internal/adapters/forge/forgejo"
	"forgeapi/internal/adapters/forge/github"
	"forgeapi/internal/adapters/forge/gitlab"
	"forgeapi/internal/adapters/forge/probe"
	"forgeapi/internal/adapters/forge/sourcehut"
	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	"forgeapi/internal/platform/logger"
)

// Build wires transport, adapters, discovery and flagships into a Dispatcher
// it is called once at startup; the result is immutable and safe to share
func Build(o Options) (*forge.Dispatcher, error) {
	var file *HostsFile
	if o.HostsFile != "" {
		f, err := ReadHostsFile(o.HostsFile)
		if err != nil {
			return nil, err
		}
		file = f
	}

	client := transport.New(transport.Options{
		UserAgent:  o.UserAgent,
		Timeout:    o.Timeout,
		MaxRetries: o.MaxRetries,
		RetryBase:  o.RetryBase,
		HTTP:       o.http,
	})

	flagHosts := o.flagships(file)
	knownHosts := o.knownHosts(file)
	creds := o.credentials(flagHosts, knownHosts)

	reg, err := forge.NewRegistry(
		github.New(github.Options{Client: client, Scheme: o.Scheme, Token: creds[forge.KindGitHub]}),
		gitlab.New(gitlab.Options{Client: client, Scheme: o.Scheme, Token: creds[forge.KindGitLab]}),
		forgejo.New(forgejo.Options{Client: client, Scheme: o.Scheme, Token: creds[forge.KindForgejo]}),
		sourcehut.New(sourcehut.Options{Client: client, Scheme: o.Scheme, Token: creds[forge.KindSourceHut]}),
		flakehub.New(flakehub.Options{Client: client, Scheme: o.Scheme, Token: creds[forge.KindFlakeHub]}),
	)
	if err != nil {
		return nil, err
	}

	known := forge.NewKnownHosts(knownHosts)
	strategies := []forge.Strategy{known, forge.NewSuffixes(nil)}
	if o.Probe {
		// probes never retry; a miss is cheaper than a slow answer
		pc := transport.New(transport.Options{UserAgent: o.UserAgent, Timeout: o.ProbeTimeout, HTTP: o.http})
		strategies = append(strategies, probe.New(probe.Options{Client: pc, Timeout: o.ProbeTimeout, Scheme: o.Scheme}))
	}

	flags := forge.NewFlagships(flagHosts)

	logger.Named("forgekit").Info().
		Int("known_hosts", known.Len()).
		Bool("probe", o.Probe).
		Int("tokens", len(creds)).
		Int("flagships", len(flags.Hosts())).
		Msg("forge dispatcher ready")

	return forge.NewDispatcher(reg, forge.NewDiscovery(strategies...), flags), nil
}
