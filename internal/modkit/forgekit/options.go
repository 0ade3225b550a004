// Package forgekit builds the process-wide forge dispatcher from configuration
// shared by the API service and the forgectl CLI so both resolve hosts identically
package forgekit

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	"forgeapi/internal/platform/config"
)

// none in a FORGE_FLAGSHIP_<KIND> variable or hosts file removes the default entry
const none = "none"

// Options controls the dispatcher, its transport and discovery
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	MaxRetries   int
	RetryBase    time.Duration
	Probe        bool
	ProbeTimeout time.Duration

	// Flagships overrides DefaultFlagships per kind; an empty value removes the entry
	Flagships map[forge.Kind]string

	// KnownHosts is the operator host table (host -> kind)
	KnownHosts map[string]forge.Kind

	// Tokens are optional static per-kind tokens forwarded as headers
	// a token only reaches its kind's flagship, known hosts of that kind and TokenHosts
	Tokens map[forge.Kind]string

	// TokenHosts binds extra hosts to a kind's token
	TokenHosts map[forge.Kind][]string

	// Scheme is used for adapter and probe requests; empty means https
	Scheme string

	// http replaces the outbound client in tests
	http *http.Client

	// HostsFile is an optional YAML, TOML or JSON(C) file merged under the env values
	HostsFile string
}

// FromConfig reads FORGE_* values from process config/env
// invalid kinds in FORGE_KNOWN_HOSTS are reported, not silently dropped
func FromConfig(cfg config.Conf) (Options, error) {
	fc := cfg.Prefix("FORGE_")
	o := Options{
		UserAgent:    fc.MayString("USER_AGENT", "forgeapi"),
		Timeout:      fc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries:   fc.MayInt("MAX_RETRIES", 2),
		RetryBase:    fc.MayDuration("RETRY_BASE", 250*time.Millisecond),
		Probe:        fc.MayBool("PROBE", true),
		ProbeTimeout: fc.MayDuration("PROBE_TIMEOUT", 3*time.Second),
		HostsFile:    fc.MayString("HOSTS_FILE", ""),
		Flagships:    map[forge.Kind]string{},
		KnownHosts:   map[string]forge.Kind{},
		Tokens:       map[forge.Kind]string{},
		TokenHosts:   map[forge.Kind][]string{},
	}

	for _, k := range forge.Kinds {
		name := strings.ToUpper(k.String())
		if v := fc.MayString("FLAGSHIP_"+name, ""); v != "" {
			if strings.EqualFold(v, none) {
				v = ""
			}
			o.Flagships[k] = v
		}
		if t := fc.MayString("TOKEN_"+name, ""); t != "" {
			o.Tokens[k] = t
		}
		if hs := fc.MayCSV("TOKEN_HOSTS_"+name, nil); len(hs) > 0 {
			o.TokenHosts[k] = hs
		}
	}

	for _, pair := range fc.MayCSV("KNOWN_HOSTS", nil) {
		host, kind, err := parseHostPair(pair)
		if err != nil {
			return Options{}, err
		}
		o.KnownHosts[host] = kind
	}
	return o, nil
}

// parseHostPair parses "host=kind"
func parseHostPair(pair string) (string, forge.Kind, error) {
	h, name, ok := strings.Cut(pair, "=")
	if !ok {
		return "", 0, fmt.Errorf("known host %q: want host=kind", pair)
	}
	host := forge.NormalizeHost(h)
	if host == "" {
		return "", 0, fmt.Errorf("known host %q: empty host", pair)
	}
	k, ok := forge.ParseKind(name)
	if !ok {
		return "", 0, fmt.Errorf("known host %q: %w", pair, &forge.UnknownKindError{Name: strings.TrimSpace(name)})
	}
	return host, k, nil
}

// flagships merges defaults, file overrides and env overrides in that order
func (o Options) flagships(file *HostsFile) map[forge.Kind]string {
	out := make(map[forge.Kind]string, len(forge.DefaultFlagships))
	for k, v := range forge.DefaultFlagships {
		out[k] = v
	}
	apply := func(k forge.Kind, v string) {
		if v == "" {
			delete(out, k)
			return
		}
		out[k] = v
	}
	if file != nil {
		for k, v := range file.flagships {
			apply(k, v)
		}
	}
	for k, v := range o.Flagships {
		apply(k, v)
	}
	return out
}

// knownHosts merges file entries under env entries
func (o Options) knownHosts(file *HostsFile) map[string]forge.Kind {
	out := map[string]forge.Kind{}
	if file != nil {
		for h, k := range file.hosts {
			out[h] = k
		}
	}
	for h, k := range o.KnownHosts {
		out[forge.NormalizeHost(h)] = k
	}
	return out
}

// credentials binds each kind's token to its flagship, its known hosts and its TokenHosts
// hosts reached only through suffix or probe discovery never see a token
func (o Options) credentials(flagships map[forge.Kind]string, known map[string]forge.Kind) map[forge.Kind]transport.Credential {
	out := make(map[forge.Kind]transport.Credential, len(o.Tokens))
	for k, tok := range o.Tokens {
		if tok == "" {
			continue
		}
		var hosts []string
		if h := flagships[k]; h != "" {
			hosts = append(hosts, h)
		}
		for h, hk := range known {
			if hk == k {
				hosts = append(hosts, h)
			}
		}
		for _, h := range o.TokenHosts[k] {
			hosts = append(hosts, forge.NormalizeHost(h))
		}
		out[k] = transport.NewCredential(tok, hosts...)
	}
	return out
}
