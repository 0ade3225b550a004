package forge

import (
	"context"

	"forgeapi/internal/platform/logger"
)

// Strategy decides whether it recognizes a host
// Match must report false (never an error) when the host is unknown or unreachable
type Strategy interface {
	Name() string
	Match(ctx context.Context, host string) (Kind, bool)
}

// Discovered is a successful discovery result
type Discovered struct {
	Kind     Kind   `json:"kind"`
	Host     string `json:"host"`
	Strategy string `json:"strategy"`
}

// Discovery runs strategies in order and stops at the first match
type Discovery struct {
	strategies []Strategy
	log        *logger.Logger
}

// NewDiscovery builds an engine; order is cheapest and most specific first
func NewDiscovery(strategies ...Strategy) *Discovery {
	s := make([]Strategy, 0, len(strategies))
	for _, st := range strategies {
		if st != nil {
			s = append(s, st)
		}
	}
	return &Discovery{strategies: s, log: logger.Named("discovery")}
}

// Discover resolves the forge kind serving host; ok is false on a miss
func (d *Discovery) Discover(ctx context.Context, host string) (Discovered, bool) {
	h := NormalizeHost(host)
	if h == "" || d == nil {
		return Discovered{}, false
	}
	for _, s := range d.strategies {
		if ctx.Err() != nil {
			return Discovered{}, false
		}
		if k, ok := s.Match(ctx, h); ok && k.Valid() {
			d.log.Debug().Str("host", h).Str("kind", k.String()).Str("strategy", s.Name()).Msg("forge discovered")
			return Discovered{Kind: k, Host: h, Strategy: s.Name()}, true
		}
	}
	d.log.Debug().Str("host", h).Msg("no forge matched host")
	return Discovered{}, false
}

// Strategies returns the strategy names in evaluation order
func (d *Discovery) Strategies() []string {
	out := make([]string, len(d.strategies))
	for i, s := range d.strategies {
		out[i] = s.Name()
	}
	return out
}

// KnownHosts matches operator-registered hosts exactly
type KnownHosts struct {
	hosts map[string]Kind
}

// NewKnownHosts normalizes the table keys and drops invalid kinds
func NewKnownHosts(hosts map[string]Kind) *KnownHosts {
	t := &KnownHosts{hosts: make(map[string]Kind, len(hosts))}
	for h, k := range hosts {
		if h = NormalizeHost(h); h != "" && k.Valid() {
			t.hosts[h] = k
		}
	}
	return t
}

// Name implements Strategy
func (t *KnownHosts) Name() string { return "known-hosts" }

// Match implements Strategy
func (t *KnownHosts) Match(_ context.Context, host string) (Kind, bool) {
	k, ok := t.hosts[host]
	return k, ok
}

// Len returns the number of registered hosts
func (t *KnownHosts) Len() int { return len(t.hosts) }

// SuffixRule maps a domain and its subdomains to a kind
type SuffixRule struct {
	Suffix string
	Kind   Kind
}

// DefaultSuffixRules cover the hosted multi-tenant platforms
var DefaultSuffixRules = []SuffixRule{
	{Suffix: "github.com", Kind: KindGitHub},
	{Suffix: "gitlab.com", Kind: KindGitLab},
	{Suffix: "sr.ht", Kind: KindSourceHut},
	{Suffix: "flakehub.com", Kind: KindFlakeHub},
}

// Suffixes matches hosts by domain suffix, first rule wins
type Suffixes struct {
	rules []SuffixRule
}

// NewSuffixes builds the heuristic strategy; nil rules means DefaultSuffixRules
func NewSuffixes(rules []SuffixRule) *Suffixes {
	if rules == nil {
		rules = DefaultSuffixRules
	}
	return &Suffixes{rules: rules}
}

// Name implements Strategy
func (s *Suffixes) Name() string { return "suffix" }

// Match implements Strategy
func (s *Suffixes) Match(_ context.Context, host string) (Kind, bool) {
	for _, r := range s.rules {
		if hostMatchesSuffix(host, r.Suffix) {
			return r.Kind, true
		}
	}
	return KindUnknown, false
}
