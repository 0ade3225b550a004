package forge

// DefaultFlagships are the canonical public instances known out of the box
// SourceHut is deliberately absent: deployments pin one explicitly or get NoFlagshipInstance
var DefaultFlagships = map[Kind]string{
	KindGitHub:   "github.com",
	KindGitLab:   "gitlab.com",
	KindForgejo:  "codeberg.org",
	KindFlakeHub: "flakehub.com",
}

// Flagships is the read-only kind to canonical host table
type Flagships struct {
	hosts map[Kind]string
}

// NewFlagships copies hosts, dropping blank entries and normalizing the rest
func NewFlagships(hosts map[Kind]string) *Flagships {
	f := &Flagships{hosts: make(map[Kind]string, len(hosts))}
	for k, h := range hosts {
		if h = NormalizeHost(h); h != "" && k.Valid() {
			f.hosts[k] = h
		}
	}
	return f
}

// Resolve returns the flagship host for kind. It performs no I/O
func (f *Flagships) Resolve(kind Kind) (string, error) {
	if f != nil {
		if h, ok := f.hosts[kind]; ok {
			return h, nil
		}
	}
	return "", ErrNoFlagshipInstance
}

// Hosts returns a copy of the table
func (f *Flagships) Hosts() map[Kind]string {
	if f == nil {
		return map[Kind]string{}
	}
	out := make(map[Kind]string, len(f.hosts))
	for k, v := range f.hosts {
		out[k] = v
	}
	return out
}
