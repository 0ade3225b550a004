// Package forge holds the forge dispatch core: kinds, targets, the adapter
// capability contract, discovery, flagship resolution and error normalization
package forge

import "strings"

// Kind identifies a forge backend. The set is closed; add a constant and a
// registry entry to support a new backend
type Kind uint8

const (
	// KindUnknown is the zero value and means "not specified"
	KindUnknown Kind = iota

	// KindGitHub is github.com or a GitHub Enterprise instance
	KindGitHub

	// KindGitLab is gitlab.com or a self-managed GitLab
	KindGitLab

	// KindForgejo covers Forgejo and Gitea-compatible instances
	KindForgejo

	// KindSourceHut is a sr.ht instance
	KindSourceHut

	// KindFlakeHub is the FlakeHub aggregator
	KindFlakeHub
)

// Kinds lists every concrete kind in a stable order
var Kinds = []Kind{KindGitHub, KindGitLab, KindForgejo, KindSourceHut, KindFlakeHub}

var kindNames = map[Kind]string{
	KindGitHub:    "github",
	KindGitLab:    "gitlab",
	KindForgejo:   "forgejo",
	KindSourceHut: "sourcehut",
	KindFlakeHub:  "flakehub",
}

var kindAliases = map[string]Kind{
	"github":    KindGitHub,
	"gitlab":    KindGitLab,
	"forgejo":   KindForgejo,
	"codeberg":  KindForgejo,
	"gitea":     KindForgejo,
	"sourcehut": KindSourceHut,
	"srht":      KindSourceHut,
	"flakehub":  KindFlakeHub,
}

// String returns the canonical lowercase name
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is one of the concrete kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Federated reports whether the kind is commonly self-hosted with no single
// canonical instance
func (k Kind) Federated() bool {
	return k == KindForgejo || k == KindSourceHut
}

// ParseKind maps a name or alias (case-insensitive) to a Kind
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler so config files can name kinds
func (k *Kind) UnmarshalText(b []byte) error {
	v, ok := ParseKind(string(b))
	if !ok {
		return &UnknownKindError{Name: string(b)}
	}
	*k = v
	return nil
}

// UnknownKindError is returned when a kind name cannot be parsed
type UnknownKindError struct{ Name string }

func (e *UnknownKindError) Error() string { return "unknown forge kind " + `"` + e.Name + `"` }
