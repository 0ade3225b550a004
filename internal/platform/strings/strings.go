// Package strings holds the small checks module wiring runs at startup
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s trimmed; a blank s panics naming what was missing
func MustString(s, what string) string {
	if s = std.TrimSpace(s); s == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix canonicalizes a mount path to one leading slash and no trailing slash
// the root and chi patterns are rejected; a module owns a literal prefix
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/")
	switch {
	case s == "/":
		panic("mount prefix is required")
	case std.ContainsAny(s, "{}*"):
		panic("mount prefix " + s + " must be literal")
	}
	return s
}
