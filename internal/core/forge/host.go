package forge

import (
	"net"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeHost canonicalizes a host for table lookups and probing
// it strips scheme, path, port and a trailing dot, lowercases and converts to ASCII (punycode)
// returns "" when nothing usable is left
func NormalizeHost(raw string) string {
	h := strings.TrimSpace(raw)
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	if i := strings.IndexAny(h, "/?#"); i >= 0 {
		h = h[:i]
	}
	if i := strings.LastIndex(h, "@"); i >= 0 {
		h = h[i+1:]
	}
	if hp, _, err := net.SplitHostPort(h); err == nil {
		h = hp
	}
	h = strings.TrimSuffix(h, ".")
	if h == "" {
		return ""
	}
	if a, err := idna.Lookup.ToASCII(h); err == nil {
		h = a
	}
	return strings.ToLower(h)
}

// hostMatchesSuffix reports whether host equals suffix or is a subdomain of it
func hostMatchesSuffix(host, suffix string) bool {
	return host == suffix || strings.HasSuffix(host, "."+suffix)
}
