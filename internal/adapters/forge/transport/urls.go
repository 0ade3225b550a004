package transport

import (
	"net/url"
	"strings"
)

// EscapeRef escapes each segment of a ref and keeps the slashes of names like release/1.x
func EscapeRef(ref string) string {
	parts := strings.Split(ref, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// BaseURL joins scheme and host, defaulting to https
func BaseURL(scheme, host string) string {
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + host
}
