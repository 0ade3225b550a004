// Package config reads application configuration from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"forgeapi/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "FORGE_", "CORE_API_")
// New() reads unprefixed keys; Prefix narrows to a scope
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("FORGE_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) raw(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// parsed returns def for a missing key and for a value parse rejects; rejections log at warn
func parsed[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MayString returns the trimmed value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.raw(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing, empty or not an int
func (c Conf) MayInt(key string, def int) int {
	return parsed(c, key, def, "int", strconv.Atoi)
}

// MayBool returns the value or def if missing, empty or not a bool
func (c Conf) MayBool(key string, def bool) bool {
	return parsed(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def if missing, empty or not a duration
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma-separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.raw(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
