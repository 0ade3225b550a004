package domain

import (
	"sync"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/platform/net/http/bind"
)

var tagsOnce sync.Once

// registerTags installs the forge_kind and forge_host validator tags once per process
func registerTags() {
	tagsOnce.Do(func() {
		_ = bind.RegisterTag("forge_kind", func(fl bind.FieldLevel) bool {
			_, ok := forge.ParseKind(fl.Field().String())
			return ok
		}, "{0} must be a known forge kind")
		_ = bind.RegisterTag("forge_host", func(fl bind.FieldLevel) bool {
			return forge.NormalizeHost(fl.Field().String()) != ""
		}, "{0} must be a host name")
	})
}

// Validate checks v against its validate tags and returns a 400 project error on failure
func Validate(v any) error {
	registerTags()
	return bind.Struct(v)
}
