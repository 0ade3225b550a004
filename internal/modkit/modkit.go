// Package modkit provides module wiring and core deps
package modkit

import (
	"forgeapi/internal/core/forge"
	"forgeapi/internal/modkit/module"
	"forgeapi/internal/platform/config"
	"forgeapi/internal/platform/logger"
)

// Module is the contract every API module satisfies
type Module = module.Module

// Deps holds core dependencies passed to modules
// a zero Log is a disabled logger; Forge may be nil only for meta-only tests
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Forge *forge.Dispatcher
}
