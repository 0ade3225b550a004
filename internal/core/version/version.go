// Package version reports what build of forgeapi is running
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"forgeapi"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"3f9c2e1"`
	Date    string `json:"date"    example:"2025-09-02T10:00:00Z"`
	Go      string `json:"go"      example:"go1.24.5"`
}

// set with -ldflags "-X forgeapi/internal/core/version.version=v0.1.0 -X ...commit=abcd -X ...date=2025-09-02"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information; unset ldflags fall back to the vcs stamp go build embeds
func Info() BuildInfo {
	bi := BuildInfo{Service: "forgeapi", Version: version, Commit: commit, Date: date, Go: runtime.Version()}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}
