// Package version carries build metadata stamped in by the linker.
package version

// Populated via -ldflags at build time; see internal/magetasks.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
