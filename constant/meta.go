// Package constant holds application-wide identifiers that never change at runtime.
package constant

const (
	// Trixio names the application. It is used for config, cache and log paths and as the env prefix.
	Trixio = "trixio"

	// Brand is the display name shown in banners.
	Brand = "TRIXIOBIXIO"

	// Version is the semantic version of the build.
	Version = "1.0.0"

	// UserAgent is sent with every outgoing request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Repository is the GitHub owner/name pair used for release lookups.
const Repository = "trixio-cli/trixio"
