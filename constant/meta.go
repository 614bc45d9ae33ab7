// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "valtips"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every request to the catalog and video search APIs.
	UserAgent = App + "/" + Version + " (+https://github.com/valtips-cli/valtips)"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
