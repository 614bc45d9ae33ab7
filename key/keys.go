// Package key defines the configuration identifiers shared by viper, flags and environment bindings.
package key

// Video search - keys for the YouTube Data API client.
const (
	YouTubeAPIKey      = "youtube.api_key"
	YouTubePageSize    = "youtube.page_size"
	YouTubeTopicSuffix = "youtube.topic_suffix"
	YouTubeBaseURL     = "youtube.base_url"
)

// Catalog - keys for the game-data API client.
const (
	CatalogBaseURL    = "catalog.base_url"
	CatalogCacheHours = "catalog.cache_hours"
)

// Favorites.
const (
	FavoritesShowOnly = "favorites.show_only"
)

// Network.
const (
	NetworkTimeoutSeconds = "network.timeout_seconds"
)

// Opening video links.
const (
	OpenWith = "open.with"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging - these keys manage the application's diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
