// Package key lists the configuration identifiers understood by viper.
package key

// Catalog API - where metadata comes from and how it is localized.
const (
	CatalogAPIKey       = "catalog.api_key"
	CatalogBaseURL      = "catalog.base_url"
	CatalogImageBaseURL = "catalog.image_base_url"
	CatalogLanguage     = "catalog.language"
	CatalogCacheTTL     = "catalog.cache_ttl"
)

// Playback - provider host, CORS relays and the external player.
const (
	PlaybackProvider   = "playback.provider"
	PlaybackRelays     = "playback.relays"
	PlaybackRelayIndex = "playback.relay_index"
	PlaybackPlayer     = "playback.player"
)

// Access gate.
const (
	AccessPassword       = "access.password"
	AccessSessionTimeout = "access.session_timeout"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchMinLength            = "search.min_length"
)

// History tracking.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behaviour outside of the TUI.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
