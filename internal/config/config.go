// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultAddr              = ":9080"
	defaultUpstreamTimeoutMS = 10_000
	defaultCacheTTLSeconds   = 60
	defaultRefreshIntervalS  = 0 // disabled unless configured
	defaultRefreshPages      = 3
	defaultRefreshWorkers    = 2
	defaultMaxPage           = 1000
	defaultMaxDecodeBodyKB   = 1024
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// UpstreamBaseURL points at the legacy game-server proxy. When empty the
	// service only exposes the raw decode endpoints.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeoutMS bounds a single upstream request.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// CacheTTLSeconds controls how long decoded documents stay cached.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// RefreshIntervalSeconds enables the background refresher when positive.
	RefreshIntervalSeconds int `koanf:"refresh_interval_seconds"`

	// RefreshPages sets how many leading level pages the refresher keeps warm.
	RefreshPages int `koanf:"refresh_pages"`

	// RefreshWorkers sets the refresher's worker pool size.
	RefreshWorkers int `koanf:"refresh_workers"`

	// MaxPage caps GET /levels?page.
	MaxPage int `koanf:"max_page"`

	// MaxDecodeBodyKB caps the size of bodies posted to the decode endpoints.
	MaxDecodeBodyKB int `koanf:"max_decode_body_kb"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   defaultAddr,
		UpstreamBaseURL:        "",
		UpstreamTimeoutMS:      defaultUpstreamTimeoutMS,
		CacheTTLSeconds:        defaultCacheTTLSeconds,
		RefreshIntervalSeconds: defaultRefreshIntervalS,
		RefreshPages:           defaultRefreshPages,
		RefreshWorkers:         defaultRefreshWorkers,
		MaxPage:                defaultMaxPage,
		MaxDecodeBodyKB:        defaultMaxDecodeBodyKB,
	}
}
