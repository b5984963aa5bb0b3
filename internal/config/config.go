// Package config loads all server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds every user-facing knob. All fields come from environment
// variables; sensible defaults make the zero configuration runnable with the
// provider's demo key.
type Config struct {
	// VWorldKey authenticates against the VWorld image API.
	VWorldKey string `env:"VWORLD_API_KEY" envDefault:"DEMO_KEY"`

	// VWorldBaseURL is the static-image endpoint. Treated as an opaque
	// external contract; changing providers means changing this URL.
	VWorldBaseURL string `env:"VWORLD_BASE_URL" envDefault:"https://api.vworld.kr/req/image"`

	// DatasetPath overrides the bundled coordinate dataset.
	DatasetPath string `env:"GEOQUIZ_DATASET"`

	// MatchPolicy is "substring" or "exact".
	MatchPolicy string `env:"GEOQUIZ_MATCH_POLICY" envDefault:"substring"`

	// SelectionPolicy is "random" or "first".
	SelectionPolicy string `env:"GEOQUIZ_SELECTION" envDefault:"random"`

	// ZoomPolicy is "clamp" or "reject".
	ZoomPolicy string `env:"GEOQUIZ_ZOOM_POLICY" envDefault:"clamp"`

	// Zoom bounds per region. The provider supports a wide range inside its
	// home coverage and only levels 7-8 internationally.
	DomesticZoomMin int `env:"GEOQUIZ_DOMESTIC_ZOOM_MIN" envDefault:"6"`
	DomesticZoomMax int `env:"GEOQUIZ_DOMESTIC_ZOOM_MAX" envDefault:"19"`
	IntlZoomMin     int `env:"GEOQUIZ_INTL_ZOOM_MIN" envDefault:"7"`
	IntlZoomMax     int `env:"GEOQUIZ_INTL_ZOOM_MAX" envDefault:"8"`

	// SessionCap bounds the number of live quiz sessions.
	SessionCap int `env:"GEOQUIZ_SESSION_CAP" envDefault:"1024"`

	// Transport is "stdio" or "http" (Streamable HTTP).
	Transport string `env:"GEOQUIZ_TRANSPORT" envDefault:"stdio"`

	// HTTPAddr is the listen address for the http transport.
	HTTPAddr string `env:"GEOQUIZ_HTTP_ADDR" envDefault:":8080"`

	// GeocodeEnabled turns on best-effort reverse geocoding for address
	// hints.
	GeocodeEnabled bool   `env:"GEOQUIZ_GEOCODE" envDefault:"false"`
	NominatimURL   string `env:"GEOQUIZ_NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", c.Transport)
	}
	if c.SessionCap <= 0 {
		return fmt.Errorf("session cap must be positive, got %d", c.SessionCap)
	}
	return nil
}
