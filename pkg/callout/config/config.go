// Package config holds service configuration loaded from the environment
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the callout-server configuration
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	BaseURL string `env:"CALLOUT_BASE_URL" envDefault:"http://localhost:8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// CORSOrigins lists allowed origins for the API; empty allows all,
	// which suits the fragment-only sharing model (nothing sensitive
	// lives server-side).
	CORSOrigins []string `env:"CALLOUT_CORS_ORIGINS" envSeparator:","`

	// SuggestEndpoint is the external AI copy-suggestion service.
	// When empty, canned suggestions are served instead.
	SuggestEndpoint string `env:"CALLOUT_SUGGEST_ENDPOINT"`

	// WebDist is where the built creator/viewer frontend lives
	WebDist string `env:"CALLOUT_WEB_DIST" envDefault:"./web/dist"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
