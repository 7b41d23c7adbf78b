package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables
// (optionally seeded from a .env file).
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Station page retrieval. The timeout is fixed per request; there are
	// no retries.
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"12s"`
	CacheEnabled bool          `envconfig:"CACHE_ENABLED" default:"true"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"1h"`

	// Stations maps slug to page URL, e.g.
	// STATIONS="alikianos:https://...,souda:https://...". Empty keeps the
	// built-in registry.
	Stations StationMap `envconfig:"STATIONS"`

	// ResultLogPath enables the append-only delimited result log when set.
	ResultLogPath string `envconfig:"RESULT_LOG_PATH"`
}

// StationMap decodes "slug:url,slug:url" pairs. Splitting only on the
// first colon keeps the scheme separator in URLs intact.
type StationMap map[string]string

// Decode implements envconfig.Decoder.
func (m *StationMap) Decode(value string) error {
	out := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		slug, url, ok := strings.Cut(pair, ":")
		if !ok || slug == "" || url == "" {
			return fmt.Errorf("invalid station entry %q", pair)
		}
		out[strings.TrimSpace(slug)] = strings.TrimSpace(url)
	}
	*m = out
	return nil
}

// defaultStations is the built-in registry of known station pages.
var defaultStations = StationMap{
	"alikianos": "https://penteli.meteo.gr/stations/alikianos/",
	"souda":     "https://penteli.meteo.gr/stations/souda/",
	"heraklion": "https://penteli.meteo.gr/stations/heraklion/",
}

// Load reads configuration from the environment, applying defaults where
// unset. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("FETCH_TIMEOUT must be positive")
	}
	if cfg.CacheTTL <= 0 {
		return nil, errors.New("CACHE_TTL must be positive")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	if len(cfg.Stations) == 0 {
		cfg.Stations = defaultStations
	}

	return &cfg, nil
}
