package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds all service configuration. Values come from an optional
// YAML file, with environment variables taking precedence over both the
// file and the built-in defaults.
type Config struct {
	Port string `yaml:"port"`

	// Lookup strategy: "geometry" or "representative".
	Strategy string `yaml:"strategy"`

	// Fallback enables trying the other strategy when the primary one
	// fails with a no-match or upstream error.
	Fallback bool `yaml:"fallback"`

	// Reference dataset paths.
	RidingsGeoJSON string `yaml:"ridings_geojson"`
	RosterCSV      string `yaml:"roster_csv"`

	// Represent API (OpenNorth) settings.
	RepresentBaseURL string        `yaml:"represent_base_url"`
	UpstreamTimeout  time.Duration `yaml:"-"`
	UpstreamTimeoutS string        `yaml:"upstream_timeout"`

	// Spreadsheet logging webhook. Empty disables forwarding.
	SheetWebhookURL string `yaml:"sheet_webhook_url"`
}

// DefaultRepresentBaseURL is the public OpenNorth Represent endpoint.
const DefaultRepresentBaseURL = "https://represent.opennorth.ca"

// Load builds the configuration from defaults, an optional config file and
// environment overrides.
//
// Environment variables:
//   - PORT: listen port (default: "5050")
//   - CONFIG_FILE: YAML config path (default: "config.yaml" if present)
//   - LOOKUP_STRATEGY: "geometry" or "representative" (default: "geometry")
//   - LOOKUP_FALLBACK: "true" to enable the secondary strategy
//   - RIDINGS_GEOJSON: boundary dataset path (default: "data/geojson/fed_districts.geojson")
//   - MP_ROSTER_CSV: roster dataset path (default: "data/csv/mp_list.csv")
//   - REPRESENT_BASE_URL: Represent API base URL
//   - UPSTREAM_TIMEOUT: outbound call timeout, e.g. "10s"
//   - SHEET_WEBHOOK_URL: spreadsheet logging webhook URL
func Load() (Config, error) {
	cfg := Config{
		Port:             "5050",
		Strategy:         "geometry",
		RidingsGeoJSON:   "data/geojson/fed_districts.geojson",
		RosterCSV:        "data/csv/mp_list.csv",
		RepresentBaseURL: DefaultRepresentBaseURL,
		UpstreamTimeoutS: "10s",
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.UpstreamTimeoutS != "" {
		d, err := time.ParseDuration(cfg.UpstreamTimeoutS)
		if err != nil {
			return Config{}, fmt.Errorf("invalid upstream_timeout %q: %w", cfg.UpstreamTimeoutS, err)
		}
		cfg.UpstreamTimeout = d
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 10 * time.Second
	}

	switch cfg.Strategy {
	case "geometry", "representative":
	default:
		return Config{}, fmt.Errorf("unknown lookup strategy %q", cfg.Strategy)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LOOKUP_STRATEGY"))); v != "" {
		cfg.Strategy = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LOOKUP_FALLBACK"))); v != "" {
		cfg.Fallback = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("RIDINGS_GEOJSON"); v != "" {
		cfg.RidingsGeoJSON = v
	}
	if v := os.Getenv("MP_ROSTER_CSV"); v != "" {
		cfg.RosterCSV = v
	}
	if v := os.Getenv("REPRESENT_BASE_URL"); v != "" {
		cfg.RepresentBaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		cfg.UpstreamTimeoutS = v
	}
	if v := os.Getenv("SHEET_WEBHOOK_URL"); v != "" {
		cfg.SheetWebhookURL = v
	}
}
