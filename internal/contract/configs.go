package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/bayviewlabs/safetylens/schema"
)

// Default values for configuration and query parameters.
const (
	DefaultListenAddr      = ":5001"
	DefaultGeocoderBaseURL = "https://nominatim.openstreetmap.org"
	DefaultGeocoderTimeout = 5 * time.Second

	DefaultNeighborhoodLimit = 20
	DefaultDangerTopN        = 10
	DefaultCategoryLimit     = 10
	DefaultInspectionLimit   = 10
	DefaultYearlyLimit       = 10
	DefaultYearlyYears       = 3
	DefaultResponseLimit     = 50

	// MaxRangedLimit bounds every [1,100] limit parameter.
	MaxRangedLimit = 100

	// MaxYearWindow bounds the per-year ranking's recency window.
	MaxYearWindow = 5
)

// Config holds the validated runtime configuration for the service.
type Config struct {
	ListenAddr      string
	Backend         schema.DatabaseBackend
	DBConnect       string // Please use env var as this is plaintext
	GeocoderBaseURL string
	GeocoderTimeout time.Duration
	CORSOrigins     []string
	LogLevel        string

	// Export command settings.
	Output     schema.OutputMode
	OutputFile string
	Limit      int
	Source     string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Addr            string `mapstructure:"addr"`
	DBBackend       string `mapstructure:"db-backend"`
	DBConnect       string `mapstructure:"db-connect"`
	GeocoderURL     string `mapstructure:"geocoder-url"`
	GeocoderTimeout string `mapstructure:"geocoder-timeout"`
	CORSOrigins     string `mapstructure:"cors-origins"`
	LogLevel        string `mapstructure:"log-level"`

	// --- Fields from exportCmd.Flags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Source     string `mapstructure:"source"`
}

// ProcessAndValidate turns the raw input into the final Config, rejecting
// values outside their accepted domains.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.ListenAddr = input.Addr
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	backend := schema.DatabaseBackend(input.DBBackend)
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("unsupported db backend: %s. Must be sqlite, mysql, or postgresql", input.DBBackend)
	}
	cfg.Backend = backend
	cfg.DBConnect = input.DBConnect

	cfg.GeocoderBaseURL = input.GeocoderURL
	if cfg.GeocoderBaseURL == "" {
		cfg.GeocoderBaseURL = DefaultGeocoderBaseURL
	}

	cfg.GeocoderTimeout = DefaultGeocoderTimeout
	if input.GeocoderTimeout != "" {
		d, err := time.ParseDuration(input.GeocoderTimeout)
		if err != nil {
			return fmt.Errorf("invalid geocoder timeout %q: %w", input.GeocoderTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("geocoder timeout must be positive, got %s", d)
		}
		cfg.GeocoderTimeout = d
	}

	cfg.CORSOrigins = nil
	for _, origin := range strings.Split(input.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	cfg.LogLevel = input.LogLevel
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if input.Output != "" {
		mode := schema.OutputMode(input.Output)
		if _, ok := schema.ValidOutputModes[mode]; !ok {
			return fmt.Errorf("unsupported output mode: %s. Must be csv, json, or parquet", input.Output)
		}
		cfg.Output = mode
	}
	cfg.OutputFile = input.OutputFile
	cfg.Limit = input.Limit
	cfg.Source = input.Source

	return nil
}
