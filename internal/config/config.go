// =============================================================================
// Seatcard Sorter - Configuration Module
// =============================================================================
//
// This module loads the settings shared by every command.
//
// SOURCES, LOWEST PRIORITY FIRST:
//   1. Built-in defaults (applyDefaults)
//   2. The YAML config file (seatcard.yaml unless --config names another)
//   3. .env files in the working directory
//   4. SEATCARD_* environment variables
//
// The default config file is optional; a file named explicitly must exist.
//
// =============================================================================

package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "seatcard.yaml"

// EnvFiles are loaded into the environment, when present, before overrides
// are applied.
var EnvFiles = []string{".env", ".env.local"}

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// VersionNames name the mailing versions by list position when a
	// convert run has no version-name file.
	// Default: Bravo, Subs, STBsNonBravo, AllOtherSTBs
	VersionNames []string `yaml:"version_names"`

	// DateLayouts are Go time layouts tried in order when parsing
	// performance dates.
	DateLayouts []string `yaml:"date_layouts"`

	// LeapYear is the year assumed for MM/DD dates read back from a
	// seat-card file. It must be a leap year so that 02/29 parses.
	// Default: 2016
	LeapYear int `yaml:"leap_year" env:"SEATCARD_LEAP_YEAR"`

	// WriteBOM prefixes written files with a UTF-8 byte-order mark.
	WriteBOM bool `yaml:"write_bom" env:"SEATCARD_WRITE_BOM"`

	// LogLevel is one of: debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level" env:"SEATCARD_LOG_LEVEL"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format" env:"SEATCARD_LOG_FORMAT"`

	// TargetSuffix replaces the source extension when convert derives the
	// target path.
	// Default: ".sorted.csv"
	TargetSuffix string `yaml:"target_suffix" env:"SEATCARD_TARGET_SUFFIX"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration.
//
// PARAMETERS:
//   - path: the YAML file to read; "" reads DefaultPath if it exists.
//
// RETURNS:
//   - the configuration with defaults and environment overrides applied.
//   - an error if the file cannot be read or parsed, or a value is invalid.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := loadEnvFiles(EnvFiles); err != nil {
		return nil, errors.Wrap(err, "failed to load env file")
	}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// loadEnvFiles loads whichever of files exist. Variables already set in the
// environment win.
func loadEnvFiles(files []string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if len(cfg.VersionNames) == 0 {
		cfg.VersionNames = []string{"Bravo", "Subs", "STBsNonBravo", "AllOtherSTBs"}
	}
	if cfg.LeapYear == 0 {
		cfg.LeapYear = 2016
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.TargetSuffix == "" {
		cfg.TargetSuffix = ".sorted.csv"
	}
}

func validate(cfg *Config) error {
	if time.Date(cfg.LeapYear, time.February, 29, 0, 0, 0, 0, time.UTC).Month() != time.February {
		return errors.Errorf("leap_year %d is not a leap year", cfg.LeapYear)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}
