// Package config provides unified configuration loading for repaircost.
// It supports loading from YAML files, a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nvandessel/repaircost/internal/constants"
	"github.com/nvandessel/repaircost/internal/logging"
	"github.com/nvandessel/repaircost/internal/models"
)

// RepaircostConfig contains all repaircost configuration settings.
type RepaircostConfig struct {
	// Simulation contains the Monte Carlo run settings.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures trials, horizons and inputs.
type SimulationConfig struct {
	// Trials is the number of Monte Carlo trials per (product, horizon).
	Trials int `json:"trials" yaml:"trials"`

	// Seed fixes the random stream. Zero means derive one from the clock.
	Seed uint64 `json:"seed" yaml:"seed"`

	// FromYears and ToYears bound the sweep, inclusive.
	FromYears int `json:"from_years" yaml:"from_years"`
	ToYears   int `json:"to_years" yaml:"to_years"`

	// Catalog is a YAML product catalog. Empty uses the built-in catalog.
	// Supports ${VAR} syntax.
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	// Database is the report database used by sweep --save and runs.
	// Supports ${VAR} syntax. Empty uses ~/.repaircost/reports.db.
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`

	// Format is "text" (default), "logfmt" or "json".
	Format constants.LogFormat `json:"format" yaml:"format"`
}

// Default returns a RepaircostConfig with sensible defaults.
func Default() *RepaircostConfig {
	return &RepaircostConfig{
		Simulation: SimulationConfig{
			Trials:    constants.DefaultTrials,
			FromYears: constants.DefaultFromYears,
			ToYears:   constants.DefaultToYears,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: constants.LogFormatText,
		},
	}
}

// DefaultPath returns ~/.repaircost/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, constants.DataDirName, constants.ConfigFileName), nil
}

// Load loads configuration from a file, the .env file in the working
// directory and environment variables.
// Order: defaults -> path (or ~/.repaircost/config.yaml) -> .env -> environment variables
// An explicit path must exist; the default one is optional.
func Load(path string) (*RepaircostConfig, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	} else if defaultPath, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(defaultPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	if err := LoadDotEnv(constants.EnvFileName); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*RepaircostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: parsing config file %s: %v", models.ErrConfiguration, path, err)
	}

	config.Simulation.Catalog = expandEnvVars(config.Simulation.Catalog)
	config.Simulation.Database = expandEnvVars(config.Simulation.Database)

	return config, nil
}

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: loading %s: %v", models.ErrConfiguration, path, err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *RepaircostConfig) Validate() error {
	s := c.Simulation
	if s.Trials <= 0 || s.Trials > constants.MaxTrials {
		return fmt.Errorf("%w: trials must be between 1 and %d, got %d", models.ErrConfiguration, constants.MaxTrials, s.Trials)
	}
	if s.FromYears < 1 {
		return fmt.Errorf("%w: from_years must be at least 1, got %d", models.ErrConfiguration, s.FromYears)
	}
	if s.ToYears < s.FromYears || s.ToYears > constants.MaxYears {
		return fmt.Errorf("%w: to_years must be between from_years (%d) and %d, got %d",
			models.ErrConfiguration, s.FromYears, constants.MaxYears, s.ToYears)
	}

	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s (valid: info, debug, trace, or empty for default)",
			models.ErrConfiguration, c.Logging.Level)
	}
	if c.Logging.Format != "" && !c.Logging.Format.Valid() {
		return fmt.Errorf("%w: invalid log format: %s (valid: text, logfmt, json)",
			models.ErrConfiguration, c.Logging.Format)
	}

	return nil
}

// applyEnvOverrides applies REPAIRCOST_* environment variables.
func applyEnvOverrides(config *RepaircostConfig) error {
	if v := getenv("TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("TRIALS", v, err)
		}
		config.Simulation.Trials = n
	}

	if v := getenv("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		config.Simulation.Seed = n
	}

	if v := getenv("FROM_YEARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("FROM_YEARS", v, err)
		}
		config.Simulation.FromYears = n
	}

	if v := getenv("TO_YEARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("TO_YEARS", v, err)
		}
		config.Simulation.ToYears = n
	}

	if v := getenv("CATALOG"); v != "" {
		config.Simulation.Catalog = expandEnvVars(v)
	}
	if v := getenv("DATABASE"); v != "" {
		config.Simulation.Database = expandEnvVars(v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		config.Logging.Format = constants.LogFormat(strings.ToLower(v))
	}

	return nil
}

func getenv(name string) string {
	return os.Getenv(constants.EnvPrefix + name)
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%w: %s%s=%q: %v", models.ErrConfiguration, constants.EnvPrefix, name, value, err)
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
