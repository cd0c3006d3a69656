package domain

import "fmt"

// Backend names a persistence implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendPebble Backend = "pebble"
)

// ValidBackends enumerates all recognized storage backends.
var ValidBackends = []Backend{BackendJSON, BackendPebble}

// ValidLogLevels enumerates the accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "disabled"}

// Config holds application configuration loaded from .zesty.yaml.
type Config struct {
	DataFile       string  `yaml:"data_file"       json:"data_file,omitempty"`
	Backend        Backend `yaml:"backend"         json:"backend,omitempty"`
	LogLevel       string  `yaml:"log_level"       json:"log_level,omitempty"`
	StrictStatuses bool    `yaml:"strict_statuses" json:"strict_statuses,omitempty"`
	Currency       string  `yaml:"currency"        json:"currency,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DataFile: "zesty_data.json",
		Backend:  BackendJSON,
		LogLevel: "warn",
		Currency: "$",
	}
}

// DefaultDataPath returns the conventional data location for a backend.
func DefaultDataPath(b Backend) string {
	if b == BackendPebble {
		return "zesty_data.pebble"
	}
	return "zesty_data.json"
}

// WithDefaults fills every empty field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.DataFile == "" {
		c.DataFile = DefaultDataPath(c.Backend)
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Backend != "" {
		valid := false
		for _, b := range ValidBackends {
			if c.Backend == b {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w %q (valid: json, pebble)", ErrUnknownBackend, c.Backend)
		}
	}

	if c.LogLevel != "" {
		valid := false
		for _, l := range ValidLogLevels {
			if c.LogLevel == l {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error, disabled)", c.LogLevel)
		}
	}

	return nil
}
