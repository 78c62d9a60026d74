package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name searched for in
// the current and home directories.
const DefaultConfigFile = ".notionaudit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk configuration format.
// Durations are strings in Go duration syntax ("100ms", "1s") so the file
// stays readable.
type File struct {
	// Token is the Notion integration token.
	Token string `yaml:"token"`

	// Delay is the fixed pause between API requests.
	Delay string `yaml:"delay,omitempty"`

	// Timeout is the per-request HTTP timeout.
	Timeout string `yaml:"timeout,omitempty"`

	// ProbeTimeout bounds each reachability probe.
	ProbeTimeout string `yaml:"probe_timeout,omitempty"`
}

// LoadConfigFile loads configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Apply merges the file's values into cfg. File values fill in only what
// the caller has not already set explicitly; the credential additionally
// falls back to the NOTION_TOKEN environment variable.
func (f *File) Apply(cfg *Config) error {
	if cfg.Token == "" {
		cfg.Token = f.Token
	}

	if f.Delay != "" {
		d, err := time.ParseDuration(f.Delay)
		if err != nil {
			return fmt.Errorf("invalid delay in config file: %w", err)
		}
		cfg.Delay = d
	}

	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %w", err)
		}
		cfg.Timeout = d
	}

	if f.ProbeTimeout != "" {
		d, err := time.ParseDuration(f.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("invalid probe_timeout in config file: %w", err)
		}
		cfg.ProbeTimeout = d
	}

	return nil
}

// ResolveToken fills the credential from the environment when neither flag
// nor configuration file provided one.
func ResolveToken(cfg *Config) {
	if cfg.Token == "" {
		cfg.Token = os.Getenv(EnvToken)
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .notionaudit in the current directory
//  3. .notionaudit in the user's home directory
//  4. config.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
