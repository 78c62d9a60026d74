package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDelay is the fixed pause between API requests. The Notion API
	// enforces an average of roughly three requests per second, so 100ms
	// keeps a sequential scan comfortably under the limit.
	DefaultDelay = 100 * time.Millisecond

	// DefaultTimeout is the per-request HTTP timeout for API calls.
	DefaultTimeout = 30 * time.Second

	// DefaultProbeTimeout bounds each unauthenticated reachability probe.
	DefaultProbeTimeout = 10 * time.Second

	// DefaultProbeConcurrency is the number of concurrent reachability
	// probes when probing is enabled. Probes hit the public site, not the
	// API, so they are not subject to the API rate limit.
	DefaultProbeConcurrency = 4

	// DefaultOutputFile is the structured report path when --output is not
	// given.
	DefaultOutputFile = "notion_security_report.json"

	// PlaceholderToken is the token value shipped in the starter
	// configuration file. A run configured with it refuses to start.
	PlaceholderToken = "your_notion_integration_token_here" //nolint:gosec // Not a credential

	// EnvToken is the environment variable consulted for the API credential
	// when the configuration file does not provide one.
	EnvToken = "NOTION_TOKEN"

	// AppName is the application name used for XDG directory paths.
	AppName = "notionaudit"
)

// Format selects the report serialization written to disk.
type Format string

const (
	// FormatJSON writes the full-fidelity structured report.
	FormatJSON Format = "json"

	// FormatCSV writes the flattened tabular report.
	FormatCSV Format = "csv"

	// FormatBoth writes the JSON report and derives a CSV path from it.
	FormatBoth Format = "both"

	// FormatMarkdown writes a Markdown summary report.
	FormatMarkdown Format = "markdown"
)

// Config holds all options for one audit run.
// It is populated from CLI flags and the configuration file, validated once,
// and passed through the application by injection.
type Config struct {
	// Token is the Notion integration token used as the bearer credential.
	Token string

	// Format is the report serialization to write.
	Format Format

	// OutputFile is the report path. For FormatBoth it names the JSON file;
	// the CSV path is derived from it.
	OutputFile string

	// Timeout is the per-request HTTP timeout for API calls.
	Timeout time.Duration

	// Delay is the fixed pause between API requests. Ignored when
	// RequestsPerSecond is set.
	Delay time.Duration

	// RequestsPerSecond switches pacing to a token-bucket policy at the
	// given rate. Zero keeps the fixed-delay policy.
	RequestsPerSecond float64

	// Probe enables the unauthenticated reachability probe for analyzed
	// pages. Off by default; the probe is an explicit opt-in extension.
	Probe bool

	// ProbeTimeout bounds each reachability probe request.
	ProbeTimeout time.Duration

	// ProbeConcurrency is the number of concurrent probes when Probe is set.
	ProbeConcurrency int

	// Verbose enables debug-level logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	// When empty the standard search order applies.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
// The token and format have no defaults; both must be supplied.
func NewConfig() *Config {
	return &Config{
		OutputFile:       DefaultOutputFile,
		Timeout:          DefaultTimeout,
		Delay:            DefaultDelay,
		ProbeTimeout:     DefaultProbeTimeout,
		ProbeConcurrency: DefaultProbeConcurrency,
	}
}

// Validate checks the configuration and returns a sentinel error describing
// the first problem found. It is called once after flag parsing, before any
// network activity.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Token == PlaceholderToken {
		return ErrPlaceholderToken
	}

	switch c.Format {
	case FormatJSON, FormatCSV, FormatBoth, FormatMarkdown:
	default:
		return ErrInvalidFormat
	}

	if c.OutputFile == "" {
		return ErrMissingOutput
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.RequestsPerSecond < 0 {
		return ErrInvalidRate
	}
	if c.ProbeTimeout <= 0 {
		return ErrInvalidProbeTimeout
	}
	if c.ProbeConcurrency <= 0 {
		return ErrInvalidProbeConcurrency
	}

	return nil
}

// CSVPath derives the tabular report path from OutputFile by replacing its
// extension with .csv. Used in FormatBoth mode.
func (c *Config) CSVPath() string {
	ext := filepath.Ext(c.OutputFile)
	return strings.TrimSuffix(c.OutputFile, ext) + ".csv"
}

// XDGConfigDir returns the XDG config directory for notionaudit.
// On Linux: ~/.config/notionaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGDataDir returns the XDG data directory for notionaudit.
// On Linux: ~/.local/share/notionaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
