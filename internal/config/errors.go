package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate() and checked with errors.Is by the
// CLI so that configuration problems get a distinct exit path from runtime
// failures.
var (
	// ErrMissingToken is returned when no API credential was provided by
	// flag, configuration file, or environment.
	ErrMissingToken = errors.New("no integration token configured: set token in the config file or the NOTION_TOKEN environment variable")

	// ErrPlaceholderToken is returned when the credential is still the
	// placeholder shipped by `notionaudit init`.
	ErrPlaceholderToken = errors.New("integration token is still the placeholder value")

	// ErrInvalidFormat is returned when the output format is not one of
	// json, csv, both, or markdown.
	ErrInvalidFormat = errors.New("invalid format: must be json, csv, both, or markdown")

	// ErrMissingOutput is returned when the output path is empty.
	ErrMissingOutput = errors.New("no output path specified")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the pacing delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidRate is returned when the requests-per-second rate is
	// negative. Use 0 to keep the fixed-delay pacing policy.
	ErrInvalidRate = errors.New("invalid rate: must be non-negative")

	// ErrInvalidProbeTimeout is returned when the probe timeout is not
	// positive.
	ErrInvalidProbeTimeout = errors.New("invalid probe timeout: must be positive")

	// ErrInvalidProbeConcurrency is returned when the probe concurrency is
	// not positive.
	ErrInvalidProbeConcurrency = errors.New("invalid probe concurrency: must be positive")
)
