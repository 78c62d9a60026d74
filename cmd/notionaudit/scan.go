package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/notionaudit/notionaudit/internal/config"
	"github.com/notionaudit/notionaudit/internal/heuristic"
	auditlog "github.com/notionaudit/notionaudit/internal/log"
	"github.com/notionaudit/notionaudit/internal/notion"
	"github.com/notionaudit/notionaudit/internal/pipeline"
	"github.com/notionaudit/notionaudit/internal/report"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the workspace and write a risk-ranked report",
		Long: `Scan discovers every page the integration can see, fetches each page's
metadata, derives public-exposure indicators, and writes a risk-ranked
report.

The audit is heuristic: the API has no authoritative sharing flag. A page
with one indicator is ranked medium, two or more rank high. Pages without
indicators are not reported.

Examples:
  # JSON report to the default path
  notionaudit scan --format json

  # JSON and CSV reports (CSV path derived from --output)
  notionaudit scan --format both --output audit.json

  # Markdown summary with the reachability probe enabled
  notionaudit scan --format markdown --output audit.md --probe

  # Token-bucket pacing at 3 requests/second instead of a fixed delay
  notionaudit scan --format json --rate 3`,
		RunE: runScanCmd,
	}

	// Report flags
	cmd.Flags().StringP("format", "f", "",
		"Output format: json, csv, both, or markdown (required)")
	cmd.Flags().StringP("output", "o", "",
		"Output file path (default derived from format, e.g. notion_security_report.json)")

	// Pacing flags
	cmd.Flags().Duration("delay", config.DefaultDelay,
		"Fixed delay between API requests")
	cmd.Flags().Float64("rate", 0,
		"Requests per second for token-bucket pacing (0 uses the fixed delay)")

	// Scan behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each API request")
	cmd.Flags().Bool("probe", false,
		"Probe page URLs without credentials to test public reachability")
	cmd.Flags().Duration("probe-timeout", config.DefaultProbeTimeout,
		"Timeout for each reachability probe")
	cmd.Flags().Int("probe-concurrency", config.DefaultProbeConcurrency,
		"Number of concurrent reachability probes")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .notionaudit in current or home directory)")

	_ = cmd.MarkFlagRequired("format") //nolint:errcheck // Flag exists

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := auditlog.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScan(ctx, cfg, logger)
}

// buildConfig assembles a Config from flags, the configuration file, and
// the environment.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	cfg.Format = config.Format(format)

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Delay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.RequestsPerSecond, err = cmd.Flags().GetFloat64("rate")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Probe, err = cmd.Flags().GetBool("probe")
	if err != nil {
		return nil, err
	}

	cfg.ProbeTimeout, err = cmd.Flags().GetDuration("probe-timeout")
	if err != nil {
		return nil, err
	}

	cfg.ProbeConcurrency, err = cmd.Flags().GetInt("probe-concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if cfg.OutputFile == "" {
		cfg.OutputFile = defaultOutputFor(cfg.Format)
	}

	// Load the configuration file. An explicitly specified file must exist;
	// otherwise a missing file just means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	config.ResolveToken(cfg)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// defaultOutputFor picks the default output path matching the format.
func defaultOutputFor(format config.Format) string {
	base := strings.TrimSuffix(config.DefaultOutputFile, filepath.Ext(config.DefaultOutputFile))
	switch format {
	case config.FormatCSV:
		return base + ".csv"
	case config.FormatMarkdown:
		return base + ".md"
	default:
		return config.DefaultOutputFile
	}
}

// runScan executes the audit pipeline and exports the report.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client := notion.NewClient(cfg.Token,
		notion.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		notion.WithPacer(buildPacer(cfg)),
		notion.WithLogger(logger),
	)

	var prober *heuristic.BatchProber
	if cfg.Probe {
		prober = heuristic.NewBatchProber(
			heuristic.NewProber(
				heuristic.WithProbeTimeout(cfg.ProbeTimeout),
				heuristic.WithProbeLogger(logger),
			),
			heuristic.WithBatchConcurrency(cfg.ProbeConcurrency),
			heuristic.WithBatchLogger(logger),
		)
	}

	p := pipeline.NewDefault(client, prober, logger)
	state := pipeline.NewState()

	fmt.Println("Scanning Notion workspace...")
	startTime := time.Now()

	if err := p.Execute(ctx, state); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Scan completed in %s\n", elapsed.Round(time.Millisecond))
	if state.PartialDiscovery {
		fmt.Println("Note: discovery was interrupted; the report covers partial results.")
	}

	if err := exportReport(cfg, state); err != nil {
		return err
	}

	// Terminal summary is always printed
	if _, err := report.NewSimpleWriter(os.Stdout).Write(state.Report); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	return nil
}

// buildPacer picks the pacing policy from the configuration.
func buildPacer(cfg *config.Config) notion.Pacer {
	if cfg.RequestsPerSecond > 0 {
		return notion.NewLimiterPacer(cfg.RequestsPerSecond, 1)
	}
	return notion.NewFixedPacer(cfg.Delay)
}

// exportReport writes the report files for the configured format.
func exportReport(cfg *config.Config, state *pipeline.State) error {
	switch cfg.Format {
	case config.FormatJSON:
		return writeReportFile(cfg.OutputFile, state, func(w io.Writer) report.Writer {
			return report.NewJSONWriter(w, report.WithPrettyPrint())
		})
	case config.FormatCSV:
		return writeReportFile(cfg.OutputFile, state, func(w io.Writer) report.Writer {
			return report.NewCSVWriter(w)
		})
	case config.FormatMarkdown:
		return writeReportFile(cfg.OutputFile, state, func(w io.Writer) report.Writer {
			return report.NewMarkdownWriter(w)
		})
	case config.FormatBoth:
		if err := writeReportFile(cfg.OutputFile, state, func(w io.Writer) report.Writer {
			return report.NewJSONWriter(w, report.WithPrettyPrint())
		}); err != nil {
			return err
		}
		return writeReportFile(cfg.CSVPath(), state, func(w io.Writer) report.Writer {
			return report.NewCSVWriter(w)
		})
	default:
		return config.ErrInvalidFormat
	}
}

// writeReportFile writes the report to path with the writer produced by
// newWriter. Reports may contain page titles and URLs, so files are
// created owner-readable only.
func writeReportFile(path string, state *pipeline.State, newWriter func(io.Writer) report.Writer) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best effort cleanup

	if _, err := newWriter(f).Write(state.Report); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}
