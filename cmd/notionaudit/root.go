// Package main provides the entry point for the notionaudit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/notionaudit/notionaudit/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes. Configuration problems get their own code so scripts can
// distinguish "fix your setup" from "the scan failed".
const (
	exitCodeFailure = 1
	exitCodeConfig  = 2
)

// NewRootCmd creates the root command for notionaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notionaudit",
		Short: "Audit a Notion workspace for unintentionally public pages",
		Long: `notionaudit scans every page a Notion integration can see and flags pages
that may be unintentionally exposed to the public.

The Notion API exposes no authoritative sharing flag, so the audit combines
heuristic signals (an explicit public URL, URL patterns, and an optional
unauthenticated reachability probe) and ranks flagged pages by risk.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and maps error kinds to exit codes.
func Execute() {
	err := NewRootCmd().Execute()
	if err == nil {
		return
	}

	if errors.Is(err, config.ErrMissingToken) || errors.Is(err, config.ErrPlaceholderToken) {
		fmt.Fprintln(os.Stderr, err)
		printTokenSetupGuidance(os.Stderr)
		os.Exit(exitCodeConfig)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCodeFailure)
}

// printTokenSetupGuidance prints the steps for configuring an integration
// token. Shown whenever a run refuses to start for credential reasons.
func printTokenSetupGuidance(w *os.File) {
	fmt.Fprintln(w, "\nTo set up a Notion integration token:")
	fmt.Fprintln(w, "  1. Create a new integration at https://www.notion.so/my-integrations")
	fmt.Fprintln(w, "  2. Copy the integration token into the config file (run `notionaudit init`)")
	fmt.Fprintln(w, "     or export it as NOTION_TOKEN")
	fmt.Fprintln(w, "  3. Grant the integration access to your workspace")
	fmt.Fprintln(w, "  4. Share the pages you want audited with the integration")
}
