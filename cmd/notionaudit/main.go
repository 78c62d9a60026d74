// Package main provides the entry point for the notionaudit CLI.
//
// notionaudit audits a Notion workspace for pages that may be
// unintentionally exposed to the public and produces a risk-ranked report.
//
// Usage:
//
//	notionaudit scan --format json
//	notionaudit scan --format both --output audit.json
//
// See --help for all available options.
package main

// main is the entry point for notionaudit.
func main() {
	Execute()
}
