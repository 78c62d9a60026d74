// Package report provides report serialization for notionaudit.
//
// This package contains writers for different output formats:
//   - JSONWriter: Full-fidelity structured output for tool integration
//   - CSVWriter: Flattened tabular output, one row per flagged page
//   - MarkdownWriter: Shareable summary in GitHub Flavored Markdown
//   - SimpleWriter: Human-readable text output for terminal display
//
// Design decision: Report writing is separated from the report data
// structures (package model) so new output formats can be added without
// touching the core types. Writers implement the Writer interface and can
// be composed with MultiWriter for multi-format output.
package report
