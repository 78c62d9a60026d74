package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/notionaudit/notionaudit/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxListedEntries caps how many flagged pages the terminal summary lists.
const maxListedEntries = 5

// SimpleWriter outputs a human-readable text summary for terminal display.
//
// Design decision: Plain ASCII formatting rather than ANSI colors, so the
// output pipes cleanly to files and other tools.
type SimpleWriter struct {
	baseWriter

	// titleCaser renders risk tiers for display.
	titleCaser cases.Caser
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
		titleCaser: cases.Title(language.English),
	}
}

// Write outputs the report summary.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeRiskSummary(&sb, report)
	w.writeEntries(&sb, report)
	w.writeRecommendations(&sb, report)
	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner and scan statistics.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("              NOTION PUBLIC PAGE AUDIT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Scan Date:      %s\n", report.ScanTimestamp.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Pages Analyzed: %d\n", report.TotalScanned))
	sb.WriteString(fmt.Sprintf("Flagged Pages:  %d\n", len(report.Entries)))
}

// writeRiskSummary writes the per-tier counts.
func (w *SimpleWriter) writeRiskSummary(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\nRisk Distribution:\n")
	sb.WriteString(fmt.Sprintf("  - High:   %d page(s)\n", report.RiskSummary.High))
	sb.WriteString(fmt.Sprintf("  - Medium: %d page(s)\n", report.RiskSummary.Medium))
	sb.WriteString(fmt.Sprintf("  - Low:    %d page(s)\n", report.RiskSummary.Low))
}

// writeEntries lists the top flagged pages.
func (w *SimpleWriter) writeEntries(sb *strings.Builder, report *model.Report) {
	if len(report.Entries) == 0 {
		return
	}

	limit := len(report.Entries)
	if limit > maxListedEntries {
		limit = maxListedEntries
	}

	sb.WriteString(fmt.Sprintf("\nFlagged Pages (top %d):\n", limit))
	for _, entry := range report.Entries[:limit] {
		sb.WriteString(fmt.Sprintf("  - %s (risk: %s)\n", entry.Title, w.titleCaser.String(string(entry.RiskLevel))))
		sb.WriteString(fmt.Sprintf("    URL: %s\n", entry.URL))
		if len(entry.PublicIndicators) > 0 {
			sb.WriteString(fmt.Sprintf("    Indicators: %s\n", model.JoinLabels(entry.PublicIndicators, labelDelimiter)))
		}
	}
}

// writeRecommendations writes the numbered remediation guidance.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\nRecommendations:\n")
	for i, rec := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
	}
}

// writeFooter writes the closing banner, with a warning block when
// high-risk pages were found.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, report *model.Report) {
	if report.RiskSummary.High > 0 {
		sb.WriteString("\nWARNING: high-risk pages detected.\n")
		sb.WriteString("These pages may expose sensitive content. Review their sharing\n")
		sb.WriteString("settings now and unpublish anything that should not be public.\n")
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
}
