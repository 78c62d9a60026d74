package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/notionaudit/notionaudit/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs the report in GitHub Flavored Markdown.
// This format is designed for sharing audit results with a team.
type MarkdownWriter struct {
	baseWriter

	// titleCaser renders risk tiers for display ("medium" -> "Medium").
	titleCaser cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		titleCaser: cases.Title(language.English),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeEntries(md, report)
	w.writeRecommendations(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Notion Public Page Audit")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scan Date", report.ScanTimestamp.Format("2006-01-02 15:04:05 MST")},
			{"Pages Analyzed", strconv.Itoa(report.TotalScanned)},
			{"Flagged Pages", strconv.Itoa(len(report.Entries))},
		},
	})
	md.PlainText("")
}

// writeSummary writes the risk distribution section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Risk Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Risk Level", "Count"},
		Rows: [][]string{
			{"🔴 High", strconv.Itoa(report.RiskSummary.High)},
			{"🟡 Medium", strconv.Itoa(report.RiskSummary.Medium)},
			{"🔵 Low", strconv.Itoa(report.RiskSummary.Low)},
		},
	})
	md.PlainText("")

	if len(report.Entries) > 0 {
		w.writePieChart(md, report)
	}
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the risk distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Risk Distribution"),
		piechart.WithShowData(true),
	)

	if report.RiskSummary.High > 0 {
		chart.LabelAndIntValue("High", uint64(report.RiskSummary.High))
	}
	if report.RiskSummary.Medium > 0 {
		chart.LabelAndIntValue("Medium", uint64(report.RiskSummary.Medium))
	}
	if report.RiskSummary.Low > 0 {
		chart.LabelAndIntValue("Low", uint64(report.RiskSummary.Low))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the worst tier present.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.RiskSummary.High > 0:
		md.Warningf(
			"%d page(s) show multiple public-exposure indicators. Review their sharing settings immediately.",
			report.RiskSummary.High,
		)
	case report.RiskSummary.Medium > 0:
		md.Importantf(
			"%d page(s) show a public-exposure indicator and should be verified.",
			report.RiskSummary.Medium,
		)
	default:
		md.Tip("No pages with public-exposure indicators were found.")
	}
	md.PlainText("")
}

// writeEntries writes the flagged pages table.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.Report) {
	md.H2("Flagged Pages")
	md.PlainText("")

	if len(report.Entries) == 0 {
		md.PlainText("No pages were flagged.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		rows = append(rows, []string{
			entry.Title,
			entry.URL,
			w.titleCaser.String(string(entry.RiskLevel)),
			model.JoinLabels(entry.PublicIndicators, labelDelimiter),
			entry.LastEditedTime,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Title", "URL", "Risk Level", "Indicators", "Last Edited"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRecommendations writes the remediation guidance list.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.Report) {
	md.H2("Recommendations")
	md.PlainText("")
	md.BulletList(report.Recommendations...)
	md.PlainText("")
}
