package report

import (
	"encoding/csv"
	"io"

	"github.com/notionaudit/notionaudit/internal/model"
)

// csvHeader is the fixed header row of the tabular export.
var csvHeader = []string{"Title", "URL", "Risk Level", "Public Indicators", "Last Edited Time"}

// labelDelimiter joins a row's indicator labels.
const labelDelimiter = ", "

// CSVWriter outputs the flattened tabular report: a header row followed by
// one row per flagged page. Unflagged pages do not appear; the row count
// always equals the number of report entries.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as CSV.
func (w *CSVWriter) Write(report *model.Report) (int, error) {
	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	if err := cw.Write(csvHeader); err != nil {
		return counter.n, err
	}

	for _, entry := range report.Entries {
		row := []string{
			entry.Title,
			entry.URL,
			string(entry.RiskLevel),
			model.JoinLabels(entry.PublicIndicators, labelDelimiter),
			entry.LastEditedTime,
		}
		if err := cw.Write(row); err != nil {
			return counter.n, err
		}
	}

	cw.Flush()
	return counter.n, cw.Error()
}

// countingWriter tracks bytes written so CSVWriter can satisfy the Writer
// contract through csv.Writer's buffering.
type countingWriter struct {
	w io.Writer
	n int
}

// Write forwards to the wrapped writer and counts bytes.
func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
