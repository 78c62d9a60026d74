package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/notionaudit/notionaudit/internal/model"
)

// testReport builds a report with one high and one medium entry.
func testReport() *model.Report {
	records := []model.PageRecord{
		{
			ID:             "page-1",
			Title:          "Launch Plan",
			URL:            "https://www.notion.so/team/Launch-Plan-page1",
			PublicURL:      "https://team.notion.site/Launch-Plan-page1",
			LastEditedTime: "2026-02-03T04:05:06.000Z",
			PublicIndicators: []model.Label{
				model.LabelExplicitPublicURL,
				model.LabelURLPattern,
			},
		},
		{
			ID:               "page-2",
			Title:            "Meeting Notes",
			URL:              "https://www.notion.so/team/Meeting-Notes-page2",
			LastEditedTime:   "2026-03-04T05:06:07.000Z",
			PublicIndicators: []model.Label{model.LabelURLPattern},
		},
		{
			ID:    "page-3",
			Title: "Private Draft",
			URL:   "https://www.notion.so/private/Draft-page3",
		},
	}
	return model.BuildReport(records, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
}

// emptyReport builds a report over a clean workspace.
func emptyReport() *model.Report {
	return model.BuildReport(nil, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
}

// TestJSONWriter tests the structured JSON export.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("field names match the report schema", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(testReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		for _, key := range []string{
			"scan_timestamp",
			"total_pages_scanned",
			"potential_public_pages",
			"risk_summary",
			"security_recommendations",
		} {
			if _, ok := decoded[key]; !ok {
				t.Errorf("expected top-level key %q", key)
			}
		}

		if got := decoded["total_pages_scanned"].(float64); got != 3 {
			t.Errorf("expected 3 pages scanned, got %v", got)
		}

		pages := decoded["potential_public_pages"].([]any)
		if len(pages) != 2 {
			t.Fatalf("expected 2 flagged pages, got %d", len(pages))
		}
		first := pages[0].(map[string]any)
		if first["risk_level"] != "high" {
			t.Errorf("expected risk_level high, got %v", first["risk_level"])
		}
		if first["page_id"] != "page-1" {
			t.Errorf("expected page_id page-1, got %v", first["page_id"])
		}
	})

	t.Run("pretty print indents and ends with newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "\n  \"") {
			t.Error("expected indented output")
		}
		if !strings.HasSuffix(out, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("public_url omitted when empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Pages []map[string]any `json:"potential_public_pages"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if _, ok := decoded.Pages[0]["public_url"]; !ok {
			t.Error("expected public_url on the high entry")
		}
		if _, ok := decoded.Pages[1]["public_url"]; ok {
			t.Error("expected public_url omitted on the medium entry")
		}
	})
}

// TestCSVWriter tests the tabular export.
func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("header plus one row per entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf).Write(testReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d rows", len(rows))
		}

		wantHeader := []string{"Title", "URL", "Risk Level", "Public Indicators", "Last Edited Time"}
		for i, col := range wantHeader {
			if rows[0][i] != col {
				t.Errorf("expected header column %d to be %q, got %q", i, col, rows[0][i])
			}
		}

		if rows[1][0] != "Launch Plan" || rows[1][2] != "high" {
			t.Errorf("unexpected first row %v", rows[1])
		}
		if !strings.Contains(rows[1][3], string(model.LabelExplicitPublicURL)) {
			t.Errorf("expected joined indicators in row, got %q", rows[1][3])
		}
		if rows[2][2] != "medium" {
			t.Errorf("expected medium risk in second row, got %q", rows[2][2])
		}
	})

	t.Run("empty report yields header only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(emptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("expected header only, got %d rows", len(rows))
		}
	})
}

// TestMarkdownWriter tests the Markdown export.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("flagged report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()

		for _, want := range []string{
			"# Notion Public Page Audit",
			"## Risk Summary",
			"## Flagged Pages",
			"## Recommendations",
			"Launch Plan",
			"mermaid",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("clean report carries no chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(emptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()

		if strings.Contains(out, "mermaid") {
			t.Error("expected no chart for an empty report")
		}
		if !strings.Contains(out, "No pages were flagged.") {
			t.Error("expected the no-findings message")
		}
	})
}

// TestSimpleWriter tests the terminal summary.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("flagged report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(testReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}
		out := buf.String()

		for _, want := range []string{
			"NOTION PUBLIC PAGE AUDIT",
			"Pages Analyzed: 3",
			"Flagged Pages:  2",
			"High:   1 page(s)",
			"Launch Plan",
			"WARNING: high-risk pages detected.",
			"1. " + model.RecommendationHighPriority,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("clean report has no warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(emptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()

		if strings.Contains(out, "WARNING") {
			t.Error("expected no warning for a clean report")
		}
		if !strings.Contains(out, "Flagged Pages:  0") {
			t.Error("expected zero flagged pages in the summary")
		}
	})

	t.Run("entry list is capped", func(t *testing.T) {
		t.Parallel()

		records := make([]model.PageRecord, 8)
		for i := range records {
			records[i] = model.PageRecord{
				ID:               string(rune('a' + i)),
				Title:            "Page " + string(rune('a'+i)),
				URL:              "https://www.notion.so/team/page",
				PublicIndicators: []model.Label{model.LabelURLPattern},
			}
		}
		report := model.BuildReport(records, time.Now())

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Flagged Pages (top 5):") {
			t.Error("expected the list to be capped at 5 entries")
		}
	})
}

// failingWriter always fails.
type failingWriter struct{}

func (failingWriter) Write(_ *model.Report) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests fan-out writing.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var jsonBuf, csvBuf bytes.Buffer
		mw := NewMultiWriter(NewJSONWriter(&jsonBuf), NewCSVWriter(&csvBuf))

		n, err := mw.Write(testReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != jsonBuf.Len()+csvBuf.Len() {
			t.Errorf("expected total %d bytes, got %d", jsonBuf.Len()+csvBuf.Len(), n)
		}
		if jsonBuf.Len() == 0 || csvBuf.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewJSONWriter(&buf))

		if _, err := mw.Write(testReport()); err == nil {
			t.Fatal("expected an error")
		}
		if buf.Len() != 0 {
			t.Error("expected later writers to be skipped after a failure")
		}
	})
}
