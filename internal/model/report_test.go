package model

import (
	"testing"
	"time"
)

// record builds a PageRecord with the given indicator set.
func record(id string, indicators ...Label) PageRecord {
	return PageRecord{
		ID:               id,
		Title:            "Page " + id,
		URL:              "https://www.notion.so/team/" + id,
		PublicIndicators: indicators,
	}
}

// TestBuildReport tests report aggregation across representative workspaces.
func TestBuildReport(t *testing.T) {
	t.Parallel()

	scannedAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("mixed workspace", func(t *testing.T) {
		t.Parallel()

		records := []PageRecord{
			record("aaa", LabelExplicitPublicURL, LabelURLPattern),
			record("bbb", LabelURLPattern),
			record("ccc"),
		}

		report := BuildReport(records, scannedAt)

		if report.TotalScanned != 3 {
			t.Errorf("expected 3 pages scanned, got %d", report.TotalScanned)
		}
		if len(report.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(report.Entries))
		}
		if report.Entries[0].ID != "aaa" || report.Entries[0].RiskLevel != TierHigh {
			t.Errorf("expected first entry aaa/high, got %s/%s",
				report.Entries[0].ID, report.Entries[0].RiskLevel)
		}
		if report.Entries[1].ID != "bbb" || report.Entries[1].RiskLevel != TierMedium {
			t.Errorf("expected second entry bbb/medium, got %s/%s",
				report.Entries[1].ID, report.Entries[1].RiskLevel)
		}
		if report.RiskSummary.High != 1 || report.RiskSummary.Medium != 1 {
			t.Errorf("expected summary high=1 medium=1, got high=%d medium=%d",
				report.RiskSummary.High, report.RiskSummary.Medium)
		}
		if !report.ScanTimestamp.Equal(scannedAt) {
			t.Errorf("expected timestamp %v, got %v", scannedAt, report.ScanTimestamp)
		}
	})

	t.Run("clean workspace has no entries", func(t *testing.T) {
		t.Parallel()

		records := []PageRecord{record("aaa"), record("bbb")}
		report := BuildReport(records, scannedAt)

		if report.TotalScanned != 2 {
			t.Errorf("expected 2 pages scanned, got %d", report.TotalScanned)
		}
		if len(report.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(report.Entries))
		}
		if report.RiskSummary != (RiskSummary{}) {
			t.Errorf("expected empty summary, got %+v", report.RiskSummary)
		}
	})

	t.Run("empty workspace", func(t *testing.T) {
		t.Parallel()

		report := BuildReport(nil, scannedAt)

		if report.TotalScanned != 0 {
			t.Errorf("expected 0 pages scanned, got %d", report.TotalScanned)
		}
		if report.Entries == nil {
			t.Error("expected entries to be non-nil for JSON output")
		}
		if len(report.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(report.Entries))
		}
	})

	t.Run("low bucket stays zero", func(t *testing.T) {
		t.Parallel()

		records := []PageRecord{
			record("aaa", LabelExplicitPublicURL),
			record("bbb", LabelExplicitPublicURL, LabelURLPattern, LabelReachable),
		}
		report := BuildReport(records, scannedAt)

		if report.RiskSummary.Low != 0 {
			t.Errorf("expected low=0, got %d", report.RiskSummary.Low)
		}
	})

	t.Run("entries never exceed total scanned", func(t *testing.T) {
		t.Parallel()

		records := []PageRecord{
			record("aaa", LabelExplicitPublicURL),
			record("bbb"),
		}
		report := BuildReport(records, scannedAt)

		if len(report.Entries) > report.TotalScanned {
			t.Errorf("entries (%d) exceed total scanned (%d)",
				len(report.Entries), report.TotalScanned)
		}
	})
}

// TestBuildReportRecommendations tests the conditional and baseline
// recommendation assembly.
func TestBuildReportRecommendations(t *testing.T) {
	t.Parallel()

	scannedAt := time.Now()
	baseline := len(BaselineRecommendations())

	tests := []struct {
		name      string
		records   []PageRecord
		wantCount int
		wantFirst string
	}{
		{
			name:      "no flagged pages yields baseline only",
			records:   []PageRecord{record("aaa")},
			wantCount: baseline,
			wantFirst: BaselineRecommendations()[0],
		},
		{
			name:      "medium only prepends secondary message",
			records:   []PageRecord{record("aaa", LabelURLPattern)},
			wantCount: baseline + 1,
			wantFirst: RecommendationMediumPriority,
		},
		{
			name: "high and medium prepend both in priority order",
			records: []PageRecord{
				record("aaa", LabelExplicitPublicURL, LabelURLPattern),
				record("bbb", LabelURLPattern),
			},
			wantCount: baseline + 2,
			wantFirst: RecommendationHighPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := BuildReport(tt.records, scannedAt)
			if len(report.Recommendations) != tt.wantCount {
				t.Fatalf("expected %d recommendations, got %d",
					tt.wantCount, len(report.Recommendations))
			}
			if report.Recommendations[0] != tt.wantFirst {
				t.Errorf("expected first recommendation %q, got %q",
					tt.wantFirst, report.Recommendations[0])
			}
		})
	}
}

// TestBaselineRecommendationsCopy tests that callers cannot mutate the
// shared baseline set.
func TestBaselineRecommendationsCopy(t *testing.T) {
	t.Parallel()

	first := BaselineRecommendations()
	first[0] = "mutated"

	second := BaselineRecommendations()
	if second[0] == "mutated" {
		t.Error("expected BaselineRecommendations to return a copy")
	}
}

// TestHasIndicators tests the flagged-page predicate.
func TestHasIndicators(t *testing.T) {
	t.Parallel()

	rec := record("aaa")
	if rec.HasIndicators() {
		t.Error("expected no indicators")
	}

	rec = record("bbb", LabelExplicitPublicURL)
	if !rec.HasIndicators() {
		t.Error("expected indicators to be present")
	}
}
