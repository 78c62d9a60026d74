package model

import "time"

// RiskEntry is a flagged page together with its assigned risk tier.
// Entries are created once during aggregation and never mutated afterwards.
type RiskEntry struct {
	PageRecord

	// RiskLevel is the tier assigned by Classify. Always medium or high;
	// zero-indicator pages never become entries.
	RiskLevel RiskTier `json:"risk_level"`
}

// RiskSummary counts flagged pages per tier.
// Low is structurally always zero under the current classification rule
// but stays in the schema for output compatibility.
type RiskSummary struct {
	High   int `json:"high_risk"`
	Medium int `json:"medium_risk"`
	Low    int `json:"low_risk"`
}

// Report is the aggregated result of one audit run.
//
// The JSON field names deliberately match the report schema this tool has
// always produced (total_pages_scanned, potential_public_pages, ...) so
// downstream consumers keep working.
type Report struct {
	// ScanTimestamp is when the audit ran.
	ScanTimestamp time.Time `json:"scan_timestamp"`

	// TotalScanned is the number of pages actually analyzed, i.e. pages for
	// which the detail fetch succeeded. Pages lost to fetch failures are not
	// counted, so this can be lower than the number discovered.
	TotalScanned int `json:"total_pages_scanned"`

	// Entries lists the flagged pages in the order they were analyzed.
	Entries []RiskEntry `json:"potential_public_pages"`

	// RiskSummary counts entries per tier.
	RiskSummary RiskSummary `json:"risk_summary"`

	// Recommendations holds remediation guidance: up to two conditional
	// messages depending on the summary, followed by the fixed baseline set.
	Recommendations []string `json:"security_recommendations"`
}

// Conditional remediation messages, prepended to the baseline set when the
// matching tier has at least one entry.
const (
	RecommendationHighPriority   = "[Top priority] Review the sharing settings of high-risk pages immediately."
	RecommendationMediumPriority = "[Secondary] Verify the access permissions of suspected pages."
)

// baselineRecommendations is the fixed standing guidance appended to every
// report, in this order.
var baselineRecommendations = []string{
	"Audit page sharing settings on a regular schedule.",
	"Manage pages containing sensitive information with particular care.",
	"Educate team members about page sharing settings.",
	"Review the list of public pages periodically and unpublish anything unnecessary.",
	"Apply appropriate access controls to important pages.",
}

// BaselineRecommendations returns a copy of the fixed standing guidance.
func BaselineRecommendations() []string {
	out := make([]string, len(baselineRecommendations))
	copy(out, baselineRecommendations)
	return out
}

// BuildReport folds analyzed page records into a Report.
// A record becomes an entry iff its indicator set is non-empty; the matching
// tier counter is incremented as entries are appended.
func BuildReport(records []PageRecord, scannedAt time.Time) *Report {
	report := &Report{
		ScanTimestamp: scannedAt,
		TotalScanned:  len(records),
		Entries:       make([]RiskEntry, 0, len(records)),
	}

	for _, rec := range records {
		tier, flagged := Classify(rec.PublicIndicators)
		if !flagged {
			continue
		}

		report.Entries = append(report.Entries, RiskEntry{
			PageRecord: rec,
			RiskLevel:  tier,
		})

		switch tier {
		case TierHigh:
			report.RiskSummary.High++
		case TierMedium:
			report.RiskSummary.Medium++
		case TierLow:
			report.RiskSummary.Low++
		}
	}

	report.Recommendations = buildRecommendations(report.RiskSummary)
	return report
}

// buildRecommendations assembles the recommendation list for the given
// summary: conditional messages first (high before medium), then the
// baseline set.
func buildRecommendations(summary RiskSummary) []string {
	recs := make([]string, 0, len(baselineRecommendations)+2)

	if summary.High > 0 {
		recs = append(recs, RecommendationHighPriority)
	}
	if summary.Medium > 0 {
		recs = append(recs, RecommendationMediumPriority)
	}

	return append(recs, baselineRecommendations...)
}
