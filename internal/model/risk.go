package model

// RiskTier is the coarse risk classification assigned to a flagged page.
//
// Design decision: We use string constants rather than iota-based integers
// because the tier is serialized directly into the JSON and CSV reports,
// and the on-disk values ("high", "medium") are part of the output contract.
type RiskTier string

const (
	// TierLow is reserved in the summary schema for output compatibility.
	// The current classification rule never assigns it: pages with zero
	// indicators are excluded from the report entirely, so every entry has
	// at least one indicator and classifies as medium or high. Callers must
	// not assume this tier is reachable.
	TierLow RiskTier = "low"

	// TierMedium is assigned when exactly one public-exposure indicator fired.
	TierMedium RiskTier = "medium"

	// TierHigh is assigned when two or more indicators fired.
	TierHigh RiskTier = "high"
)

// Classify maps an indicator set to a risk tier.
// It returns false when the set is empty, meaning the page is excluded
// from the report rather than classified.
func Classify(indicators []Label) (RiskTier, bool) {
	switch {
	case len(indicators) == 0:
		return "", false
	case len(indicators) > 1:
		return TierHigh, true
	default:
		return TierMedium, true
	}
}
