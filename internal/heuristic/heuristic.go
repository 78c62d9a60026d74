package heuristic

import (
	"strings"

	"github.com/notionaudit/notionaudit/internal/model"
)

// privateURLMarkers are substrings conventionally found in private or
// workspace-scoped links. A canonical URL containing none of them is
// treated as a weak signal of public exposure.
var privateURLMarkers = []string{"private", "workspace"}

// Analyzer derives public-exposure indicators from page metadata.
// It is stateless and safe for reuse across pages.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Indicators computes the metadata-derived indicator set for a page.
// Both signals may fire independently; the result is their union, in a
// fixed order (explicit URL first). The reachability signal is not part of
// this set; see Prober.
func (a *Analyzer) Indicators(rec *model.PageRecord) []model.Label {
	var labels []model.Label

	if rec.PublicURL != "" {
		labels = append(labels, model.LabelExplicitPublicURL)
	}

	if rec.URL != "" && !containsAnyMarker(rec.URL) {
		labels = append(labels, model.LabelURLPattern)
	}

	return labels
}

// containsAnyMarker reports whether the URL carries any private-link marker.
func containsAnyMarker(url string) bool {
	for _, marker := range privateURLMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}
