package model

// PageStub is the minimal page handle returned by workspace discovery.
// It carries just enough to drive the detail fetch and is consumed
// immediately by that step.
type PageStub struct {
	// ID is the page identifier (UUID with dashes).
	ID string `json:"id"`
}

// UntitledPage is the title assigned to pages whose title property is
// empty or missing.
const UntitledPage = "Untitled"

// PageRecord is the durable unit of analysis for one page.
// It is built once per successfully fetched page and must not be mutated
// after it enters a Report.
//
// Design decision: We keep the timestamps as the RFC 3339 strings the API
// returns rather than parsing them into time.Time. The audit never does
// date arithmetic on them, and round-tripping them verbatim keeps the
// exported report byte-identical to what the API said.
type PageRecord struct {
	// ID is the page identifier.
	ID string `json:"page_id"`

	// Title is the page title extracted from the title-bearing property.
	// Falls back to UntitledPage when no title is present.
	Title string `json:"title"`

	// URL is the canonical workspace URL of the page.
	URL string `json:"url"`

	// PublicURL is the dedicated publicly-accessible URL, if the page has
	// one. Empty for pages without an explicit public link.
	PublicURL string `json:"public_url,omitempty"`

	// CreatedTime is the page creation timestamp as returned by the API.
	CreatedTime string `json:"created_time"`

	// LastEditedTime is the last-edit timestamp as returned by the API.
	LastEditedTime string `json:"last_edited_time"`

	// CreatedByID is the identifier of the user who created the page.
	CreatedByID string `json:"created_by"`

	// ParentType is the type of the page's parent (workspace, page_id,
	// database_id).
	ParentType string `json:"parent_type"`

	// Archived reports whether the page is archived.
	Archived bool `json:"archived"`

	// PublicIndicators is the set of heuristic signals suggesting the page
	// may be publicly reachable. Empty means the page is not flagged.
	PublicIndicators []Label `json:"public_indicators"`
}

// HasIndicators reports whether any public-exposure signal fired for the page.
func (r *PageRecord) HasIndicators() bool {
	return len(r.PublicIndicators) > 0
}
