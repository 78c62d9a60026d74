package model

// Label names one heuristic signal suggesting a page might be publicly
// reachable. Labels are non-authoritative by construction: the API exposes
// no direct sharing flag, so the audit combines weak signals instead.
type Label string

const (
	// LabelExplicitPublicURL fires when the page carries a dedicated,
	// non-empty publicly-accessible URL field.
	LabelExplicitPublicURL Label = "explicit public URL present"

	// LabelURLPattern fires when the page's canonical URL lacks the
	// substrings conventionally found in private or workspace-scoped links.
	LabelURLPattern Label = "URL pattern suggests public exposure"

	// LabelReachable fires when an unauthenticated probe of the page URL
	// succeeds without hitting a sign-in wall. The probe is an opt-in
	// extension and is not part of the default pipeline.
	LabelReachable Label = "reachable without authentication"
)

// JoinLabels renders a label set as a single delimited string for tabular
// output.
func JoinLabels(labels []Label, sep string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return string(labels[0])
	}

	out := string(labels[0])
	for _, l := range labels[1:] {
		out += sep + string(l)
	}
	return out
}
