// Package heuristic derives public-exposure indicators from page metadata.
//
// The Notion API exposes no authoritative sharing flag, so the audit relies
// on the union of weak signals: an explicit public URL field, a URL pattern
// check, and an optional unauthenticated reachability probe. Each signal
// maps to one model.Label; classification downstream depends only on how
// many signals fired.
//
// The probe is deliberately not part of the default analysis. It issues
// real unauthenticated requests against the public site, so callers must
// enable it explicitly.
package heuristic
