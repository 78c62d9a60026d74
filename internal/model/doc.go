// Package model defines the core data structures used throughout notionaudit.
//
// This package contains the following main types:
//   - PageStub: Minimal handle returned by workspace discovery
//   - PageRecord: Full page metadata, the unit of analysis
//   - Label: A single heuristic public-exposure signal
//   - RiskTier: Coarse risk classification derived from indicator count
//   - Report: The aggregated audit result
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (notion, heuristic, pipeline, report) need
// to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
