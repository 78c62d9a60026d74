// Package pipeline orchestrates the audit as an ordered sequence of steps:
// discover, fetch, analyze, aggregate.
//
// Steps share a single State that accumulates page stubs, fetched records,
// and finally the report. Execution is strictly sequential; the only
// concurrency is inside the opt-in reachability probe, which merges its
// results back before classification.
//
// Failure policy: API failures are recovered locally (partial discovery
// results are kept, unfetchable pages are skipped and logged) so a long
// scan survives individual bad responses. Only cancellation and unexpected
// errors abort the run.
package pipeline
