// Package notion implements the minimal Notion API surface the audit needs:
// paged search over page-type objects and single-page detail retrieval.
//
// Every request carries the bearer credential and a fixed API-version
// marker. Requests are paced through an injectable Pacer policy so a
// sequential scan stays under the service's rate limit.
//
// The package exposes a closed error taxonomy: a non-success response
// surfaces as *APIError, which callers inspect to decide between keeping
// partial results (discovery) and skipping a page (detail fetch).
package notion
