package notion

import "fmt"

// APIError describes a non-success response from the Notion API.
// It carries enough context to log the failure without retrying: the audit
// recovers locally from API errors (partial discovery results are kept,
// unfetchable pages are skipped) rather than aborting the run.
type APIError struct {
	// Endpoint is the API path that failed (e.g. "/search", "/pages/{id}").
	Endpoint string

	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Message is the error message from the response body, if any.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notion: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion: %s returned status %d", e.Endpoint, e.StatusCode)
}
