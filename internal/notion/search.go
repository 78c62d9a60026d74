package notion

import (
	"context"
	"net/http"

	"github.com/notionaudit/notionaudit/internal/model"
)

// searchRequest is the body of a paged discovery call.
type searchRequest struct {
	Filter      searchFilter `json:"filter"`
	PageSize    int          `json:"page_size"`
	StartCursor string       `json:"start_cursor,omitempty"`
}

// searchFilter restricts discovery to one object type.
type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// searchResponse is one page of discovery results.
type searchResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// ListAllPages discovers all pages the integration can see, following the
// continuation cursor until the service reports no further results.
//
// Failure policy: a failed discovery call halts pagination immediately and
// returns whatever was accumulated so far together with the error. Callers
// are expected to keep the partial results; losing a later batch does not
// invalidate the earlier ones.
func (c *Client) ListAllPages(ctx context.Context) ([]model.PageStub, error) {
	stubs := make([]model.PageStub, 0, c.pageSize)
	cursor := ""

	for {
		req := searchRequest{
			Filter:      searchFilter{Property: "object", Value: "page"},
			PageSize:    c.pageSize,
			StartCursor: cursor,
		}

		var resp searchResponse
		if err := c.do(ctx, http.MethodPost, "/search", req, &resp); err != nil {
			c.logger.Warn("page discovery halted",
				"accumulated", len(stubs),
				"error", err,
			)
			return stubs, err
		}

		for _, result := range resp.Results {
			stubs = append(stubs, model.PageStub{ID: result.ID})
		}

		c.logger.Debug("discovery batch received",
			"batch", len(resp.Results),
			"total", len(stubs),
			"hasMore", resp.HasMore,
		)

		if !resp.HasMore {
			return stubs, nil
		}
		cursor = resp.NextCursor
	}
}
