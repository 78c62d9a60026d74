package notion

import (
	"context"
	"net/http"
	"strings"

	"github.com/notionaudit/notionaudit/internal/model"
)

// pageResponse is the page metadata returned by the detail endpoint.
// Only the fields the audit analyzes are decoded.
type pageResponse struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	PublicURL      string `json:"public_url"`
	CreatedTime    string `json:"created_time"`
	LastEditedTime string `json:"last_edited_time"`
	CreatedBy      struct {
		ID string `json:"id"`
	} `json:"created_by"`
	Parent struct {
		Type string `json:"type"`
	} `json:"parent"`
	Archived   bool                    `json:"archived"`
	Properties map[string]pageProperty `json:"properties"`
}

// pageProperty is a single property block. The title lives in whichever
// property has type "title"; its name varies per page.
type pageProperty struct {
	Type  string     `json:"type"`
	Title []richText `json:"title"`
}

// richText is one fragment of a rich text value.
type richText struct {
	PlainText string `json:"plain_text"`
}

// FetchPage resolves a page identifier to its full metadata record.
// A non-success response is returned as *APIError and no record is built;
// callers skip the page. There is no retry.
func (c *Client) FetchPage(ctx context.Context, id string) (*model.PageRecord, error) {
	var resp pageResponse
	if err := c.do(ctx, http.MethodGet, "/pages/"+id, nil, &resp); err != nil {
		return nil, err
	}

	return &model.PageRecord{
		ID:             resp.ID,
		Title:          extractTitle(resp.Properties),
		URL:            resp.URL,
		PublicURL:      resp.PublicURL,
		CreatedTime:    resp.CreatedTime,
		LastEditedTime: resp.LastEditedTime,
		CreatedByID:    resp.CreatedBy.ID,
		ParentType:     resp.Parent.Type,
		Archived:       resp.Archived,
	}, nil
}

// extractTitle finds the title-bearing property and joins its plain-text
// fragments. Pages without a title resolve to model.UntitledPage.
func extractTitle(properties map[string]pageProperty) string {
	for _, prop := range properties {
		if prop.Type != "title" {
			continue
		}

		var sb strings.Builder
		for _, fragment := range prop.Title {
			sb.WriteString(fragment.PlainText)
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}

	return model.UntitledPage
}
