package heuristic

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 10 * time.Second

// maxProbeBodySize limits how much of a probed page is read for marker
// detection.
const maxProbeBodySize = 1 * 1024 * 1024 // 1 MB

// signInMarkers are phrases whose presence in the page text means the
// request hit a sign-in wall rather than the page content.
var signInMarkers = []string{"sign in", "login"}

// Prober tests whether a page URL is reachable without credentials.
// A page counts as reachable when an unauthenticated GET returns 200 and
// the rendered text contains no sign-in markers. This cannot prove the
// page is public, only that nothing obviously blocked the request.
type Prober struct {
	// client performs the probe requests. Carries no credentials.
	client *http.Client

	// logger for structured logging.
	logger *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeTimeout bounds each probe request.
func WithProbeTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.client.Timeout = d
	}
}

// WithProbeHTTPClient replaces the probe HTTP client entirely.
// The client must not attach credentials to requests.
func WithProbeHTTPClient(hc *http.Client) ProberOption {
	return func(p *Prober) {
		p.client = hc
	}
}

// WithProbeLogger sets a custom logger for the prober.
func WithProbeLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a Prober with a bounded default timeout.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		client: &http.Client{Timeout: DefaultProbeTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Reachable probes pageURL without credentials.
// Any error along the way (network, timeout, parse) means "not reachable";
// probe failures are never propagated.
func (p *Prober) Reachable(ctx context.Context, pageURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		p.logger.Debug("probe request build failed", "url", pageURL, "error", err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("probe request failed", "url", pageURL, "error", err)
		return false
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode != http.StatusOK {
		return false
	}

	text, err := pageText(io.LimitReader(resp.Body, maxProbeBodySize))
	if err != nil {
		p.logger.Debug("probe body parse failed", "url", pageURL, "error", err)
		return false
	}

	for _, marker := range signInMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}

	return true
}

// pageText extracts the lowercased visible text of an HTML document.
// Script and style contents are skipped so a bundled "login" identifier in
// JavaScript does not count as a sign-in wall.
func pageText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.ToLower(sb.String()), nil
}
