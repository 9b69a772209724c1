// Package content fetches article pages and extracts their main text.
// Extraction runs a chain of strategies over the fetched HTML, from the most
// precise to the most forgiving, and stops at the first one that yields
// enough text.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
)

// extraction strategy names recorded with each article
const (
	MethodTrafilatura = "trafilatura"
	MethodReadability = "readability"
	MethodDOM         = "dom"
)

// Result holds the extracted text and the strategy that produced it
type Result struct {
	Text   string
	Method string
}

// HTTPExtractor extracts article content from URLs using a chain of
// extraction strategies over a single fetched page.
type HTTPExtractor struct {
	client        *http.Client
	userAgent     string
	minSufficient int
}

// NewHTTPExtractor creates a new content extractor. minSufficient is the text
// length at which a strategy's output is accepted without trying the next one.
func NewHTTPExtractor(timeout time.Duration, userAgent string, minSufficient int) *HTTPExtractor {
	return &HTTPExtractor{
		client:        &http.Client{Timeout: timeout},
		userAgent:     userAgent,
		minSufficient: minSufficient,
	}
}

// Extract retrieves the page at the given URL and runs the strategy chain
// over it. Returns the first sufficient result, or the longest non-empty one
// when no strategy reaches the sufficiency threshold.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*Result, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	body, err := e.fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	strategies := []struct {
		name string
		fn   func([]byte, *url.URL) (string, error)
	}{
		{MethodTrafilatura, extractTrafilatura},
		{MethodReadability, extractReadability},
		{MethodDOM, extractDOM},
	}

	var best *Result
	for _, s := range strategies {
		text, err := s.fn(body, parsedURL)
		if err != nil || text == "" {
			continue
		}
		text = FixMojibake(strings.TrimSpace(text))
		if len(text) >= e.minSufficient {
			return &Result{Text: text, Method: s.name}, nil
		}
		if best == nil || len(text) > len(best.Text) {
			best = &Result{Text: text, Method: s.name}
		}
	}

	if best != nil {
		return best, nil
	}
	return nil, fmt.Errorf("no content extracted from %s", urlStr)
}

// fetch retrieves the raw page with browser-like headers
func (e *HTTPExtractor) fetch(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", urlStr, err)
	}
	return body, nil
}

func extractTrafilatura(body []byte, pageURL *url.URL) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err != nil {
		return "", fmt.Errorf("trafilatura: %w", err)
	}
	if result == nil || result.ContentText == "" {
		return "", fmt.Errorf("trafilatura: no text content")
	}
	return result.ContentText, nil
}

func extractReadability(body []byte, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}
	if article.TextContent == "" {
		return "", fmt.Errorf("readability: no text content")
	}
	return article.TextContent, nil
}

// articleSelectors are tried in order by the DOM strategy before falling back
// to collecting all paragraphs
var articleSelectors = []string{
	"article", "main", "[role=main]", ".article-body", ".post-content",
	".entry-content", ".story-body", ".article__body",
}

func extractDOM(body []byte, _ *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	doc.Find("script, style, nav, header, footer, aside, form, noscript").Remove()

	for _, sel := range articleSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if text := collapseWhitespace(node.Text()); text != "" {
				return text, nil
			}
		}
	}

	// last resort: join all paragraphs
	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("dom: no text content")
	}
	return strings.Join(parts, "\n\n"), nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
