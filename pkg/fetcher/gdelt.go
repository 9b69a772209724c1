package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/policy"
)

const gdeltBaseURL = "https://api.gdeltproject.org/api/v2/doc/doc"

// GDELTIndex queries the GDELT DOC 2.0 API for recent articles of a domain
type GDELTIndex struct {
	client     *http.Client
	baseURL    string
	userAgent  string
	maxRecords int
}

// NewGDELTIndex creates a GDELT-backed news index
func NewGDELTIndex(timeout time.Duration, userAgent string) *GDELTIndex {
	return &GDELTIndex{
		client:     &http.Client{Timeout: timeout},
		baseURL:    gdeltBaseURL,
		userAgent:  userAgent,
		maxRecords: 250,
	}
}

// gdeltResponse is the ArtList JSON shape
type gdeltResponse struct {
	Articles []gdeltArticle `json:"articles"`
}

type gdeltArticle struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	SeenDate      string `json:"seendate"`
	Domain        string `json:"domain"`
	Language      string `json:"language"`
	SourceCountry string `json:"sourcecountry"`
}

// FetchDomain returns metadata records for articles the index saw on the
// given domain within the time window. Records carry no body text, that is
// the extractor's job.
func (g *GDELTIndex) FetchDomain(ctx context.Context, dom string, window time.Duration) ([]*domain.Article, error) {
	minutes := int(window.Minutes())
	if minutes < 15 {
		minutes = 15 // GDELT rejects very short timespans
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("domain:%s", dom))
	params.Set("mode", "ArtList")
	params.Set("format", "json")
	params.Set("maxrecords", fmt.Sprintf("%d", g.maxRecords))
	params.Set("timespan", fmt.Sprintf("%dmin", minutes))
	params.Set("sort", "datedesc")

	reqURL := g.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query index for %s: %w", dom, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from index for %s", resp.StatusCode, dom)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 20*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read index response for %s: %w", dom, err)
	}

	var parsed gdeltResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse index response for %s: %w", dom, err)
	}

	now := time.Now().UTC()
	articles := make([]*domain.Article, 0, len(parsed.Articles))
	for _, rec := range parsed.Articles {
		if rec.URL == "" {
			continue
		}
		a := &domain.Article{
			URL:           rec.URL,
			Title:         rec.Title,
			Domain:        rec.Domain,
			Language:      rec.Language,
			SourceCountry: rec.SourceCountry,
			DatePublish:   parseSeenDate(rec.SeenDate),
			DateDownload:  now,
			FetchSource:   "gdelt",
		}
		if a.Domain == "" {
			a.Domain = dom
		}
		if a.SourceCountry == "" {
			a.SourceCountry = policy.InferCountry(a.Domain)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// parseSeenDate converts the index timestamp (20250601T101500Z) into the
// stored publish date format. An unparseable value falls back to the raw
// string so the record is not lost.
func parseSeenDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("20060102T150405Z", s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
