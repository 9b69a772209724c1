package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/policy"
)

// RSSIndex is the alternative news index built on publisher RSS feeds, for
// deployments that cannot reach the external index. Feed URLs are configured
// per domain, unknown domains fall back to the conventional /rss path.
type RSSIndex struct {
	parser *gofeed.Parser
	feeds  map[string]string
}

// NewRSSIndex creates an RSS-backed news index. The feeds map keys are
// domains, values are their feed URLs, and may be nil.
func NewRSSIndex(feeds map[string]string) *RSSIndex {
	if feeds == nil {
		feeds = make(map[string]string)
	}
	return &RSSIndex{
		parser: gofeed.NewParser(),
		feeds:  feeds,
	}
}

// FetchDomain fetches the domain's feed and returns the entries published
// within the window as metadata records
func (r *RSSIndex) FetchDomain(ctx context.Context, dom string, window time.Duration) ([]*domain.Article, error) {
	feedURL, ok := r.feeds[dom]
	if !ok {
		feedURL = fmt.Sprintf("https://%s/rss", dom)
	}

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-window)

	articles := make([]*domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		published := now
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed.UTC()
		}
		if published.Before(cutoff) {
			continue
		}

		a := &domain.Article{
			URL:           item.Link,
			Title:         item.Title,
			Text:          item.Content,
			Domain:        dom,
			Language:      policy.InferLanguage(dom, item.Title+" "+item.Description),
			SourceCountry: policy.InferCountry(dom),
			DatePublish:   published.Format("2006-01-02 15:04:05"),
			DateDownload:  now,
			FetchSource:   "rss",
		}
		articles = append(articles, a)
	}
	return articles, nil
}
