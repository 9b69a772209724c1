package fetcher

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/newswatch/pkg/config"
	"github.com/askeland/newswatch/pkg/content"
	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/fetcher/mocks"
	"github.com/askeland/newswatch/pkg/policy"
)

func testFetchConfig() config.FetchConfig {
	return config.FetchConfig{
		Window:            2 * time.Hour,
		MinArticleLength:  50,
		MaxDomainFailures: 2,
		RateLimit:         time.Nanosecond,
	}
}

// emptyIndex returns no hits for every domain
func emptyIndex() *mocks.NewsIndexMock {
	return &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, _ string, _ time.Duration) ([]*domain.Article, error) {
			return nil, nil
		},
	}
}

func longText() string {
	return strings.Repeat("Article body text with plenty of substance. ", 5)
}

func TestFetcher_Fetch(t *testing.T) {
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, dom string, _ time.Duration) ([]*domain.Article, error) {
			switch dom {
			case "bbc.com":
				return []*domain.Article{
					{URL: "https://bbc.com/news/1", Title: "Fresh story", Domain: "bbc.com", Language: "English"},
					{URL: "https://bbc.com/news/known", Title: "Already stored", Domain: "bbc.com", Language: "English"},
					{URL: "https://bbc.com/news/2", Title: "French story", Domain: "bbc.com", Language: "French"},
				}, nil
			case "dr.dk":
				return []*domain.Article{
					// Danish domain override keeps this despite the odd language code
					{URL: "https://dr.dk/nyheder/1", Title: "Dansk nyhed", Domain: "dr.dk", Language: "Norwegian"},
				}, nil
			}
			return nil, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Text: longText(), Method: content.MethodTrafilatura}, nil
		},
	}

	f := New(index, extractor, testFetchConfig())
	f.sleep = func(time.Duration) {}

	known := map[string]struct{}{"https://bbc.com/news/known": {}}
	articles, report := f.Fetch(context.Background(), time.Time{}, known)

	require.Len(t, articles, 2)

	byURL := map[string]*domain.Article{}
	for _, a := range articles {
		byURL[a.URL] = a
	}
	require.Contains(t, byURL, "https://bbc.com/news/1")
	require.Contains(t, byURL, "https://dr.dk/nyheder/1")

	// enrichment happened
	assert.Equal(t, "journalism, news and media", byURL["https://bbc.com/news/1"].DomainCategory)
	assert.Equal(t, content.MethodTrafilatura, byURL["https://bbc.com/news/1"].ExtractionMethod)
	assert.Equal(t, "da", byURL["https://dr.dk/nyheder/1"].Language, "Danish domain overrides index language")

	// known URL was never extracted
	for _, call := range extractor.ExtractCalls() {
		assert.NotEqual(t, "https://bbc.com/news/known", call.URLStr)
	}

	assert.Equal(t, 4, report.Fetched)
	assert.Zero(t, report.FailedFetching)
	assert.Positive(t, report.Duration)

	// every allow-listed domain was queried, Danish ones first
	calls := index.FetchDomainCalls()
	assert.Len(t, calls, len(policy.AllowedDomains()))
	assert.Equal(t, policy.AllowedDomains()[0], calls[0].Dom)
}

func TestFetcher_Fetch_DomainFailureLimit(t *testing.T) {
	hits := make([]*domain.Article, 6)
	for i := range hits {
		hits[i] = &domain.Article{
			URL:      fmt.Sprintf("https://bbc.com/news/%d", i),
			Title:    fmt.Sprintf("Story %d", i),
			Domain:   "bbc.com",
			Language: "English",
		}
	}
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, dom string, _ time.Duration) ([]*domain.Article, error) {
			if dom == "bbc.com" {
				return hits, nil
			}
			return nil, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return nil, fmt.Errorf("boom")
		},
	}

	f := New(index, extractor, testFetchConfig())
	f.sleep = func(time.Duration) {}

	articles, report := f.Fetch(context.Background(), time.Time{}, nil)

	assert.Empty(t, articles)
	// the failure limit stops extraction attempts mid-domain
	assert.Len(t, extractor.ExtractCalls(), 2)
	assert.Equal(t, 2, report.FailedFetching)
	assert.Contains(t, report.FailedDomains, "bbc.com")
	assert.GreaterOrEqual(t, report.FailureCounts["bbc.com"], 2)
}

func TestFetcher_Fetch_IndexErrorsAndEmptyDomains(t *testing.T) {
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, dom string, _ time.Duration) ([]*domain.Article, error) {
			if dom == "bbc.com" {
				return nil, fmt.Errorf("index down")
			}
			return nil, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Text: longText(), Method: content.MethodDOM}, nil
		},
	}

	f := New(index, extractor, testFetchConfig())
	f.sleep = func(time.Duration) {}

	articles, report := f.Fetch(context.Background(), time.Time{}, nil)

	assert.Empty(t, articles)
	assert.Zero(t, report.Fetched)
	// every domain failed once: bbc with a fetch error, the rest finding
	// nothing, none reached the skip limit of 2
	assert.Empty(t, report.FailedDomains)
	assert.Equal(t, 1, report.FailureCounts["bbc.com"])
	assert.Positive(t, report.TotalFailures)
	assert.Equal(t, len(policy.AllowedDomains()), report.Domains)
	assert.Equal(t, 1, report.Unreachable)
	assert.False(t, report.IndexDown(), "quiet domains are not an index outage")
}

func TestFetcher_Fetch_IndexDown(t *testing.T) {
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, _ string, _ time.Duration) ([]*domain.Article, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	f := New(index, &mocks.ExtractorMock{}, testFetchConfig())
	f.sleep = func(time.Duration) {}

	articles, report := f.Fetch(context.Background(), time.Time{}, nil)

	assert.Empty(t, articles)
	assert.Equal(t, report.Domains, report.Unreachable)
	assert.True(t, report.IndexDown())
}

func TestFetcher_Fetch_Quotas(t *testing.T) {
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, dom string, _ time.Duration) ([]*domain.Article, error) {
			return []*domain.Article{
				{
					URL:      "https://" + dom + "/article",
					Title:    "Story on " + dom,
					Domain:   dom,
					Language: "English",
					Text:     longText(),
				},
			}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Text: longText(), Method: content.MethodDOM}, nil
		},
	}

	cfg := testFetchConfig()
	cfg.DanishQuota = 2
	cfg.EnglishQuota = 3
	f := New(index, extractor, cfg)
	f.sleep = func(time.Duration) {}

	articles, _ := f.Fetch(context.Background(), time.Time{}, nil)
	assert.Len(t, articles, 5, "quotas cap each language class")
}

func TestFetcher_EffectiveWindow(t *testing.T) {
	f := New(emptyIndex(), &mocks.ExtractorMock{}, testFetchConfig())

	t.Run("no history keeps configured window", func(t *testing.T) {
		assert.Equal(t, 2*time.Hour, f.effectiveWindow(time.Time{}))
	})

	t.Run("recent history keeps configured window", func(t *testing.T) {
		assert.Equal(t, 2*time.Hour, f.effectiveWindow(time.Now().Add(-30*time.Minute)))
	})

	t.Run("gap widens the window", func(t *testing.T) {
		got := f.effectiveWindow(time.Now().Add(-6 * time.Hour))
		assert.Greater(t, got, 2*time.Hour)
		assert.LessOrEqual(t, got, 6*time.Hour+time.Minute)
	})

	t.Run("catch-up is capped at a day", func(t *testing.T) {
		assert.Equal(t, 24*time.Hour, f.effectiveWindow(time.Now().Add(-100*time.Hour)))
	})
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, _ string, _ time.Duration) ([]*domain.Article, error) {
			calls++
			if calls == 3 {
				cancel()
			}
			return nil, nil
		},
	}
	f := New(index, &mocks.ExtractorMock{}, testFetchConfig())
	f.sleep = func(time.Duration) {}

	articles, _ := f.Fetch(ctx, time.Time{}, nil)
	assert.Empty(t, articles)
	assert.Equal(t, 3, calls, "loop stops after cancellation")
}

func TestFetcher_Fetch_ShortExtractionTripsDomain(t *testing.T) {
	hits := make([]*domain.Article, 6)
	for i := range hits {
		hits[i] = &domain.Article{
			URL:      fmt.Sprintf("https://bbc.com/news/stub%d", i),
			Title:    fmt.Sprintf("Stub %d", i),
			Domain:   "bbc.com",
			Language: "English",
		}
	}
	index := &mocks.NewsIndexMock{
		FetchDomainFunc: func(_ context.Context, dom string, _ time.Duration) ([]*domain.Article, error) {
			if dom == "bbc.com" {
				return hits, nil
			}
			return nil, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (*content.Result, error) {
			return &content.Result{Text: "tiny", Method: content.MethodReadability}, nil
		},
	}

	f := New(index, extractor, testFetchConfig())
	f.sleep = func(time.Duration) {}

	articles, report := f.Fetch(context.Background(), time.Time{}, nil)

	// paywall-stub text is an extraction failure: the candidate is dropped
	// and stays retryable, the domain trips after the failure limit
	assert.Empty(t, articles)
	assert.Len(t, extractor.ExtractCalls(), 2, "extraction stops once the domain trips")
	assert.Equal(t, 2, report.FailedFetching)
	assert.Contains(t, report.FailedDomains, "bbc.com")
	assert.GreaterOrEqual(t, report.FailureCounts["bbc.com"], 2)
}
