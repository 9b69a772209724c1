// Package fetcher walks the source allow-list, queries a news index for
// recent article metadata, filters the hits and extracts their full text.
// The output of a fetch is a deduplicated set of candidate articles ready
// for validation.
package fetcher

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/askeland/newswatch/pkg/config"
	"github.com/askeland/newswatch/pkg/content"
	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/policy"
)

//go:generate moq -out mocks/news_index.go -pkg mocks -skip-ensure -fmt goimports . NewsIndex
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// NewsIndex returns recent article metadata for one domain
type NewsIndex interface {
	FetchDomain(ctx context.Context, dom string, window time.Duration) ([]*domain.Article, error)
}

// Extractor retrieves the full text of an article page
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (*content.Result, error)
}

// Report summarizes one fetch pass for the batch statistics
type Report struct {
	Fetched        int
	FailedFetching int
	FailedDomains  []string
	FailureCounts  map[string]int
	TotalFailures  int
	Domains        int
	Unreachable    int
	Duration       time.Duration
}

// IndexDown reports whether every queried domain failed with an index error,
// meaning the news index itself was unreachable
func (r Report) IndexDown() bool {
	return r.Domains > 0 && r.Unreachable == r.Domains
}

// Fetcher runs the per-domain fetch loop
type Fetcher struct {
	index     NewsIndex
	extractor Extractor
	cfg       config.FetchConfig
	sleep     func(time.Duration)
}

// New creates a fetcher over the given index and extractor
func New(index NewsIndex, extractor Extractor, cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		index:     index,
		extractor: extractor,
		cfg:       cfg,
		sleep:     time.Sleep,
	}
}

// Fetch queries every allow-listed domain, Danish sources first, and returns
// the candidate articles. since is the last processed time, a gap larger than
// the configured window widens this pass to cover it. known holds URLs
// already in the store, their extraction is skipped entirely. Failures never
// abort the pass, they are counted into the report.
func (f *Fetcher) Fetch(ctx context.Context, since time.Time, known map[string]struct{}) ([]*domain.Article, Report) {
	started := time.Now()
	tracker := NewDomainFailureTracker(f.cfg.MaxDomainFailures)
	report := Report{}

	window := f.effectiveWindow(since)

	var all []*domain.Article
	danishCount, englishCount := 0, 0

	domains := policy.AllowedDomains()
	lgr.Printf("[INFO] fetching %d domains, window %v", len(domains), window)

	for i, dom := range domains {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] fetch interrupted after %d of %d domains", i, len(domains))
			break
		}

		danish := policy.IsDanishDomain(dom)
		if f.quotaReached(danish, danishCount, englishCount) {
			continue
		}

		if tracker.ShouldSkip(dom) {
			lgr.Printf("[DEBUG] skipping %s, failure limit reached", dom)
			continue
		}

		usable := f.fetchDomain(ctx, dom, window, known, tracker, &report, &all)
		if danish {
			danishCount += usable
		} else {
			englishCount += usable
		}

		// politeness delay between domains
		if i < len(domains)-1 && f.cfg.RateLimit > 0 {
			f.sleep(f.cfg.RateLimit)
		}
	}

	deduped := Deduplicate(all)
	if len(deduped) < len(all) {
		lgr.Printf("[INFO] deduplication removed %d of %d candidates", len(all)-len(deduped), len(all))
	}

	report.FailedDomains = tracker.FailedDomains()
	report.FailureCounts = tracker.FailureCounts()
	report.TotalFailures = tracker.TotalFailures()
	report.Duration = time.Since(started)

	lgr.Printf("[INFO] fetch done: %d hits, %d candidates, %d failed domains, took %v",
		report.Fetched, len(deduped), len(report.FailedDomains), report.Duration)
	return deduped, report
}

// maxCatchUpWindow bounds how far back a widened pass may reach
const maxCatchUpWindow = 24 * time.Hour

// effectiveWindow widens the configured window to cover downtime since the
// last processed article, capped at maxCatchUpWindow
func (f *Fetcher) effectiveWindow(since time.Time) time.Duration {
	window := f.cfg.Window
	if since.IsZero() {
		return window
	}
	if gap := time.Since(since); gap > window {
		window = min(gap, maxCatchUpWindow)
		lgr.Printf("[INFO] widening fetch window to %v to cover gap since %s", window, since.Format(time.RFC3339))
	}
	return window
}

// fetchDomain processes one domain and returns how many usable candidates it
// contributed
func (f *Fetcher) fetchDomain(ctx context.Context, dom string, window time.Duration, known map[string]struct{},
	tracker *DomainFailureTracker, report *Report, all *[]*domain.Article) int {

	report.Domains++
	hits, err := f.index.FetchDomain(ctx, dom, window)
	if err != nil {
		lgr.Printf("[WARN] index query failed for %s: %v", dom, err)
		tracker.MarkFailed(dom, "fetch_error")
		report.Unreachable++
		return 0
	}
	report.Fetched += len(hits)

	if len(hits) == 0 {
		tracker.MarkFailed(dom, "no_articles_found")
		return 0
	}

	usable := 0
	for _, hit := range hits {
		if ctx.Err() != nil {
			break
		}
		if tracker.ShouldSkip(dom) {
			lgr.Printf("[DEBUG] %s reached failure limit mid-domain", dom)
			break
		}
		if f.cfg.MaxPerDomain > 0 && usable >= f.cfg.MaxPerDomain {
			break
		}

		if _, seen := known[hit.URL]; seen {
			continue
		}
		if policy.IsProblematic(hit.Domain) {
			continue
		}
		// Danish sources are kept whatever language the index reported
		if !policy.AllowedLanguage(hit.Language) && !policy.IsDanishDomain(hit.Domain) {
			continue
		}

		if !f.extract(ctx, hit, dom, tracker, report) {
			continue
		}

		f.enrich(hit)
		*all = append(*all, hit)
		usable++
	}

	if usable == 0 {
		tracker.MarkFailed(dom, "no_valid_articles")
	}
	return usable
}

// extract fills the article text when the index did not provide enough
func (f *Fetcher) extract(ctx context.Context, hit *domain.Article, dom string,
	tracker *DomainFailureTracker, report *Report) bool {

	if len(hit.Text) >= f.cfg.MinArticleLength {
		return true
	}

	res, err := f.extractor.Extract(ctx, hit.URL)
	if err != nil {
		lgr.Printf("[DEBUG] extraction failed for %s: %v", hit.URL, err)
		tracker.MarkFailed(dom, domain.ReasonExtractionFailed)
		report.FailedFetching++
		return false
	}

	if len(res.Text) > len(hit.Text) {
		hit.Text = res.Text
		hit.ExtractionMethod = res.Method
	}

	// a domain serving only stubs or paywall teasers counts against the
	// failure limit like a broken one, and the candidate stays retryable
	if len(hit.Text) < f.cfg.MinArticleLength {
		lgr.Printf("[DEBUG] text too short for %s: %d chars", hit.URL, len(hit.Text))
		tracker.MarkFailed(dom, domain.ReasonTextTooShort)
		report.FailedFetching++
		return false
	}
	return true
}

// enrich fills the derived fields the index does not provide
func (f *Fetcher) enrich(hit *domain.Article) {
	hit.DomainCategory = policy.CategoryFor(hit.Domain)
	if hit.SourceCountry == "" {
		hit.SourceCountry = policy.InferCountry(hit.Domain)
	}
	if policy.IsDanishDomain(hit.Domain) && !policy.AllowedLanguage(hit.Language) {
		hit.Language = "da"
	}
	if hit.Language == "" {
		hit.Language = policy.InferLanguage(hit.Domain, hit.Text)
	}
	if hit.DateDownload.IsZero() {
		hit.DateDownload = time.Now().UTC()
	}
}

// quotaReached reports whether the language class of the domain has hit its
// configured per-batch quota. Quotas are disabled at 0.
func (f *Fetcher) quotaReached(danish bool, danishCount, englishCount int) bool {
	if danish {
		return f.cfg.DanishQuota > 0 && danishCount >= f.cfg.DanishQuota
	}
	return f.cfg.EnglishQuota > 0 && englishCount >= f.cfg.EnglishQuota
}
