// Package pipeline orchestrates one batch: fetch candidates, validate,
// normalize, classify and store them, and record the run. A batch never
// returns an error, whatever happens it produces statistics and a finalized
// run record.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/fetcher"
	"github.com/askeland/newswatch/pkg/processor"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier

// Store is the persistence the pipeline needs
type Store interface {
	GetKnownURLs(ctx context.Context) (map[string]struct{}, error)
	GetLastProcessedTime(ctx context.Context) (time.Time, error)
	AddProcessed(ctx context.Context, article *domain.Article, fileRef string) error
	AddRejected(ctx context.Context, rejected *domain.RejectedArticle, fileRef string) error
	StartRun(ctx context.Context) (int64, error)
	CompleteRun(ctx context.Context, id int64, status string, stats domain.RunStats) error
}

// Fetcher produces candidate articles for a batch
type Fetcher interface {
	Fetch(ctx context.Context, since time.Time, known map[string]struct{}) ([]*domain.Article, fetcher.Report)
}

// Classifier judges a single article for AI relevance
type Classifier interface {
	Classify(ctx context.Context, article *domain.Article) (*domain.AITopicAnalysis, error)
}

// Pipeline runs batches end to end
type Pipeline struct {
	store      Store
	fetcher    Fetcher
	classifier Classifier
	fallback   Classifier
	processor  *processor.Processor
	storageDir string
	now        func() time.Time
}

// New creates a pipeline. classifier may equal fallback when no external
// classifier is configured, fallback must never be nil.
func New(store Store, f Fetcher, classifier, fallback Classifier, proc *processor.Processor, storageDir string) *Pipeline {
	if classifier == nil {
		classifier = fallback
	}
	return &Pipeline{
		store:      store,
		fetcher:    f,
		classifier: classifier,
		fallback:   fallback,
		processor:  proc,
		storageDir: storageDir,
		now:        time.Now,
	}
}

// Run executes one batch and returns its statistics. It never returns an
// error: subsystem failures degrade the batch and are counted, and the run
// record is finalized on every exit path.
func (p *Pipeline) Run(ctx context.Context) domain.RunStats {
	started := p.now()
	stats := domain.RunStats{FailedDomains: []string{}}
	status := domain.RunStatusCompleted

	runID, err := p.store.StartRun(ctx)
	if err != nil {
		lgr.Printf("[ERROR] can't record run start: %v", err)
		runID = 0
	}

	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] batch panic recovered: %v", r)
			status = domain.RunStatusFailed
		}
		stats.ProcessingTime = time.Since(started).Seconds()
		if runID > 0 {
			// finalization must survive a canceled batch context
			finCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()
			if err := p.store.CompleteRun(finCtx, runID, status, stats); err != nil {
				lgr.Printf("[ERROR] can't finalize run %d: %v", runID, err)
			}
		}
		lgr.Printf("[INFO] batch done: fetched %d, validated %d, stored %d, rejected %d, ai %d, %.1fs",
			stats.Fetched, stats.Validated, stats.Stored, stats.Rejected, stats.AITopicCount, stats.ProcessingTime)
	}()

	known, err := p.store.GetKnownURLs(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't load known urls, duplicates may be refetched: %v", err)
		known = nil
	}

	since, err := p.store.GetLastProcessedTime(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't load last processed time: %v", err)
		since = time.Time{}
	}

	articles, report := p.fetcher.Fetch(ctx, since, known)
	stats.Fetched = report.Fetched
	stats.FailedFetching = report.FailedFetching
	stats.FailedDomains = report.FailedDomains
	stats.DomainFailureCount = report.TotalFailures

	if report.IndexDown() {
		lgr.Printf("[ERROR] news index unreachable, all %d domain queries failed", report.Domains)
		status = domain.RunStatusFailed
	}

	// the fetch takes a while, refresh the snapshot before storing
	if fresh, err := p.store.GetKnownURLs(ctx); err == nil {
		known = fresh
	} else {
		lgr.Printf("[WARN] can't refresh known urls: %v", err)
	}

	// records reference the batch artifact they will be exported to
	fileRef := p.artifactPath(started)

	var stored []*domain.Article
	for _, article := range articles {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] batch interrupted, %d of %d candidates handled", len(stored), len(articles))
			status = domain.RunStatusFailed
			break
		}

		// the store may have gained this URL since the fetch started
		if _, seen := known[article.URL]; seen {
			continue
		}

		if reason, ok := p.processor.Validate(article); !ok {
			p.reject(ctx, article, rejectionReason(reason), fileRef)
			stats.Rejected++
			continue
		}
		stats.Validated++

		if err := p.processor.Process(article); err != nil {
			lgr.Printf("[WARN] processing failed for %s: %v", article.URL, err)
			p.reject(ctx, article, domain.ReasonProcessingError, fileRef)
			stats.Rejected++
			stats.FailedProcessing++
			continue
		}

		// degradation is per article, the next one tries the primary again
		analysis, err := p.classifier.Classify(ctx, article)
		if err != nil && p.classifier != p.fallback {
			lgr.Printf("[WARN] classification failed for %s, keyword fallback used: %v", article.URL, err)
			analysis, err = p.fallback.Classify(ctx, article)
		}
		if err != nil {
			lgr.Printf("[ERROR] fallback classification failed for %s: %v", article.URL, err)
			analysis = nil
		}
		article.Analysis = analysis
		if article.AIDetected() {
			stats.AITopicCount++
		}

		if err := p.store.AddProcessed(ctx, article, fileRef); err != nil {
			lgr.Printf("[ERROR] can't store %s: %v", article.URL, err)
			stats.FailedStorage++
			continue
		}
		stats.Stored++
		stored = append(stored, article)
	}

	if err := p.writeArtifact(stored, fileRef); err != nil {
		lgr.Printf("[WARN] can't write batch artifact: %v", err)
	}

	return stats
}

// reject records a rejected article, a failure here only logs since the
// batch must go on
func (p *Pipeline) reject(ctx context.Context, article *domain.Article, reason, fileRef string) {
	rejected := &domain.RejectedArticle{Article: *article, Reason: reason}
	if err := p.store.AddRejected(ctx, rejected, fileRef); err != nil {
		lgr.Printf("[WARN] can't record rejection of %s: %v", article.URL, err)
	}
}

// rejectionReason maps a validation message to the stored reason code
func rejectionReason(msg string) string {
	if strings.Contains(msg, "text too short") {
		return domain.ReasonTextTooShort
	}
	return domain.ReasonValidationFailed
}

// artifactPath is the batch artifact file name, empty when no storage dir
// is configured
func (p *Pipeline) artifactPath(started time.Time) string {
	if p.storageDir == "" {
		return ""
	}
	name := fmt.Sprintf("articles_%s.json", started.UTC().Format("20060102_150405"))
	return filepath.Join(p.storageDir, name)
}

// writeArtifact dumps the stored articles of this batch as a timestamped
// JSON file, the exchange format consumed by downstream analysis
func (p *Pipeline) writeArtifact(articles []*domain.Article, path string) error {
	if path == "" || len(articles) == 0 {
		return nil
	}
	if err := os.MkdirAll(p.storageDir, 0o750); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	lgr.Printf("[INFO] wrote %d articles to %s", len(articles), path)
	return nil
}
