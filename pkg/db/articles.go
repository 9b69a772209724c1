package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/askeland/newswatch/pkg/domain"
)

// processedRow is the database shape of a stored article
type processedRow struct {
	URL              string    `db:"url"`
	Title            string    `db:"title"`
	Text             string    `db:"text"`
	Domain           string    `db:"domain"`
	DomainCategory   string    `db:"domain_category"`
	Language         string    `db:"language"`
	SourceCountry    string    `db:"source_country"`
	DatePublish      string    `db:"date_publish"`
	DateDownload     time.Time `db:"date_download"`
	ProcessedAt      time.Time `db:"processed_at"`
	ContentHash      string    `db:"content_hash"`
	ExtractionMethod string    `db:"extraction_method"`
	FetchSource      string    `db:"fetch_source"`
	BatchFile        string    `db:"batch_file"`
	IsAITopic        bool      `db:"is_ai_topic"`
	AIConfidence     float64   `db:"ai_confidence"`
	AITopic          string    `db:"ai_topic"`
	AIExplanation    string    `db:"ai_explanation"`
	AIKeywords       string    `db:"ai_keywords"`
	CreatedAt        time.Time `db:"created_at"`
}

func toProcessedRow(a *domain.Article, fileRef string) (*processedRow, error) {
	row := &processedRow{
		URL:              a.URL,
		Title:            a.Title,
		Text:             a.Text,
		Domain:           a.Domain,
		DomainCategory:   a.DomainCategory,
		Language:         a.Language,
		SourceCountry:    a.SourceCountry,
		DatePublish:      a.DatePublish,
		DateDownload:     a.DateDownload,
		ProcessedAt:      a.ProcessedAt,
		ContentHash:      a.ContentHash,
		ExtractionMethod: a.ExtractionMethod,
		FetchSource:      a.FetchSource,
		BatchFile:        fileRef,
		AIKeywords:       "[]",
	}
	if a.Analysis != nil {
		row.IsAITopic = a.Analysis.IsAITopic
		row.AIConfidence = a.Analysis.Confidence
		row.AITopic = a.Analysis.Topic
		row.AIExplanation = a.Analysis.Explanation
		if len(a.Analysis.Keywords) > 0 {
			kw, err := json.Marshal(a.Analysis.Keywords)
			if err != nil {
				return nil, fmt.Errorf("marshal keywords: %w", err)
			}
			row.AIKeywords = string(kw)
		}
	}
	return row, nil
}

func (r *processedRow) toDomain() *domain.Article {
	a := &domain.Article{
		URL:              r.URL,
		Title:            r.Title,
		Text:             r.Text,
		Domain:           r.Domain,
		DomainCategory:   r.DomainCategory,
		Language:         r.Language,
		SourceCountry:    r.SourceCountry,
		DatePublish:      r.DatePublish,
		DateDownload:     r.DateDownload,
		ProcessedAt:      r.ProcessedAt,
		ContentHash:      r.ContentHash,
		ExtractionMethod: r.ExtractionMethod,
		FetchSource:      r.FetchSource,
		Analysis: &domain.AITopicAnalysis{
			IsAITopic:   r.IsAITopic,
			Confidence:  r.AIConfidence,
			Topic:       r.AITopic,
			Explanation: r.AIExplanation,
		},
	}
	// keywords are stored as a JSON array, a broken value is not fatal
	_ = json.Unmarshal([]byte(r.AIKeywords), &a.Analysis.Keywords)
	return a
}

// AddProcessed stores a processed article with a reference to the batch file
// it was exported in. Re-storing the same URL replaces the record, so
// re-running a batch is harmless.
func (db *DB) AddProcessed(ctx context.Context, article *domain.Article, fileRef string) error {
	row, err := toProcessedRow(article, fileRef)
	if err != nil {
		return err
	}

	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		query := `
			INSERT OR REPLACE INTO processed_articles
			(url, title, text, domain, domain_category, language, source_country,
			 date_publish, date_download, processed_at, content_hash,
			 extraction_method, fetch_source, batch_file,
			 is_ai_topic, ai_confidence, ai_topic, ai_explanation, ai_keywords)
			VALUES (:url, :title, :text, :domain, :domain_category, :language, :source_country,
			 :date_publish, :date_download, :processed_at, :content_hash,
			 :extraction_method, :fetch_source, :batch_file,
			 :is_ai_topic, :ai_confidence, :ai_topic, :ai_explanation, :ai_keywords)
		`
		if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("insert processed article: %w", err)
		}
		return nil
	})
}

// AddRejected records a rejected article with its reason
func (db *DB) AddRejected(ctx context.Context, rejected *domain.RejectedArticle, fileRef string) error {
	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		query := `
			INSERT OR REPLACE INTO rejected_articles
			(url, title, domain, language, date_publish, rejection_reason, batch_file)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		_, err := db.conn.ExecContext(ctx, query,
			rejected.URL, rejected.Title, rejected.Domain, rejected.Language,
			rejected.DatePublish, rejected.Reason, fileRef)
		if err != nil {
			return fmt.Errorf("insert rejected article: %w", err)
		}
		return nil
	})
}

// GetKnownURLs returns every URL the pipeline has already seen, processed and
// rejected alike. Used to skip extraction work for URLs that can never be
// stored again.
func (db *DB) GetKnownURLs(ctx context.Context) (map[string]struct{}, error) {
	var urls []string
	query := `
		SELECT url FROM processed_articles
		UNION
		SELECT url FROM rejected_articles
	`
	if err := db.conn.SelectContext(ctx, &urls, query); err != nil {
		return nil, fmt.Errorf("get known urls: %w", err)
	}

	known := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		known[u] = struct{}{}
	}
	return known, nil
}

// GetLastProcessedTime returns the most recent processed_at stamp, the zero
// time when nothing has been processed yet
func (db *DB) GetLastProcessedTime(ctx context.Context) (time.Time, error) {
	var last time.Time
	query := `SELECT processed_at FROM processed_articles ORDER BY processed_at DESC LIMIT 1`
	err := db.conn.GetContext(ctx, &last, query)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get last processed time: %w", err)
	}
	return last.UTC(), nil
}

// GetArticle retrieves a single processed article by URL
func (db *DB) GetArticle(ctx context.Context, url string) (*domain.Article, error) {
	var row processedRow
	query := `SELECT * FROM processed_articles WHERE url = ?`
	if err := db.conn.GetContext(ctx, &row, query, url); err != nil {
		return nil, fmt.Errorf("get article %s: %w", url, err)
	}
	return row.toDomain(), nil
}

// ArticlesQuery filters GetArticles
type ArticlesQuery struct {
	Category string
	Language string
	AIOnly   bool
	Limit    int
}

// GetArticles retrieves processed articles, most recent first
func (db *DB) GetArticles(ctx context.Context, q ArticlesQuery) ([]*domain.Article, error) {
	query := `SELECT * FROM processed_articles WHERE 1=1`
	args := []interface{}{}

	if q.Category != "" {
		query += ` AND domain_category = ?`
		args = append(args, q.Category)
	}
	if q.Language != "" {
		query += ` AND language = ?`
		args = append(args, q.Language)
	}
	if q.AIOnly {
		query += ` AND is_ai_topic = 1`
	}

	query += ` ORDER BY processed_at DESC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	var rows []processedRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]*domain.Article, 0, len(rows))
	for i := range rows {
		articles = append(articles, rows[i].toDomain())
	}
	return articles, nil
}

// GetRejected retrieves recent rejected articles
func (db *DB) GetRejected(ctx context.Context, limit int) ([]*domain.RejectedArticle, error) {
	type rejectedRow struct {
		URL         string    `db:"url"`
		Title       string    `db:"title"`
		Domain      string    `db:"domain"`
		Language    string    `db:"language"`
		DatePublish string    `db:"date_publish"`
		Reason      string    `db:"rejection_reason"`
		BatchFile   string    `db:"batch_file"`
		CreatedAt   time.Time `db:"created_at"`
	}

	query := `SELECT * FROM rejected_articles ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []rejectedRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get rejected articles: %w", err)
	}

	out := make([]*domain.RejectedArticle, 0, len(rows))
	for _, r := range rows {
		out = append(out, &domain.RejectedArticle{
			Article: domain.Article{
				URL:         r.URL,
				Title:       r.Title,
				Domain:      r.Domain,
				Language:    r.Language,
				DatePublish: r.DatePublish,
			},
			Reason: r.Reason,
		})
	}
	return out, nil
}

// CleanupOldRecords prunes run history older than the retention window.
// Processed and rejected articles are kept indefinitely, their URLs form the
// never-refetch memory.
func (db *DB) CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	var total int64
	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		res, err := db.conn.ExecContext(ctx,
			`DELETE FROM pipeline_runs WHERE run_started_at < ? AND status != 'running'`, cutoff)
		if err != nil {
			return fmt.Errorf("cleanup runs: %w", err)
		}
		total, _ = res.RowsAffected()
		return nil
	})
	return total, err
}
