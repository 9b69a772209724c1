package db

import (
	"context"
	"fmt"
)

// CountRow is one bucket of an aggregate query
type CountRow struct {
	Key   string `db:"key" json:"key"`
	Count int    `db:"cnt" json:"count"`
}

// Stats is the dashboard summary
type Stats struct {
	TotalProcessed int        `json:"total_processed"`
	TotalRejected  int        `json:"total_rejected"`
	AITopicCount   int        `json:"ai_topic_count"`
	ByCategory     []CountRow `json:"by_category"`
	ByLanguage     []CountRow `json:"by_language"`
	TopDomains     []CountRow `json:"top_domains"`
}

// GetStats computes the dashboard summary in one pass over the store
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := db.conn.GetContext(ctx, &stats.TotalProcessed,
		`SELECT COUNT(*) FROM processed_articles`); err != nil {
		return nil, fmt.Errorf("count processed: %w", err)
	}
	if err := db.conn.GetContext(ctx, &stats.TotalRejected,
		`SELECT COUNT(*) FROM rejected_articles`); err != nil {
		return nil, fmt.Errorf("count rejected: %w", err)
	}
	if err := db.conn.GetContext(ctx, &stats.AITopicCount,
		`SELECT COUNT(*) FROM processed_articles WHERE is_ai_topic = 1`); err != nil {
		return nil, fmt.Errorf("count ai topics: %w", err)
	}

	if err := db.conn.SelectContext(ctx, &stats.ByCategory, `
		SELECT domain_category AS key, COUNT(*) AS cnt
		FROM processed_articles
		GROUP BY domain_category
		ORDER BY cnt DESC`); err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	if err := db.conn.SelectContext(ctx, &stats.ByLanguage, `
		SELECT language AS key, COUNT(*) AS cnt
		FROM processed_articles
		GROUP BY language
		ORDER BY cnt DESC`); err != nil {
		return nil, fmt.Errorf("count by language: %w", err)
	}

	if err := db.conn.SelectContext(ctx, &stats.TopDomains, `
		SELECT domain AS key, COUNT(*) AS cnt
		FROM processed_articles
		GROUP BY domain
		ORDER BY cnt DESC
		LIMIT 10`); err != nil {
		return nil, fmt.Errorf("count by domain: %w", err)
	}

	return stats, nil
}

// GetCategories returns the categories present in the store with counts
func (db *DB) GetCategories(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := db.conn.SelectContext(ctx, &rows, `
		SELECT domain_category AS key, COUNT(*) AS cnt
		FROM processed_articles
		GROUP BY domain_category
		ORDER BY cnt DESC`)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return rows, nil
}
