package domain

import "time"

// Article represents a single news article moving through the pipeline,
// from raw index hit to processed, classified record.
type Article struct {
	URL              string           `json:"url" db:"url"`
	Title            string           `json:"title" db:"title"`
	Text             string           `json:"text,omitempty" db:"-"`
	Domain           string           `json:"domain" db:"domain"`
	DomainCategory   string           `json:"domain_category" db:"domain_category"`
	Language         string           `json:"language" db:"language"`
	SourceCountry    string           `json:"source_country" db:"source_country"`
	DatePublish      string           `json:"date_publish" db:"date_publish"`
	DateDownload     time.Time        `json:"date_download" db:"date_download"`
	ProcessedAt      time.Time        `json:"processed_at,omitempty" db:"processed_at"`
	ContentHash      string           `json:"content_hash,omitempty" db:"content_hash"`
	ExtractionMethod string           `json:"extraction_method,omitempty" db:"extraction_method"`
	FetchSource      string           `json:"fetch_source,omitempty" db:"fetch_source"`
	Analysis         *AITopicAnalysis `json:"ai_topic_analysis,omitempty" db:"-"`
}

// AITopicAnalysis is the structured judgment attached to an article after
// classification, regardless of which classifier path produced it.
type AITopicAnalysis struct {
	IsAITopic   bool     `json:"is_ai_topic"`
	Confidence  float64  `json:"confidence"`
	Topic       string   `json:"topic,omitempty"`
	Explanation string   `json:"explanation"`
	Keywords    []string `json:"keywords"`
}

// AIDetected reports whether the article carries a positive AI-topic judgment
func (a *Article) AIDetected() bool {
	return a.Analysis != nil && a.Analysis.IsAITopic
}

// RejectedArticle is an article that failed validation or processing,
// persisted with its reason so the URL is never retried in later batches.
type RejectedArticle struct {
	Article
	Reason string `json:"rejection_reason" db:"rejection_reason"`
}

// rejection reasons recorded with rejected articles
const (
	ReasonValidationFailed = "validation_failed"
	ReasonProcessingError  = "processing_error"
	ReasonTextTooShort     = "text_too_short_before_processing"
	ReasonExtractionFailed = "text_extraction_failed"
)
