package domain

import "time"

// run statuses for PipelineRun records
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// PipelineRun is the durable record of one batch execution
type PipelineRun struct {
	ID             int64      `json:"id" db:"id"`
	StartedAt      time.Time  `json:"started_at" db:"run_started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"run_completed_at"`
	Fetched        int        `json:"articles_fetched" db:"articles_fetched"`
	Validated      int        `json:"articles_validated" db:"articles_validated"`
	Stored         int        `json:"articles_stored" db:"articles_stored"`
	Rejected       int        `json:"articles_rejected" db:"articles_rejected"`
	AITopicCount   int        `json:"ai_topic_count" db:"ai_topic_count"`
	ProcessingTime float64    `json:"processing_time_seconds" db:"processing_time_seconds"`
	Status         string     `json:"status" db:"status"`
}

// RunStats is the statistics record returned by every batch execution.
// The batch entry point returns it unconditionally, success or failure.
type RunStats struct {
	Fetched            int      `json:"fetched"`
	Validated          int      `json:"validated"`
	Stored             int      `json:"stored"`
	Rejected           int      `json:"rejected"`
	FailedFetching     int      `json:"failed_fetching"`
	FailedProcessing   int      `json:"failed_processing"`
	FailedStorage      int      `json:"failed_storage"`
	AITopicCount       int      `json:"ai_topic_count"`
	ProcessingTime     float64  `json:"processing_time"`
	FailedDomains      []string `json:"failed_domains"`
	DomainFailureCount int      `json:"domain_failure_count"`
}
