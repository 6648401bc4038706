package domain

import "time"

// IngestResult is the outcome of ingesting a single source
type IngestResult struct {
	Success  bool
	NewItems []Item
	Error    string
}

// NewCount returns the number of items created by the ingestion
func (r IngestResult) NewCount() int {
	return len(r.NewItems)
}

// SourceOutcome records what happened to one source during a poll cycle
type SourceOutcome struct {
	SourceID   int64  `json:"sourceId"`
	SourceName string `json:"sourceName"`
	Success    bool   `json:"success"`
	NewItems   int    `json:"newItems"`
	Error      string `json:"error,omitempty"`
}

// PollCycleResult aggregates one pass over all active sources. It is not persisted.
type PollCycleResult struct {
	SourcesAttempted int                `json:"sourcesAttempted"`
	SuccessCount     int                `json:"successCount"`
	TotalNewItems    int                `json:"totalNewItems"`
	Outcomes         []SourceOutcome    `json:"outcomes"`
	NewItems         []ItemNotification `json:"-"`
}

// PollError is a single entry of the scheduler's rolling error log
type PollError struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// SchedulerStats holds cumulative, in-memory scheduler counters
type SchedulerStats struct {
	Running           bool          `json:"running"`
	Polling           bool          `json:"polling"`
	TotalPolls        int64         `json:"totalPolls"`
	SuccessfulPolls   int64         `json:"successfulPolls"`
	FailedPolls       int64         `json:"failedPolls"`
	TotalItemsFetched int64         `json:"totalItemsFetched"`
	LastPollAt        *time.Time    `json:"lastPollAt"`
	LastPollDuration  time.Duration `json:"lastPollDuration"`
	RecentErrors      []PollError   `json:"recentErrors"`
}

// FeedStats is an aggregate snapshot of sources and items broadcast after each cycle
type FeedStats struct {
	TotalSources   int64     `json:"totalSources" db:"total_sources"`
	ActiveSources  int64     `json:"activeSources" db:"active_sources"`
	FailingSources int64     `json:"failingSources" db:"failing_sources"`
	TotalItems     int64     `json:"totalItems" db:"total_items"`
	ItemsLastDay   int64     `json:"itemsLastDay" db:"items_last_day"`
	ItemsThisWeek  int64     `json:"itemsThisWeek" db:"items_this_week"`
	AvgRelevance   float64   `json:"avgRelevance" db:"avg_relevance"`
	GeneratedAt    time.Time `json:"generatedAt" db:"-"`
}
