// Package schema has models, constants and helpers shared by all parts of wayscan.
package schema

import "time"

// SnapshotRecord is a single row from the CDX index: a capture timestamp in
// YYYYMMDDhhmmss form (or a prefix thereof), the HTTP status code recorded at
// capture time, and the reported MIME type. Only Timestamp participates in
// coverage aggregation; the other fields ride along for export and debugging.
type SnapshotRecord struct {
	Timestamp  string `json:"timestamp"`
	StatusCode string `json:"statuscode"`
	MimeType   string `json:"mimetype"`
}

// CoverageStats is the aggregated coverage profile for one domain. It is
// constructed once per analysis run and never mutated afterwards.
type CoverageStats struct {
	TotalSnapshots int            `json:"total_snapshots"`
	YearlyCounts   map[string]int `json:"yearly_counts"`
	FirstSnapshot  string         `json:"first_snapshot"` // YYYY-MM-DD, or raw 8-char prefix on parse failure
	LastSnapshot   string         `json:"last_snapshot"`  // YYYY-MM-DD, or raw 8-char prefix on parse failure
	MissingYears   []string       `json:"missing_years"`  // ascending, strictly inside the observed range
	TotalYears     int            `json:"total_years"`    // distinct years observed
}

// DomainReport bundles everything the presentation layers need for one domain.
type DomainReport struct {
	Domain      string         `json:"domain"`
	Stats       *CoverageStats `json:"stats"`
	HealthScore int            `json:"health_score"`
	HealthLabel string         `json:"health_label"`
	FromCache   bool           `json:"from_cache"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// HistoryRun is one recorded analysis run in the history store.
type HistoryRun struct {
	RunID          int64     `json:"run_id"`
	Domain         string    `json:"domain"`
	RunTime        time.Time `json:"run_time"`
	TotalSnapshots int       `json:"total_snapshots"`
	TotalYears     int       `json:"total_years"`
	MissingYears   int       `json:"missing_years"`
	HealthScore    int       `json:"health_score"`
	FirstSnapshot  string    `json:"first_snapshot"`
	LastSnapshot   string    `json:"last_snapshot"`
}

// CacheStatus describes the state of the snapshot cache backend.
type CacheStatus struct {
	Backend         DatabaseBackend
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}

// HistoryStatus describes the state of the history backend.
type HistoryStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
}
