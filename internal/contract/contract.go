// Package contract provides interfaces and shared utilities for the wayscan CLI's internal architecture.
package contract

import (
	"context"

	"github.com/wayscan/wayscan/schema"
)

// ArchiveClient defines the interface for querying a web-archive CDX index.
// This allows the fetch layer to be mocked for testing.
type ArchiveClient interface {
	// FetchSnapshots issues a single bounded query for a normalized domain
	// and returns the snapshot rows with the header row stripped. An empty
	// or header-only response yields an empty slice and a nil error.
	FetchSnapshots(ctx context.Context, domain string) ([]schema.SnapshotRecord, error)
}

// CacheManager defines the interface for managing persistence stores.
type CacheManager interface {
	GetSnapshotStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for snapshot cache storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for recording analysis runs.
type HistoryStore interface {
	RecordRun(run schema.HistoryRun) (int64, error)
	GetAllRuns() ([]schema.HistoryRun, error)
	GetStatus() (schema.HistoryStatus, error)
	Clear() error
	Close() error
}
