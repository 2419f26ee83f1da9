package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// currentCacheVersion defines the version of the cached snapshot payload.
const currentCacheVersion = 1

// cachedFetchSnapshots consults the snapshot cache before issuing a CDX call.
// The second return value reports whether the records came from the cache.
func cachedFetchSnapshots(ctx context.Context, cfg *contract.Config, client contract.ArchiveClient, mgr contract.CacheManager, domain string) ([]schema.SnapshotRecord, bool, error) {
	store := mgr.GetSnapshotStore()
	if store == nil {
		records, err := client.FetchSnapshots(ctx, domain)
		return records, false, err
	}

	key := generateCacheKey(cfg, domain)
	if records := checkCacheHit(store, key, cfg.CacheTTL); records != nil {
		return records, true, nil
	}

	records, err := client.FetchSnapshots(ctx, domain)
	if err != nil {
		return nil, false, err
	}

	// A run that found no data is not worth caching: the domain may get
	// archived tomorrow, and re-fetching an empty result is cheap.
	if len(records) > 0 {
		if data, err := json.Marshal(records); err == nil {
			_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
		}
	}
	return records, false, nil
}

// checkCacheHit attempts to retrieve and validate a cached record list.
func checkCacheHit(store contract.CacheStore, key string, ttl time.Duration) []schema.SnapshotRecord {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version != currentCacheVersion {
		return nil
	}
	if time.Since(time.Unix(ts, 0)) > ttl {
		return nil // Stale
	}

	var records []schema.SnapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// generateCacheKey creates a unique key from the query parameters that shape
// the CDX response, so endpoint or limit changes invalidate old entries.
func generateCacheKey(cfg *contract.Config, domain string) string {
	raw := fmt.Sprintf("%s|%s|%d|timestamp:8", cfg.Endpoint, domain, cfg.FetchLimit)
	return fmt.Sprintf("cdx:%x", sha256.Sum256([]byte(raw)))
}
