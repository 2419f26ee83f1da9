// Package agg turns raw snapshot records into a per-year coverage profile.
package agg

import (
	"sort"
	"strconv"
	"time"

	"github.com/wayscan/wayscan/schema"
)

// AggregateCoverage groups snapshot records by capture year, finds the first
// and last captures, and identifies missing years inside the observed range.
// It is a pure function: no I/O, deterministic for a given input. An empty
// input yields nil, which short-circuits the pipeline upstream.
func AggregateCoverage(records []schema.SnapshotRecord) *schema.CoverageStats {
	if len(records) == 0 {
		return nil
	}

	yearlyCounts := make(map[string]int)
	timestamps := make([]string, 0, len(records))
	for _, rec := range records {
		year := yearKey(rec.Timestamp)
		yearlyCounts[year]++
		timestamps = append(timestamps, rec.Timestamp)
	}

	// Timestamps are fixed-width zero-padded numeric strings, so
	// lexicographic order equals chronological order.
	sort.Strings(timestamps)

	return &schema.CoverageStats{
		TotalSnapshots: len(records),
		YearlyCounts:   yearlyCounts,
		FirstSnapshot:  FormatTimestamp(timestamps[0]),
		LastSnapshot:   FormatTimestamp(timestamps[len(timestamps)-1]),
		MissingYears:   missingYears(yearlyCounts),
		TotalYears:     len(yearlyCounts),
	}
}

// yearKey extracts the 4-digit year prefix of a timestamp.
func yearKey(timestamp string) string {
	if len(timestamp) < 4 {
		return timestamp
	}
	return timestamp[:4]
}

// FormatTimestamp converts a YYYYMMDDhhmmss capture timestamp into a readable
// YYYY-MM-DD date. When the first 8 characters do not parse as a calendar
// date, the raw 8-character slice is returned unchanged. Never errors.
func FormatTimestamp(timestamp string) string {
	raw := timestamp
	if len(raw) > 8 {
		raw = raw[:8]
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

// missingYears returns every year strictly inside [min, max] of the observed
// year keys that has no snapshots, as an ascending slice of year strings.
func missingYears(yearlyCounts map[string]int) []string {
	minYear, maxYear := 0, 0
	for year := range yearlyCounts {
		y, err := strconv.Atoi(year)
		if err != nil {
			// Malformed year keys come from malformed timestamps; they
			// cannot anchor an integer range, so they are skipped here.
			continue
		}
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	var missing []string
	for y := minYear; y <= maxYear && minYear > 0; y++ {
		key := strconv.Itoa(y)
		if _, ok := yearlyCounts[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
