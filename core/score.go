package core

import (
	"strings"

	"github.com/wayscan/wayscan/schema"
)

// recentEraPrefix marks the decade that earns the recency bonus. The literal
// prefix match stops rewarding anything from 2030 onward; that quirk is kept
// intentionally to match the established scoring behavior.
const recentEraPrefix = "202"

// ComputeHealthScore derives a 0-100 archive health score from coverage
// completeness and recency. Pure and deterministic: nil stats or zero
// observed years score 0, a last capture in the 2020s earns a +10 bonus,
// and the result is truncated, capped at 100 and floored at 0.
func ComputeHealthScore(stats *schema.CoverageStats) int {
	if stats == nil || stats.TotalYears == 0 {
		return 0
	}

	totalYears := float64(stats.TotalYears)
	missing := float64(len(stats.MissingYears))
	rate := (totalYears - missing) / totalYears * 100

	if strings.HasPrefix(stats.LastSnapshot, recentEraPrefix) {
		rate += 10
	}

	if rate > 100 {
		rate = 100
	}
	if rate < 0 {
		rate = 0
	}
	return int(rate)
}
