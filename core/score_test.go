package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscan/wayscan/schema"
)

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name  string
		stats *schema.CoverageStats
		want  int
	}{
		{
			name:  "nil stats",
			stats: nil,
			want:  0,
		},
		{
			name:  "zero observed years",
			stats: &schema.CoverageStats{TotalYears: 0, LastSnapshot: "2024-01-01"},
			want:  0,
		},
		{
			name:  "full coverage with recent capture caps at 100",
			stats: &schema.CoverageStats{TotalYears: 5, MissingYears: nil, LastSnapshot: "2024-06-01"},
			want:  100,
		},
		{
			name:  "full coverage without recent capture",
			stats: &schema.CoverageStats{TotalYears: 5, MissingYears: nil, LastSnapshot: "2019-12-31"},
			want:  100,
		},
		{
			name:  "one gap in three years, old capture",
			stats: &schema.CoverageStats{TotalYears: 3, MissingYears: []string{"2001"}, LastSnapshot: "2003-05-05"},
			want:  66, // 66.67 truncated, not rounded
		},
		{
			name:  "one gap in three years plus recency bonus",
			stats: &schema.CoverageStats{TotalYears: 3, MissingYears: []string{"2021"}, LastSnapshot: "2023-05-05"},
			want:  76,
		},
		{
			name:  "bonus never pushes past 100",
			stats: &schema.CoverageStats{TotalYears: 10, MissingYears: []string{"2015"}, LastSnapshot: "2024-01-01"},
			want:  100,
		},
		{
			name:  "more gaps than observed years floors at 0",
			stats: &schema.CoverageStats{TotalYears: 2, MissingYears: []string{"2011", "2012", "2013"}, LastSnapshot: "2014-01-01"},
			want:  0,
		},
		{
			name:  "no bonus for 2030s capture",
			stats: &schema.CoverageStats{TotalYears: 2, MissingYears: []string{"2031"}, LastSnapshot: "2033-01-01"},
			want:  50,
		},
		{
			name:  "raw fallback timestamp still earns bonus",
			stats: &schema.CoverageStats{TotalYears: 1, MissingYears: nil, LastSnapshot: "20241331"},
			want:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeHealthScore(tt.stats))
		})
	}
}

func TestComputeHealthScoreBounds(t *testing.T) {
	// Sweep a grid of year/gap combinations and check the score range.
	for total := 1; total <= 30; total++ {
		for missing := 0; missing <= 40; missing++ {
			stats := &schema.CoverageStats{
				TotalYears:   total,
				MissingYears: make([]string, missing),
				LastSnapshot: "2024-01-01",
			}
			score := ComputeHealthScore(stats)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
