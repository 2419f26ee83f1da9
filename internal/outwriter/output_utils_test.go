package outwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscan/wayscan/internal/contract"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		maxCount   int
		wantFilled int
	}{
		{"zero count", 0, 100, 0},
		{"full bar", 100, 100, 10},
		{"half bar", 5, 10, 5},
		{"rounds up", 55, 100, 6},   // 5.5 rounds to 6
		{"rounds down", 14, 100, 1}, // 1.4 rounds to 1
		{"tiny fraction", 1, 1000, 0},
		{"single snapshot year", 1, 1, 10},
		{"zero max treated as one", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.count, tt.maxCount)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, barWidth-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

func TestGetDividerWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"explicit width in range", 66, 66},
		{"explicit width below minimum", 20, minDividerWidth},
		{"explicit width above maximum", 300, maxDividerWidth},
		{"minimum boundary", 50, 50},
		{"maximum boundary", 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getDividerWidth(cfg))
		})
	}
}

func TestDivider(t *testing.T) {
	cfg := &contract.Config{Width: 60}
	rule := divider(cfg)
	assert.Equal(t, 60, strings.Count(rule, "━"))
}
