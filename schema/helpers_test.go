package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{45238, "45,238"},
		{100000, "100,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
		{-999, "-999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.n))
		})
	}
}

func TestSortedYears(t *testing.T) {
	t.Run("ascending order", func(t *testing.T) {
		yearly := map[string]int{"2021": 3, "1998": 1, "2005": 7}
		assert.Equal(t, []string{"1998", "2005", "2021"}, SortedYears(yearly))
	})

	t.Run("empty map", func(t *testing.T) {
		assert.Empty(t, SortedYears(map[string]int{}))
	})

	t.Run("single year", func(t *testing.T) {
		assert.Equal(t, []string{"2020"}, SortedYears(map[string]int{"2020": 42}))
	})
}
