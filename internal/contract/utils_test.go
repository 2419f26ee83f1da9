package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayscan/wayscan/schema"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, schema.ExcellentValue},
		{90, schema.ExcellentValue},
		{89, schema.GoodValue},
		{70, schema.GoodValue},
		{69, schema.FairValue},
		{50, schema.FairValue},
		{49, schema.LimitedValue},
		{0, schema.LimitedValue},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// Regardless of color escapes, the label text must survive.
	for _, score := range []int{95, 75, 55, 10} {
		label := GetColorLabel(score)
		assert.Contains(t, label, GetPlainLabel(score))
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path means stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("named path creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
		assert.Error(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	cachePath := GetDBFilePath()
	historyPath := GetHistoryDBFilePath()

	assert.True(t, strings.HasSuffix(cachePath, ".wayscan_cache.db"))
	assert.True(t, strings.HasSuffix(historyPath, ".wayscan_history.db"))
	assert.NotEqual(t, cachePath, historyPath)
}
