package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayscan/wayscan/schema"
)

func TestConvertHistoryRuns(t *testing.T) {
	runTime := time.Unix(1700000000, 0).UTC()
	runs := []schema.HistoryRun{
		{
			RunID:          42,
			Domain:         "example.com",
			RunTime:        runTime,
			TotalSnapshots: 1234,
			TotalYears:     10,
			MissingYears:   2,
			HealthScore:    88,
			FirstSnapshot:  "2010-01-01",
			LastSnapshot:   "2024-06-15",
		},
	}

	rows := ConvertHistoryRuns(runs)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(42), row.RunID)
	assert.Equal(t, "example.com", row.Domain)
	assert.True(t, runTime.Equal(row.RunTime))
	assert.Equal(t, int32(1234), row.TotalSnapshots)
	assert.Equal(t, int32(10), row.TotalYears)
	assert.Equal(t, int32(2), row.MissingYears)
	assert.Equal(t, int32(88), row.HealthScore)
	assert.Equal(t, "2010-01-01", row.FirstSnapshot)
	assert.Equal(t, "2024-06-15", row.LastSnapshot)
}

func TestConvertHistoryRunsEmpty(t *testing.T) {
	assert.Empty(t, ConvertHistoryRuns(nil))
}

func TestWriteHistoryRunsParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.parquet")
	rows := []HistoryRunRow{
		{RunID: 1, Domain: "a.com", RunTime: time.Unix(1000, 0).UTC(), HealthScore: 50, FirstSnapshot: "2001-01-01", LastSnapshot: "2002-02-02"},
		{RunID: 2, Domain: "b.com", RunTime: time.Unix(2000, 0).UTC(), HealthScore: 90, FirstSnapshot: "2010-10-10", LastSnapshot: "2024-01-01"},
	}

	require.NoError(t, WriteHistoryRunsParquet(rows, path))

	got, err := parquet.ReadFile[HistoryRunRow](path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].RunID)
	assert.Equal(t, "a.com", got[0].Domain)
	assert.Equal(t, int32(50), got[0].HealthScore)
	assert.Equal(t, "b.com", got[1].Domain)
	assert.True(t, rows[1].RunTime.Equal(got[1].RunTime))
}

func TestWriteHistoryRunsParquetBadPath(t *testing.T) {
	err := WriteHistoryRunsParquet(nil, filepath.Join(t.TempDir(), "missing", "runs.parquet"))
	assert.Error(t, err)
}
