// Package parquet provides data structures and functions for exporting
// wayscan run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/wayscan/wayscan/schema"
)

// HistoryRunRow represents a single recorded analysis run.
// This struct maps to the wayscan_history_runs database table.
type HistoryRunRow struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Domain is the normalized domain that was analyzed
	Domain string `parquet:"domain,snappy"`

	// RunTime is when the analysis ran (TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// TotalSnapshots is the number of snapshot records aggregated
	TotalSnapshots int32 `parquet:"total_snapshots,snappy"`

	// TotalYears is the number of distinct capture years observed
	TotalYears int32 `parquet:"total_years,snappy"`

	// MissingYears is the number of uncovered years inside the observed range
	MissingYears int32 `parquet:"missing_years,snappy"`

	// HealthScore is the derived 0-100 archive health score
	HealthScore int32 `parquet:"health_score,snappy"`

	// FirstSnapshot is the formatted date of the earliest capture
	FirstSnapshot string `parquet:"first_snapshot,snappy"`

	// LastSnapshot is the formatted date of the latest capture
	LastSnapshot string `parquet:"last_snapshot,snappy"`
}

// ConvertHistoryRuns maps store records onto their Parquet row shape.
func ConvertHistoryRuns(runs []schema.HistoryRun) []HistoryRunRow {
	rows := make([]HistoryRunRow, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, HistoryRunRow{
			RunID:          run.RunID,
			Domain:         run.Domain,
			RunTime:        run.RunTime,
			TotalSnapshots: int32(run.TotalSnapshots),
			TotalYears:     int32(run.TotalYears),
			MissingYears:   int32(run.MissingYears),
			HealthScore:    int32(run.HealthScore),
			FirstSnapshot:  run.FirstSnapshot,
			LastSnapshot:   run.LastSnapshot,
		})
	}
	return rows
}

// WriteHistoryRunsParquet writes history run rows to a Parquet file.
func WriteHistoryRunsParquet(rows []HistoryRunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[HistoryRunRow](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
