package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// historyRunsTable is the name of the table for run history tracking.
const historyRunsTable = "wayscan_history_runs"

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, err := openBackendDB(backend, connStr, contract.GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateHistoryTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// getCreateHistoryTableQuery returns the CREATE TABLE query for the backend.
// Run IDs are generated by the application, so the schema stays portable.
func getCreateHistoryTableQuery(backend schema.DatabaseBackend) string {
	colType := "VARCHAR(255)"
	if backend == schema.SQLiteBackend || backend == schema.PostgreSQLBackend {
		colType = "TEXT"
	}
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id BIGINT PRIMARY KEY,
			domain %s NOT NULL,
			run_time BIGINT NOT NULL,
			total_snapshots INT NOT NULL,
			total_years INT NOT NULL,
			missing_years INT NOT NULL,
			health_score INT NOT NULL,
			first_snapshot %s NOT NULL,
			last_snapshot %s NOT NULL
		);
	`, historyRunsTable, colType, colType, colType)
}

// getHistoryPlaceholders returns the parameter placeholders for the backend.
func (hs *HistoryStoreImpl) getHistoryPlaceholders(n int) []string {
	placeholders := make([]string, n)
	for i := range placeholders {
		if hs.backend == schema.PostgreSQLBackend {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		} else {
			placeholders[i] = "?"
		}
	}
	return placeholders
}

// RecordRun persists one analysis run and returns its generated ID.
func (hs *HistoryStoreImpl) RecordRun(run schema.HistoryRun) (int64, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	runID := run.RunID
	if runID == 0 {
		// Nanosecond timestamps are unique enough for sequential CLI runs
		// and keep ID generation identical across backends.
		runID = time.Now().UnixNano()
	}

	p := hs.getHistoryPlaceholders(9)
	query := fmt.Sprintf(`INSERT INTO %s
		(run_id, domain, run_time, total_snapshots, total_years, missing_years, health_score, first_snapshot, last_snapshot)
		VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s)`,
		historyRunsTable, p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8])

	_, err := hs.db.Exec(query,
		runID,
		run.Domain,
		run.RunTime.Unix(),
		run.TotalSnapshots,
		run.TotalYears,
		run.MissingYears,
		run.HealthScore,
		run.FirstSnapshot,
		run.LastSnapshot,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run for %s: %w", run.Domain, err)
	}
	return runID, nil
}

// GetAllRuns retrieves every recorded run, oldest first.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.HistoryRun, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, domain, run_time, total_snapshots, total_years, missing_years, health_score, first_snapshot, last_snapshot
		FROM %s ORDER BY run_time ASC, run_id ASC`, historyRunsTable)
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.HistoryRun
	for rows.Next() {
		var run schema.HistoryRun
		var runTime int64
		if err := rows.Scan(
			&run.RunID,
			&run.Domain,
			&runTime,
			&run.TotalSnapshots,
			&run.TotalYears,
			&run.MissingYears,
			&run.HealthScore,
			&run.FirstSnapshot,
			&run.LastSnapshot,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history run: %w", err)
		}
		run.RunTime = time.Unix(runTime, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   hs.backend,
		Connected: hs.db != nil,
	}
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", historyRunsTable))
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	var lastRunTime, oldestRunTime int64
	row = hs.db.QueryRow(fmt.Sprintf("SELECT MAX(run_id), MAX(run_time), MIN(run_time) FROM %s", historyRunsTable))
	if err := row.Scan(&status.LastRunID, &lastRunTime, &oldestRunTime); err != nil {
		return status, fmt.Errorf("failed to get run time range: %w", err)
	}
	status.LastRunTime = time.Unix(lastRunTime, 0)
	status.OldestRunTime = time.Unix(oldestRunTime, 0)
	return status, nil
}

// Clear removes every recorded run without dropping the table.
func (hs *HistoryStoreImpl) Clear() error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}
	_, err := hs.db.Exec(fmt.Sprintf("DELETE FROM %s", historyRunsTable))
	return err
}

// Close closes the underlying DB connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
