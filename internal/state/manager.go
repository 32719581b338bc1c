// Package state persists scan history and deletion outcomes. Scanners
// never read from it; it is an audit log written after a run.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ning0612/reclaim/internal/domain"
)

// Manager handles scan-history persistence
type Manager struct {
	db *sql.DB
}

// RunRecord summarizes one completed analysis
type RunRecord struct {
	ID               int64
	Root             string
	StartTime        time.Time
	Duration         time.Duration
	LargeFiles       int
	DuplicateGroups  int
	StaleFiles       int
	CacheDirs        int
	ReclaimableBytes int64
}

// DeletionRecord captures one deletion attempt from a cleanup
type DeletionRecord struct {
	ID        int64
	RunID     int64
	Path      string
	Kind      string // "file" or "dir"
	Bytes     int64
	DeletedAt time.Time
	Error     string // empty on success
}

// NewManager creates a new state manager backed by a sqlite database
// under dataDir
func NewManager(dataDir string) (*Manager, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reclaim.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Limit connection pool to prevent "database is locked" errors
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Enable WAL mode for better concurrency and set busy timeout
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode and busy timeout: %w", err)
	}

	manager := &Manager{db: db}

	// Initialize schema
	if err := manager.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return manager, nil
}

// initSchema creates the database schema
func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root TEXT NOT NULL,
		start_time TIMESTAMP NOT NULL,
		duration_ms INTEGER NOT NULL,
		large_files INTEGER DEFAULT 0,
		duplicate_groups INTEGER DEFAULT 0,
		stale_files INTEGER DEFAULT 0,
		cache_dirs INTEGER DEFAULT 0,
		reclaimable_bytes INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS deletions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		path TEXT NOT NULL,
		kind TEXT NOT NULL,
		bytes INTEGER DEFAULT 0,
		deleted_at TIMESTAMP NOT NULL,
		error TEXT,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_root_time ON runs(root, start_time DESC);
	CREATE INDEX IF NOT EXISTS idx_deletions_run ON deletions(run_id);
	`

	_, err := m.db.Exec(schema)
	return err
}

// SaveRun records a completed analysis and returns its id
func (m *Manager) SaveRun(analysis *domain.DiskAnalysis, start time.Time, duration time.Duration) (int64, error) {
	query := `
		INSERT INTO runs (root, start_time, duration_ms, large_files, duplicate_groups, stale_files, cache_dirs, reclaimable_bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := m.db.Exec(query,
		analysis.Root,
		start,
		duration.Milliseconds(),
		len(analysis.LargeFiles),
		len(analysis.Duplicates),
		len(analysis.StaleFiles),
		len(analysis.CacheDirs),
		analysis.TotalReclaimable,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	return id, nil
}

// SaveDeletion records one deletion attempt for a run
func (m *Manager) SaveDeletion(record DeletionRecord) error {
	if record.Kind != "file" && record.Kind != "dir" {
		return fmt.Errorf("invalid kind: %s (must be 'file' or 'dir')", record.Kind)
	}

	query := `
		INSERT INTO deletions (run_id, path, kind, bytes, deleted_at, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := m.db.Exec(query,
		record.RunID,
		record.Path,
		record.Kind,
		record.Bytes,
		record.DeletedAt,
		record.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to save deletion record: %w", err)
	}

	return nil
}

// GetHistory retrieves the most recent runs, newest first
func (m *Manager) GetHistory(limit int) ([]RunRecord, error) {
	// Validate limit
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, root, start_time, duration_ms, large_files, duplicate_groups, stale_files, cache_dirs, reclaimable_bytes
		FROM runs
		ORDER BY start_time DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		var durationMS int64
		err := rows.Scan(
			&record.ID,
			&record.Root,
			&record.StartTime,
			&durationMS,
			&record.LargeFiles,
			&record.DuplicateGroups,
			&record.StaleFiles,
			&record.CacheDirs,
			&record.ReclaimableBytes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// GetDeletions retrieves the deletion records for a run
func (m *Manager) GetDeletions(runID int64) ([]DeletionRecord, error) {
	query := `
		SELECT id, run_id, path, kind, bytes, deleted_at, error
		FROM deletions
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := m.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deletions: %w", err)
	}
	defer rows.Close()

	var records []DeletionRecord
	for rows.Next() {
		var record DeletionRecord
		err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.Path,
			&record.Kind,
			&record.Bytes,
			&record.DeletedAt,
			&record.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// Close releases the database handle
func (m *Manager) Close() error {
	return m.db.Close()
}
