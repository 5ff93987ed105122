package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/report"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements RecordStore on a SQLite file. It also satisfies
// report.Sink so a sweep can write straight into it.
type SQLiteStore struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

var (
	_ RecordStore = (*SQLiteStore)(nil)
	_ report.Sink = (*SQLiteStore)(nil)
)

// Open opens or creates the database at path. Parent directories are
// created as needed.
func Open(path string) (*SQLiteStore, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database path the store was opened with.
func (s *SQLiteStore) Path() string { return s.path }

// Save implements RecordStore.
func (s *SQLiteStore) Save(ctx context.Context, records []report.Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, r := range records {
		if r.RunID == "" {
			return fmt.Errorf("%w: record for %q has no run ID", models.ErrInvalidParameter, r.Product)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_records (
			run_id, product, strategy, years, trials, seed,
			mean_cost, std_dev_cost, mean_cost_per_year, p5, p50, p95, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (run_id, product, years) DO UPDATE SET
			strategy = excluded.strategy,
			trials = excluded.trials,
			seed = excluded.seed,
			mean_cost = excluded.mean_cost,
			std_dev_cost = excluded.std_dev_cost,
			mean_cost_per_year = excluded.mean_cost_per_year,
			p5 = excluded.p5,
			p50 = excluded.p50,
			p95 = excluded.p95,
			created_at = excluded.created_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if _, err := stmt.ExecContext(ctx,
			r.RunID, r.Product, string(r.Strategy), r.Years, r.Trials,
			strconv.FormatUint(r.Seed, 10),
			r.MeanCost, r.StdDevCost, r.MeanCostPerYear, r.P5, r.P50, r.P95,
			createdAt.UTC().Format(timeLayout),
		); err != nil {
			return fmt.Errorf("failed to insert record %s/%d: %w", r.Product, r.Years, err)
		}
	}

	return tx.Commit()
}

// Write implements report.Sink.
func (s *SQLiteStore) Write(ctx context.Context, records []report.Record) error {
	return s.Save(ctx, records)
}

// List implements RecordStore.
func (s *SQLiteStore) List(ctx context.Context, runID string) ([]report.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, product, strategy, years, trials, seed,
		       mean_cost, std_dev_cost, mean_cost_per_year, p5, p50, p95, created_at
		FROM report_records
		WHERE run_id = ?
		ORDER BY years, id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []report.Record
	for rows.Next() {
		var (
			r         report.Record
			strategy  string
			seed      string
			createdAt string
		)
		if err := rows.Scan(&r.RunID, &r.Product, &strategy, &r.Years, &r.Trials, &seed,
			&r.MeanCost, &r.StdDevCost, &r.MeanCostPerYear, &r.P5, &r.P50, &r.P95, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Strategy = models.Strategy(strategy)
		if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("bad seed %q for %s/%d: %w", seed, r.Product, r.Years, err)
		}
		if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return records, nil
}

// Runs implements RecordStore.
func (s *SQLiteStore) Runs(ctx context.Context) ([]RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, COUNT(*), COUNT(DISTINCT product),
		       MIN(years), MAX(years), MAX(trials), MIN(created_at) AS started
		FROM report_records
		GROUP BY run_id
		ORDER BY started DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			run     RunSummary
			started string
		)
		if err := rows.Scan(&run.RunID, &run.Records, &run.Products,
			&run.FromYears, &run.ToYears, &run.Trials, &started); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", started, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
