// Package store keeps report records from past sweeps so they can be
// listed and read back.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/nvandessel/repaircost/internal/report"
)

// ErrRunNotFound is returned when no records exist for a run ID.
var ErrRunNotFound = errors.New("run not found")

// RunSummary describes one stored sweep.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	Records   int       `json:"records"`
	Products  int       `json:"products"`
	FromYears int       `json:"from_years"`
	ToYears   int       `json:"to_years"`
	Trials    int       `json:"trials"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordStore persists aggregated report records. Trial totals are
// never stored.
type RecordStore interface {
	// Save stores records. A record with the same run, product and
	// horizon as a stored one replaces it.
	Save(ctx context.Context, records []report.Record) error

	// List returns the records of one run ordered by horizon, then in
	// the order they were saved.
	List(ctx context.Context, runID string) ([]report.Record, error)

	// Runs returns one summary per stored run, newest first.
	Runs(ctx context.Context) ([]RunSummary, error)

	Close() error
}
