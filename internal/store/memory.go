package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/report"
)

// MemoryStore implements RecordStore in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string][]report.Record
}

var (
	_ RecordStore = (*MemoryStore)(nil)
	_ report.Sink = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string][]report.Record)}
}

// Save implements RecordStore.
func (s *MemoryStore) Save(_ context.Context, records []report.Record) error {
	for _, r := range records {
		if r.RunID == "" {
			return fmt.Errorf("%w: record for %q has no run ID", models.ErrInvalidParameter, r.Product)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		stored := s.runs[r.RunID]
		replaced := false
		for i := range stored {
			if stored[i].Product == r.Product && stored[i].Years == r.Years {
				stored[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			stored = append(stored, r)
		}
		s.runs[r.RunID] = stored
	}
	return nil
}

// Write implements report.Sink.
func (s *MemoryStore) Write(ctx context.Context, records []report.Record) error {
	return s.Save(ctx, records)
}

// List implements RecordStore.
func (s *MemoryStore) List(_ context.Context, runID string) ([]report.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	out := make([]report.Record, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Years < out[j].Years })
	return out, nil
}

// Runs implements RecordStore.
func (s *MemoryStore) Runs(_ context.Context) ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]RunSummary, 0, len(s.runs))
	for id, stored := range s.runs {
		run := RunSummary{RunID: id, Records: len(stored)}
		products := make(map[string]bool)
		for i, r := range stored {
			products[r.Product] = true
			if i == 0 || r.Years < run.FromYears {
				run.FromYears = r.Years
			}
			if r.Years > run.ToYears {
				run.ToYears = r.Years
			}
			if r.Trials > run.Trials {
				run.Trials = r.Trials
			}
			if i == 0 || r.CreatedAt.Before(run.CreatedAt) {
				run.CreatedAt = r.CreatedAt
			}
		}
		run.Products = len(products)
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].RunID < runs[j].RunID
	})
	return runs, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
