package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/simulation"
)

// horizonStride separates the seeds of consecutive horizons.
const horizonStride = 1_000_003

// Sweep simulates every product over a range of horizons.
type Sweep struct {
	Products  []*models.Product
	FromYears int
	ToYears   int
	Trials    int
	Seed      uint64

	// RunID tags every record. A random UUID is used when empty.
	RunID string

	Logger *slog.Logger
}

// Validate checks the sweep parameters.
func (s *Sweep) Validate() error {
	if len(s.Products) == 0 {
		return fmt.Errorf("%w: sweep needs at least one product", models.ErrConfiguration)
	}
	for i, p := range s.Products {
		if p == nil {
			return fmt.Errorf("%w: sweep product %d is nil", models.ErrConfiguration, i)
		}
	}
	if s.FromYears < 1 {
		return fmt.Errorf("%w: sweep must start at one year or more, got %d", models.ErrInvalidParameter, s.FromYears)
	}
	if s.ToYears < s.FromYears {
		return fmt.Errorf("%w: sweep end %d is before start %d", models.ErrInvalidParameter, s.ToYears, s.FromYears)
	}
	if s.Trials <= 0 {
		return fmt.Errorf("%w: number of simulations must be positive, got %d", models.ErrInvalidParameter, s.Trials)
	}
	return nil
}

// SeedFor returns the seed used for a product index and horizon. Every
// (product, horizon) pair draws from its own stream.
func (s *Sweep) SeedFor(productIndex, years int) uint64 {
	return s.Seed + uint64(years)*horizonStride + uint64(productIndex)
}

// Run simulates horizons FromYears..ToYears for every product and returns
// one record per pair, ordered by horizon and then catalog order.
func (s *Sweep) Run(ctx context.Context) ([]Record, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := s.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	logger.Info("sweep started",
		"run_id", runID, "products", len(s.Products),
		"from", s.FromYears, "to", s.ToYears, "trials", s.Trials, "seed", s.Seed)

	records := make([]Record, 0, len(s.Products)*(s.ToYears-s.FromYears+1))
	for years := s.FromYears; years <= s.ToYears; years++ {
		for i, p := range s.Products {
			d := simulation.NewDriver(s.Trials, years,
				simulation.WithSeed(s.SeedFor(i, years)),
				simulation.WithLogger(logger))
			result, err := d.Run(ctx, p)
			if err != nil {
				return nil, fmt.Errorf("sweep %s over %d years: %w", p.Name, years, err)
			}
			rec, err := NewRecord(result, runID)
			if err != nil {
				return nil, err
			}
			logger.Debug("horizon simulated",
				"product", rec.Product, "years", rec.Years,
				"mean_cost", rec.MeanCost, "mean_cost_per_year", rec.MeanCostPerYear)
			records = append(records, rec)
		}
	}

	logger.Info("sweep finished", "run_id", runID, "records", len(records))
	return records, nil
}
