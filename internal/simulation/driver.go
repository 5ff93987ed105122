package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nvandessel/repaircost/internal/models"
)

// Driver runs independent trials of one product over a fixed horizon.
type Driver struct {
	Trials   int
	Years    int
	Seed     uint64
	Observer Observer

	logger *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithSeed sets the seed of the driver's random stream.
func WithSeed(seed uint64) Option {
	return func(d *Driver) { d.Seed = seed }
}

// WithObserver attaches an observer that sees every failure of every trial.
func WithObserver(obs Observer) Option {
	return func(d *Driver) { d.Observer = obs }
}

// WithLogger sets the logger used for run-level messages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDriver creates a driver for the given trial count and horizon.
// Parameters are validated by Run.
func NewDriver(trials, years int, opts ...Option) *Driver {
	d := &Driver{
		Trials: trials,
		Years:  years,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Validate checks the run parameters.
func (d *Driver) Validate() error {
	if d.Trials <= 0 {
		return fmt.Errorf("%w: number of simulations must be positive, got %d", models.ErrInvalidParameter, d.Trials)
	}
	if d.Years < 0 {
		return fmt.Errorf("%w: years must be non-negative, got %d", models.ErrInvalidParameter, d.Years)
	}
	return nil
}

// Run simulates d.Trials trials of template and returns their totals.
//
// The template is validated up front and never mutated: each trial works
// on a fresh clone. All trials draw from one stream seeded with d.Seed, so
// equal parameters always give bit-identical totals. The context is
// checked between trials.
func (d *Driver) Run(ctx context.Context, template *models.Product) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("%w: product is required", models.ErrConfiguration)
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	d.logger.Debug("simulation started",
		"product", template.Name, "strategy", template.Strategy,
		"trials", d.Trials, "years", d.Years, "seed", d.Seed)

	rng := NewSource(d.Seed)
	totals := make([]float64, d.Trials)
	for i := range totals {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation of %q interrupted after %d trials: %w", template.Name, i, err)
		}
		total, err := runTrial(template.Clone(), d.Years, rng, i, d.Observer)
		if err != nil {
			return nil, err
		}
		totals[i] = total
	}

	d.logger.Debug("simulation finished",
		"product", template.Name, "trials", d.Trials, "years", d.Years,
		"elapsed", time.Since(start))

	return &Result{
		Product:  template.Name,
		Strategy: template.Strategy,
		Years:    d.Years,
		Seed:     d.Seed,
		Totals:   totals,
	}, nil
}

// Simulate runs numSimulations trials of template over years with the
// given seed and returns the per-trial totals.
func Simulate(template *models.Product, numSimulations, years int, seed uint64) ([]float64, error) {
	result, err := NewDriver(numSimulations, years, WithSeed(seed)).Run(context.Background(), template)
	if err != nil {
		return nil, err
	}
	return result.Totals, nil
}
