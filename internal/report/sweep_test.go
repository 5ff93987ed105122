package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/repaircost/internal/models"
)

func sweepProducts(t *testing.T) []*models.Product {
	t.Helper()
	modular, err := models.NewProduct("Modular", 1500, models.StrategyIndependentRepair,
		models.Component{Name: "CPU", FailureProbs: []float64{1.0}, RepairCost: 300})
	require.NoError(t, err)
	sealed, err := models.NewProduct("Sealed", 2000, models.StrategyWholeUnitReplacement,
		models.Component{Name: "Logic board", FailureProbs: []float64{1.0}, ReplaceEntireProduct: true})
	require.NoError(t, err)
	return []*models.Product{modular, sealed}
}

func TestSweepRun(t *testing.T) {
	s := &Sweep{Products: sweepProducts(t), FromYears: 1, ToYears: 3, Trials: 20, Seed: 1}

	records, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 6)

	want := []struct {
		product string
		years   int
		mean    float64
	}{
		{"Modular", 1, 1800},
		{"Sealed", 1, 4000},
		{"Modular", 2, 2100},
		{"Sealed", 2, 6000},
		{"Modular", 3, 2400},
		{"Sealed", 3, 8000},
	}
	for i, w := range want {
		assert.Equal(t, w.product, records[i].Product)
		assert.Equal(t, w.years, records[i].Years)
		assert.Equal(t, w.mean, records[i].MeanCost)
		assert.Equal(t, w.mean/float64(w.years), records[i].MeanCostPerYear)
		assert.Equal(t, 0.0, records[i].StdDevCost)
		assert.Equal(t, 20, records[i].Trials)
	}

	runID := records[0].RunID
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, runID, r.RunID)
	}
}

func TestSweepSeedsArePerPair(t *testing.T) {
	s := &Sweep{Seed: 10}

	seen := make(map[uint64]bool)
	for years := 1; years <= 10; years++ {
		for i := 0; i < 2; i++ {
			seed := s.SeedFor(i, years)
			assert.False(t, seen[seed], "seed %d reused", seed)
			seen[seed] = true
		}
	}
}

func TestSweepDeterministic(t *testing.T) {
	products := sweepProducts(t)
	products[0].Components[0].FailureProbs = []float64{0.3, 0.6}

	run := func() []Record {
		s := &Sweep{Products: products, FromYears: 1, ToYears: 4, Trials: 200, Seed: 77, RunID: "fixed"}
		records, err := s.Run(context.Background())
		require.NoError(t, err)
		return records
	}

	a, b := run(), run()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].MeanCost, b[i].MeanCost)
		assert.Equal(t, a[i].StdDevCost, b[i].StdDevCost)
		assert.Equal(t, "fixed", a[i].RunID)
	}
}

func TestSweepValidate(t *testing.T) {
	products := sweepProducts(t)

	tests := []struct {
		name    string
		sweep   Sweep
		wantErr error
	}{
		{"no products", Sweep{FromYears: 1, ToYears: 2, Trials: 1}, models.ErrConfiguration},
		{"nil product", Sweep{Products: []*models.Product{products[0], nil}, FromYears: 1, ToYears: 2, Trials: 1}, models.ErrConfiguration},
		{"zero start", Sweep{Products: products, FromYears: 0, ToYears: 2, Trials: 1}, models.ErrInvalidParameter},
		{"end before start", Sweep{Products: products, FromYears: 3, ToYears: 2, Trials: 1}, models.ErrInvalidParameter},
		{"no trials", Sweep{Products: products, FromYears: 1, ToYears: 2}, models.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sweep.Run(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
