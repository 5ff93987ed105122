package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/repaircost/internal/models"
)

func TestRunTrialZeroYearsReturnsInitialCost(t *testing.T) {
	products := []*models.Product{
		mustProduct(t, "modular", 1500, models.StrategyIndependentRepair,
			models.Component{Name: "CPU", FailureProbs: []float64{1}, RepairCost: 300}),
		mustProduct(t, "sealed", 2500, models.StrategyWholeUnitReplacement,
			models.Component{Name: "CPU", FailureProbs: []float64{1}, ReplaceEntireProduct: true}),
	}

	for _, p := range products {
		t.Run(p.Name, func(t *testing.T) {
			total, err := RunTrial(p, 0, NewSequence(), nil)
			require.NoError(t, err)
			assert.Equal(t, p.InitialCost, total)
		})
	}
}

func TestRunTrialCertainRepairEveryYear(t *testing.T) {
	p := mustProduct(t, "modular", 1500, models.StrategyIndependentRepair,
		models.Component{Name: "CPU", FailureProbs: []float64{1.0}, RepairCost: 300},
	)

	total, err := RunTrial(p, 3, NewSource(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 2400.0, total)
}

func TestRunTrialCertainReplacementEveryYear(t *testing.T) {
	p := mustProduct(t, "sealed", 2000, models.StrategyWholeUnitReplacement,
		models.Component{Name: "Logic board", FailureProbs: []float64{1.0}, ReplaceEntireProduct: true},
	)

	total, err := RunTrial(p, 2, NewSource(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, total)
}

func TestRunTrialWholeUnitFollowsUnitAge(t *testing.T) {
	p := mustProduct(t, "sealed", 1000, models.StrategyWholeUnitReplacement,
		models.Component{Name: "CPU", FailureProbs: []float64{0, 0, 1}, ReplaceEntireProduct: true},
	)

	// Years 1 and 2 cannot fail; year 3 replaces; years 4 and 5 are at
	// unit age 0 and 1 again.
	rec := &Recorder{}
	total, err := RunTrial(p, 5, NewSequence(0.5, 0.5, 0.5, 0.5, 0.5), rec)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, total)
	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].Year)
	assert.Equal(t, 2, events[0].Age)
}

func TestRunTrialWholeUnitLocalRepairNeverResets(t *testing.T) {
	p := mustProduct(t, "sealed", 1000, models.StrategyWholeUnitReplacement,
		models.Component{Name: "Screen", FailureProbs: []float64{0, 1}, RepairCost: 100},
	)

	total, err := RunTrial(p, 3, NewSequence(0.5, 0.5, 0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total)
}

func TestRunTrialResetsLeftoverAges(t *testing.T) {
	p := mustProduct(t, "modular", 1000, models.StrategyIndependentRepair,
		models.Component{Name: "CPU", FailureProbs: []float64{0, 1}, RepairCost: 300},
	)
	p.Components[0].Age = 5

	// A stale age of 5 would fail in year one; a reset product cannot.
	total, err := RunTrial(p, 1, NewSequence(0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, total)
	assert.Equal(t, 1, p.Components[0].Age)
}

func TestRunTrialNegativeYears(t *testing.T) {
	p := mustProduct(t, "modular", 1000, models.StrategyIndependentRepair,
		models.Component{Name: "CPU", FailureProbs: []float64{0.1}, RepairCost: 300},
	)

	_, err := RunTrial(p, -1, NewSource(1), nil)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestRunTrialUnknownStrategy(t *testing.T) {
	p := &models.Product{
		Name:        "by-name",
		InitialCost: 1000,
		Strategy:    models.Strategy("MacBook Pro"),
		Components:  []models.Component{{Name: "CPU", FailureProbs: []float64{0.1}}},
	}

	_, err := RunTrial(p, 1, NewSource(1), nil)
	assert.ErrorIs(t, err, models.ErrConfiguration)
}

func TestRunTrialEmitsYearNumbers(t *testing.T) {
	p := mustProduct(t, "modular", 1000, models.StrategyIndependentRepair,
		models.Component{Name: "CPU", FailureProbs: []float64{1}, RepairCost: 300},
		models.Component{Name: "RAM", FailureProbs: []float64{0}, RepairCost: 100},
	)

	rec := &Recorder{}
	_, err := RunTrial(p, 3, NewSource(3), rec)
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Year)
		assert.Equal(t, "CPU", e.Component)
		assert.Equal(t, 300.0, e.Cost)
		assert.False(t, e.ReplacedUnit)
	}
	assert.Equal(t, map[string]int{"CPU": 3}, rec.CountByComponent())
}
