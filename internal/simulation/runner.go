package simulation

import (
	"fmt"

	"github.com/nvandessel/repaircost/internal/models"
)

// RunTrial simulates one trajectory of the given product over years and
// returns its total cost, starting from the purchase price.
//
// All age state on p is reset before the first year, so a product reused
// across calls never carries ages over. p is mutated; pass a Clone when
// the caller needs the template untouched. obs may be nil.
func RunTrial(p *models.Product, years int, rng Source, obs Observer) (float64, error) {
	return runTrial(p, years, rng, 0, obs)
}

func runTrial(p *models.Product, years int, rng Source, trial int, obs Observer) (float64, error) {
	if years < 0 {
		return 0, fmt.Errorf("%w: years must be non-negative, got %d", models.ErrInvalidParameter, years)
	}

	p.ResetAges()
	total := p.InitialCost

	switch p.Strategy {
	case models.StrategyIndependentRepair:
		for y := 1; y <= years; y++ {
			total += stepIndependent(p, rng, year{trial: trial, index: y, obs: obs})
		}
	case models.StrategyWholeUnitReplacement:
		unit := &UnitState{}
		for y := 1; y <= years; y++ {
			total += stepWholeUnit(p, unit, rng, year{trial: trial, index: y, obs: obs})
		}
	default:
		return 0, fmt.Errorf("%w: product %q has unknown strategy %q", models.ErrConfiguration, p.Name, p.Strategy)
	}

	return total, nil
}
