package simulation

import "github.com/nvandessel/repaircost/internal/models"

// year carries the per-year context handed to observers.
type year struct {
	trial int
	index int
	obs   Observer
}

func (y year) emit(e FailureEvent) {
	if y.obs == nil {
		return
	}
	e.Trial = y.trial
	e.Year = y.index
	y.obs.OnFailure(e)
}

// StepIndependent advances an independent-repair product by one year and
// returns the cost accrued. Every component is evaluated, in declaration
// order, with one draw each.
func StepIndependent(p *models.Product, rng Source) float64 {
	return stepIndependent(p, rng, year{})
}

func stepIndependent(p *models.Product, rng Source, y year) float64 {
	var cost float64
	for i := range p.Components {
		c := &p.Components[i]
		prob := c.Probability()
		if rng.Float64() < prob {
			cost += c.RepairCost
			y.emit(FailureEvent{Component: c.Name, Age: c.Age, Cost: c.RepairCost})
			c.ResetAge()
			continue
		}
		c.IncrementAge()
	}
	return cost
}

// StepWholeUnit advances a whole-unit product by one year and returns the
// cost accrued.
//
// The unit age is read and then incremented before any draw. A failure of
// a ReplaceEntireProduct component charges InitialCost, sets the unit age
// back to zero and skips the remaining components for the year. Other
// failures charge RepairCost; their probability always follows the unit
// age, so they carry no age of their own.
func StepWholeUnit(p *models.Product, unit *UnitState, rng Source) float64 {
	return stepWholeUnit(p, unit, rng, year{})
}

func stepWholeUnit(p *models.Product, unit *UnitState, rng Source, y year) float64 {
	current := unit.Age
	unit.Age++

	var cost float64
	for i := range p.Components {
		c := &p.Components[i]
		prob := c.ProbabilityAt(current)
		if rng.Float64() >= prob {
			continue
		}
		if c.ReplaceEntireProduct {
			cost += p.InitialCost
			unit.Age = 0
			y.emit(FailureEvent{Component: c.Name, Age: current, Cost: p.InitialCost, ReplacedUnit: true})
			break
		}
		// Locally repaired parts keep following the unit age; there is no
		// per-component reset under this strategy.
		cost += c.RepairCost
		y.emit(FailureEvent{Component: c.Name, Age: current, Cost: c.RepairCost})
	}
	return cost
}
