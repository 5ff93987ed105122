package models

import (
	"fmt"
	"math"
)

// Component is one laptop part with an age-indexed failure curve.
//
// FailureProbs[i] is the probability that the part fails during a year in
// which it is i years old. Ages past the end of the curve use the last
// entry, so the curve plateaus rather than extrapolating.
type Component struct {
	Name string `json:"name" yaml:"name"`

	// FailureProbs is indexed by age in years; every entry is in [0, 1].
	FailureProbs []float64 `json:"failure_probs" yaml:"failure_probs"`

	// RepairCost is charged when the part is repaired locally.
	RepairCost float64 `json:"repair_cost" yaml:"repair_cost"`

	// ReplaceEntireProduct means a failure of this part forces the whole
	// product to be bought again (whole-unit strategy only).
	ReplaceEntireProduct bool `json:"replace_entire_product" yaml:"replace_entire_product"`

	// Age is years since the part was last reset. Mutated during a trial.
	Age int `json:"age" yaml:"-"`
}

// Probability returns the failure probability for the component's current age.
func (c *Component) Probability() float64 {
	return c.ProbabilityAt(c.Age)
}

// ProbabilityAt returns the failure probability at the given age, clamped
// to the last curve entry for ages beyond the curve.
func (c *Component) ProbabilityAt(age int) float64 {
	if len(c.FailureProbs) == 0 {
		return 0
	}
	if age < 0 {
		age = 0
	}
	if age >= len(c.FailureProbs) {
		return c.FailureProbs[len(c.FailureProbs)-1]
	}
	return c.FailureProbs[age]
}

// IncrementAge advances the component by one year.
func (c *Component) IncrementAge() {
	c.Age++
}

// ResetAge marks the component as freshly replaced.
func (c *Component) ResetAge() {
	c.Age = 0
}

// Validate checks the component's curve and cost.
func (c *Component) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: component name is required", ErrConfiguration)
	}
	if len(c.FailureProbs) == 0 {
		return fmt.Errorf("%w: component %q has an empty failure curve", ErrConfiguration, c.Name)
	}
	for i, p := range c.FailureProbs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: component %q failure_probs[%d] = %v, must be between 0 and 1",
				ErrConfiguration, c.Name, i, p)
		}
	}
	if math.IsNaN(c.RepairCost) || math.IsInf(c.RepairCost, 0) || c.RepairCost < 0 {
		return fmt.Errorf("%w: component %q repair_cost must be a non-negative amount, got %v",
			ErrConfiguration, c.Name, c.RepairCost)
	}
	if c.Age < 0 {
		return fmt.Errorf("%w: component %q age must be non-negative, got %d", ErrConfiguration, c.Name, c.Age)
	}
	return nil
}

// clone returns a copy that shares no memory with c.
func (c Component) clone() Component {
	probs := make([]float64, len(c.FailureProbs))
	copy(probs, c.FailureProbs)
	c.FailureProbs = probs
	return c
}
