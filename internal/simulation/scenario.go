package simulation

import "github.com/nvandessel/repaircost/internal/models"

// UnitState is the shared age of a product under the whole-unit strategy.
type UnitState struct {
	Age int
}

// FailureEvent describes one component failure inside a trial.
type FailureEvent struct {
	Trial     int     `json:"trial"`
	Year      int     `json:"year"` // 1-based year within the trial
	Component string  `json:"component"`
	Age       int     `json:"age"` // age used for the probability lookup
	Cost      float64 `json:"cost"`

	// ReplacedUnit is true when the failure bought the whole product again.
	ReplacedUnit bool `json:"replaced_unit"`
}

// Observer receives failure events as a trial runs.
type Observer interface {
	OnFailure(FailureEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(FailureEvent)

// OnFailure calls f(e).
func (f ObserverFunc) OnFailure(e FailureEvent) {
	f(e)
}

// Result is the outcome of a Monte Carlo run for one product and horizon.
type Result struct {
	Product  string          `json:"product"`
	Strategy models.Strategy `json:"strategy"`
	Years    int             `json:"years"`
	Seed     uint64          `json:"seed"`

	// Totals holds one total cost per trial, in trial order.
	Totals []float64 `json:"totals"`
}

// Trials returns the number of trials in the result.
func (r *Result) Trials() int {
	return len(r.Totals)
}
