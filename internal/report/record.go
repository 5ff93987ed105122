// Package report turns simulation results into per-horizon cost records
// and writes them to tabular sinks.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/simulation"
	"github.com/nvandessel/repaircost/internal/stats"
)

// Record is the aggregate of one (product, horizon) simulation.
type Record struct {
	RunID           string          `json:"run_id"`
	Product         string          `json:"product"`
	Strategy        models.Strategy `json:"strategy"`
	Years           int             `json:"years"`
	Trials          int             `json:"trials"`
	Seed            uint64          `json:"seed"`
	MeanCost        float64         `json:"mean_cost"`
	StdDevCost      float64         `json:"std_dev_cost"`
	MeanCostPerYear float64         `json:"mean_cost_per_year"`
	P5              float64         `json:"p5"`
	P50             float64         `json:"p50"`
	P95             float64         `json:"p95"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewRecord aggregates a simulation result. A zero-year result has no
// per-year cost and returns models.ErrDivideByZero.
func NewRecord(result *simulation.Result, runID string) (Record, error) {
	summary, err := stats.Summarize(result.Totals)
	if err != nil {
		return Record{}, fmt.Errorf("summarizing %q over %d years: %w", result.Product, result.Years, err)
	}
	perYear, err := stats.MeanPerYear(summary.Mean, result.Years)
	if err != nil {
		return Record{}, fmt.Errorf("summarizing %q: %w", result.Product, err)
	}

	return Record{
		RunID:           runID,
		Product:         result.Product,
		Strategy:        result.Strategy,
		Years:           result.Years,
		Trials:          summary.Count,
		Seed:            result.Seed,
		MeanCost:        summary.Mean,
		StdDevCost:      summary.StdDev,
		MeanCostPerYear: perYear,
		P5:              summary.P5,
		P50:             summary.P50,
		P95:             summary.P95,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Comparison reports the cheaper product for one horizon.
type Comparison struct {
	Years       int     `json:"years"`
	Cheapest    string  `json:"cheapest"`
	MeanCost    float64 `json:"mean_cost"`
	RunnerUp    string  `json:"runner_up,omitempty"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"` // Savings / runner-up mean cost
}

// Compare groups records by horizon and names the cheapest product for
// each. Horizons come back in ascending order; ties keep record order.
func Compare(records []Record) []Comparison {
	byYears := make(map[int][]Record)
	var horizons []int
	for _, r := range records {
		if _, ok := byYears[r.Years]; !ok {
			horizons = append(horizons, r.Years)
		}
		byYears[r.Years] = append(byYears[r.Years], r)
	}
	sort.Ints(horizons)

	out := make([]Comparison, 0, len(horizons))
	for _, y := range horizons {
		group := byYears[y]
		best, second := -1, -1
		for i, r := range group {
			switch {
			case best < 0 || r.MeanCost < group[best].MeanCost:
				second = best
				best = i
			case second < 0 || r.MeanCost < group[second].MeanCost:
				second = i
			}
		}

		c := Comparison{Years: y, Cheapest: group[best].Product, MeanCost: group[best].MeanCost}
		if second >= 0 {
			c.RunnerUp = group[second].Product
			c.Savings = group[second].MeanCost - group[best].MeanCost
			if group[second].MeanCost > 0 {
				c.SavingsRate = c.Savings / group[second].MeanCost
			}
		}
		out = append(out, c)
	}
	return out
}
