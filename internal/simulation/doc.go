// Package simulation runs the Monte Carlo cost-of-ownership model.
//
// A trial follows one product for a number of years. Every year each
// component draws one uniform number and fails when the draw is below its
// failure probability. What a failure costs depends on the product's
// strategy:
//
//   - StrategyIndependentRepair: the component is repaired for its
//     RepairCost and its own age restarts at zero.
//   - StrategyWholeUnitReplacement: components share one unit age. A
//     failure of a part flagged ReplaceEntireProduct buys the product again
//     and ends the year; other failures are repaired in place.
//
// The Driver runs many trials from one seeded stream. Each trial gets its
// own clone of the product template, so no age state crosses trials.
//
// Usage:
//
//	d := simulation.NewDriver(100000, 5, simulation.WithSeed(42))
//	result, err := d.Run(ctx, product)
//	if err != nil {
//	    return err
//	}
//	summary, _ := stats.Summarize(result.Totals)
package simulation
