package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/constants"
	"github.com/nvandessel/repaircost/internal/logging"
	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/simulation"
)

// traceOutput is the JSON shape of a traced trial.
type traceOutput struct {
	Product  string                    `json:"product"`
	Strategy models.Strategy           `json:"strategy"`
	Years    int                       `json:"years"`
	Seed     uint64                    `json:"seed"`
	Total    float64                   `json:"total"`
	Events   []simulation.FailureEvent `json:"events"`
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run one trial and list every failure",
		Long: `Run a single trial of one product and print each component failure
with the year it happened, the age used for the probability lookup and
what it cost.

Examples:
  repaircost trace --product "MacBook Pro" --years 8 --seed 3
  repaircost trace --product "Framework Laptop" --events trace.jsonl`,
		RunE: runTrace,
	}

	cmd.Flags().String("product", "", "Product name (required)")
	cmd.Flags().Int("years", constants.DefaultTraceYears, "Horizon in years")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 derives one from the clock)")
	cmd.Flags().String("events", "", "Append events as JSON lines to this file")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func runTrace(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	overrideSeed(cmd, &a.cfg.Simulation.Seed)
	if err := a.validate(); err != nil {
		return err
	}

	years, _ := cmd.Flags().GetInt("years")
	if years < 0 || years > constants.MaxYears {
		return fmt.Errorf("%w: --years must be between 0 and %d, got %d", models.ErrInvalidParameter, constants.MaxYears, years)
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("product")
	product, err := cat.Lookup(name)
	if err != nil {
		return err
	}

	var eventLog *logging.EventLog
	if path, _ := cmd.Flags().GetString("events"); path != "" {
		if eventLog, err = logging.NewEventLog(path); err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		defer eventLog.Close()
	}

	seed := a.seed()
	rec := &simulation.Recorder{}
	obs := simulation.ObserverFunc(func(e simulation.FailureEvent) {
		rec.OnFailure(e)
		a.logger.Log(cmd.Context(), logging.LevelTrace, "failure",
			"year", e.Year, "component", e.Component, "age", e.Age, "cost", e.Cost)
		eventLog.Log(map[string]any{
			"product":       product.Name,
			"seed":          seed,
			"year":          e.Year,
			"component":     e.Component,
			"age":           e.Age,
			"cost":          e.Cost,
			"replaced_unit": e.ReplacedUnit,
		})
	})

	total, err := simulation.RunTrial(product, years, simulation.NewSource(seed), obs)
	if err != nil {
		return err
	}

	events := rec.Events()
	w := cmd.OutOrStdout()
	if a.json {
		return writeJSON(w, traceOutput{
			Product:  product.Name,
			Strategy: product.Strategy,
			Years:    years,
			Seed:     seed,
			Total:    total,
			Events:   events,
		})
	}

	fmt.Fprintf(w, "%s (%s), %d years, seed %d\n", product.Name, product.Strategy, years, seed)
	fmt.Fprintf(w, "  purchase           %10.2f\n", product.InitialCost)
	if len(events) == 0 {
		fmt.Fprintln(w, "  no failures")
	}
	for _, e := range events {
		note := ""
		if e.ReplacedUnit {
			note = "  unit replaced"
		}
		fmt.Fprintf(w, "  year %2d  %-16s age %2d  %10.2f%s\n", e.Year, e.Component, e.Age, e.Cost, note)
	}
	fmt.Fprintf(w, "  total              %10.2f\n", total)
	if len(events) > 0 {
		fmt.Fprintf(w, "%d failures, %d unit replacements\n", len(events), len(rec.Replacements()))
	}
	return nil
}
