package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/constants"
	"github.com/nvandessel/repaircost/internal/models"
	"github.com/nvandessel/repaircost/internal/simulation"
	"github.com/nvandessel/repaircost/internal/stats"
)

// simulateOutput is the JSON shape of one simulated product.
type simulateOutput struct {
	Product  string          `json:"product"`
	Strategy models.Strategy `json:"strategy"`
	Years    int             `json:"years"`
	Seed     uint64          `json:"seed"`
	stats.Summary
	// MeanPerYear is omitted for a zero-year horizon.
	MeanPerYear *float64 `json:"mean_per_year,omitempty"`
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate total cost of ownership over one horizon",
		Long: `Run the Monte Carlo driver for one horizon and print cost statistics.

Without --product every catalog product is simulated, each from its own
seed. --csv writes the per-trial totals of a single product for later use
with "repaircost summarize".

Examples:
  repaircost simulate --product "Framework Laptop" --years 5 --seed 42
  repaircost simulate --years 3 --trials 20000 --json`,
		RunE: runSimulate,
	}

	cmd.Flags().String("product", "", "Product name (default all catalog products)")
	cmd.Flags().Int("years", constants.DefaultToYears, "Horizon in years")
	cmd.Flags().Int("trials", constants.DefaultTrials, "Number of trials")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 derives one from the clock)")
	cmd.Flags().String("csv", "", "Write per-trial totals to this CSV file (requires --product)")

	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	overrideInt(cmd, "trials", &a.cfg.Simulation.Trials)
	overrideSeed(cmd, &a.cfg.Simulation.Seed)
	if err := a.validate(); err != nil {
		return err
	}

	years, _ := cmd.Flags().GetInt("years")
	if years < 0 || years > constants.MaxYears {
		return fmt.Errorf("%w: --years must be between 0 and %d, got %d", models.ErrInvalidParameter, constants.MaxYears, years)
	}
	productName, _ := cmd.Flags().GetString("product")
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath != "" && productName == "" {
		return fmt.Errorf("%w: --csv requires --product", models.ErrInvalidParameter)
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}
	var products []*models.Product
	if productName != "" {
		p, err := cat.Lookup(productName)
		if err != nil {
			return err
		}
		products = []*models.Product{p}
	} else if products, err = cat.Products(); err != nil {
		return err
	}

	seed := a.seed()
	outputs := make([]simulateOutput, 0, len(products))
	for i, p := range products {
		d := simulation.NewDriver(a.cfg.Simulation.Trials, years,
			simulation.WithSeed(seed+uint64(i)),
			simulation.WithLogger(a.logger))
		result, err := d.Run(cmd.Context(), p)
		if err != nil {
			return err
		}

		summary, err := stats.Summarize(result.Totals)
		if err != nil {
			return err
		}
		out := simulateOutput{
			Product:  result.Product,
			Strategy: result.Strategy,
			Years:    result.Years,
			Seed:     result.Seed,
			Summary:  summary,
		}
		if years > 0 {
			perYear, err := stats.MeanPerYear(summary.Mean, years)
			if err != nil {
				return err
			}
			out.MeanPerYear = &perYear
		}
		outputs = append(outputs, out)

		if csvPath != "" {
			if err := writeTotalsCSV(csvPath, result.Totals); err != nil {
				return err
			}
			a.logger.Info("totals written", "path", csvPath, "trials", len(result.Totals))
		}
	}

	w := cmd.OutOrStdout()
	if a.json {
		return writeJSON(w, outputs)
	}
	for i, o := range outputs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printSimulateOutput(w, o)
	}
	return nil
}

func printSimulateOutput(w io.Writer, o simulateOutput) {
	fmt.Fprintf(w, "%s (%s), %d years, %d trials, seed %d\n", o.Product, o.Strategy, o.Years, o.Count, o.Seed)
	fmt.Fprintf(w, "  mean:      %.2f\n", o.Mean)
	fmt.Fprintf(w, "  std dev:   %.2f\n", o.StdDev)
	if o.MeanPerYear != nil {
		fmt.Fprintf(w, "  per year:  %.2f\n", *o.MeanPerYear)
	}
	fmt.Fprintf(w, "  min / max: %.2f / %.2f\n", o.Min, o.Max)
	fmt.Fprintf(w, "  p5 / p50 / p95: %.2f / %.2f / %.2f\n", o.P5, o.P50, o.P95)
}

func writeTotalsCSV(path string, totals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	for _, t := range totals {
		if err := cw.Write([]string{strconv.FormatFloat(t, 'f', -1, 64)}); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
