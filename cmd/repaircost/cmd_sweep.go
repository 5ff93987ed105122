package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/constants"
	"github.com/nvandessel/repaircost/internal/pathutil"
	"github.com/nvandessel/repaircost/internal/report"
	"github.com/nvandessel/repaircost/internal/store"
)

// sweepOutput is the JSON shape of a sweep.
type sweepOutput struct {
	RunID       string              `json:"run_id"`
	Database    string              `json:"database,omitempty"`
	Records     []report.Record     `json:"records"`
	Comparisons []report.Comparison `json:"comparisons"`
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Simulate every product over a range of horizons",
		Long: `Simulate every catalog product for each horizon from --from to --to
years and print one row per (product, horizon) with the mean total cost
and the mean cost per year, followed by which product is cheaper at each
horizon.

Every (product, horizon) pair gets its own seed derived from --seed, so a
sweep is reproducible and pairs do not share random streams.

Examples:
  repaircost sweep
  repaircost sweep --from 1 --to 5 --trials 20000 --seed 7 --detailed
  repaircost sweep --save                # store the table in ~/.repaircost/reports.db
  repaircost sweep --sqlite ./reports.db # store it in a specific database`,
		RunE: runSweep,
	}

	cmd.Flags().Int("from", constants.DefaultFromYears, "First horizon in years")
	cmd.Flags().Int("to", constants.DefaultToYears, "Last horizon in years (inclusive)")
	cmd.Flags().Int("trials", constants.DefaultTrials, "Trials per product and horizon")
	cmd.Flags().Uint64("seed", 0, "Base random seed (0 derives one from the clock)")
	cmd.Flags().Bool("detailed", false, "Add std dev and percentile columns")
	cmd.Flags().Bool("save", false, "Store the records in the configured report database")
	cmd.Flags().String("sqlite", "", "Store the records in this SQLite database")

	return cmd
}

func runSweep(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	sim := &a.cfg.Simulation
	overrideInt(cmd, "from", &sim.FromYears)
	overrideInt(cmd, "to", &sim.ToYears)
	overrideInt(cmd, "trials", &sim.Trials)
	overrideSeed(cmd, &sim.Seed)
	if err := a.validate(); err != nil {
		return err
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}
	products, err := cat.Products()
	if err != nil {
		return err
	}

	sweep := &report.Sweep{
		Products:  products,
		FromYears: sim.FromYears,
		ToYears:   sim.ToYears,
		Trials:    sim.Trials,
		Seed:      a.seed(),
		Logger:    a.logger,
	}
	records, err := sweep.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	detailed, _ := cmd.Flags().GetBool("detailed")
	var sinks report.MultiSink
	if !a.json {
		sinks = append(sinks, report.TableSink{W: w, Detailed: detailed})
	}

	var dbPath string
	sqlitePath, _ := cmd.Flags().GetString("sqlite")
	save, _ := cmd.Flags().GetBool("save")
	if save || sqlitePath != "" {
		if dbPath, err = a.databasePath(sqlitePath); err != nil {
			return err
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening report database: %w", err)
		}
		defer db.Close()
		sinks = append(sinks, db)
	}

	if err := sinks.Write(cmd.Context(), records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if dbPath != "" {
		a.logger.Info("report stored", "run_id", records[0].RunID, "database", pathutil.ShortenHome(dbPath))
	}

	comparisons := report.Compare(records)
	if a.json {
		return writeJSON(w, sweepOutput{
			RunID:       records[0].RunID,
			Database:    dbPath,
			Records:     records,
			Comparisons: comparisons,
		})
	}

	fmt.Fprintln(w)
	if err := report.WriteComparison(w, comparisons); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRun %s\n", records[0].RunID)
	return nil
}
