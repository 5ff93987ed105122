package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/report"
	"github.com/nvandessel/repaircost/internal/store"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Read back stored sweep reports",
		Long: `List and show sweeps stored with "repaircost sweep --save" or --sqlite.

Examples:
  repaircost runs list
  repaircost runs show 6f1c... --detailed
  repaircost runs list --sqlite ./reports.db`,
	}

	cmd.PersistentFlags().String("sqlite", "", "Report database (default ~/.repaircost/reports.db)")

	cmd.AddCommand(
		newRunsListCmd(),
		newRunsShowCmd(),
	)

	return cmd
}

func newRunsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, db, err := openRunStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				if runs == nil {
					runs = []store.RunSummary{}
				}
				return writeJSON(w, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(w, "No stored runs.")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(w, "%s  %s  %d products  years %d-%d  %d trials\n",
					r.RunID, r.CreatedAt.Local().Format("2006-01-02 15:04"),
					r.Products, r.FromYears, r.ToYears, r.Trials)
			}
			return nil
		},
	}
}

func newRunsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the report table of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, db, err := openRunStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return report.JSONSink{W: w, Indent: true}.Write(cmd.Context(), records)
			}
			detailed, _ := cmd.Flags().GetBool("detailed")
			if err := (report.TableSink{W: w, Detailed: detailed}).Write(cmd.Context(), records); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return report.WriteComparison(w, report.Compare(records))
		},
	}

	cmd.Flags().Bool("detailed", false, "Add std dev and percentile columns")

	return cmd
}

func openRunStore(cmd *cobra.Command) (*app, store.RecordStore, error) {
	a, err := loadApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := a.validate(); err != nil {
		return nil, nil, err
	}
	flagPath, _ := cmd.Flags().GetString("sqlite")
	path, err := a.databasePath(flagPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening report database: %w", err)
	}
	return a, db, nil
}
