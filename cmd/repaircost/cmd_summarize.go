package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/stats"
)

func newSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <file.csv>",
		Short: "Print statistics for each column of a numeric CSV",
		Long: `Read a headerless numeric CSV, such as one written by
"repaircost simulate --csv", and print count, mean, standard deviation,
min, max and percentiles for every column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			summaries, err := stats.SummarizeColumns(f)
			if err != nil {
				return fmt.Errorf("summarizing %s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(w, summaries)
			}
			for i, s := range summaries {
				fmt.Fprintf(w, "column %d: n=%d mean=%.2f std=%.2f min=%.2f max=%.2f p5=%.2f p50=%.2f p95=%.2f\n",
					i+1, s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.P5, s.P50, s.P95)
			}
			return nil
		},
	}
}
