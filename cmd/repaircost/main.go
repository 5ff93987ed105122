package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signalContext(context.Background())
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repaircost",
		Short: "Monte Carlo cost of ownership for repairable and sealed laptops",
		Long: `repaircost estimates what a laptop really costs to own.

It simulates yearly component failures for each product in a catalog and
prices them under the product's repair strategy: repair the failed part
(independent) or buy the whole unit again when a critical part fails
(whole_unit). Results are averaged over many trials and horizons.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.repaircost/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "Product catalog YAML (default built-in catalog)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, logfmt, json")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSimulateCmd(),
		newSweepCmd(),
		newTraceCmd(),
		newCatalogCmd(),
		newRunsCmd(),
		newSummarizeCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// signalContext returns a context cancelled on the first interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	notifySignals(ch)
	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
