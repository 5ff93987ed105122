package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect repaircost configuration",
		Long: `Show the effective configuration.

Settings are resolved in this order, later ones winning:
  1. built-in defaults
  2. ~/.repaircost/config.yaml (or --config)
  3. .env in the working directory (never overrides variables already set)
  4. REPAIRCOST_* environment variables
  5. command-line flags`,
	}

	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if err := a.validate(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, a.cfg)
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = w.Write(data)
			return err
		},
	}
}
