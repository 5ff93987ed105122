package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the product catalog",
		Long: `List, validate or print the product catalog.

The built-in catalog holds a modular Framework Laptop and a sealed MacBook
Pro. Use --catalog (or simulation.catalog in the config file) to point at
your own YAML catalog.

Examples:
  repaircost catalog list
  repaircost catalog validate --catalog laptops.yaml
  repaircost catalog show > laptops.yaml`,
	}

	cmd.AddCommand(
		newCatalogListCmd(),
		newCatalogValidateCmd(),
		newCatalogShowCmd(),
	)

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			products, err := cat.Products()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, products)
			}
			for _, p := range products {
				fmt.Fprintf(w, "%-20s %-12s %10.2f  %d components", p.Name, p.Strategy, p.InitialCost, len(p.Components))
				if critical := p.ReplacementComponents(); len(critical) > 0 {
					fmt.Fprintf(w, " (unit replaced on: %s)", strings.Join(critical, ", "))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every catalog product is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			products, err := cat.Products()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, map[string]any{"valid": true, "products": len(products)})
			}
			fmt.Fprintf(w, "Catalog OK: %d products\n", len(products))
			return nil
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [product]",
		Short: "Print the catalog, or one product, as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				p, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				cat = catalog.FromProducts(p)
			}

			w := cmd.OutOrStdout()
			if a.json {
				return writeJSON(w, cat)
			}
			data, err := cat.Marshal()
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	}
}

func loadCatalog(cmd *cobra.Command) (*app, *catalog.Catalog, error) {
	a, err := loadApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := a.validate(); err != nil {
		return nil, nil, err
	}
	cat, err := a.catalog()
	if err != nil {
		return nil, nil, err
	}
	return a, cat, nil
}
