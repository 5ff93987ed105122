package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Sink receives finished report records.
type Sink interface {
	Write(ctx context.Context, records []Record) error
}

// MultiSink writes to every sink in order, stopping at the first error.
type MultiSink []Sink

// Write implements Sink.
func (m MultiSink) Write(ctx context.Context, records []Record) error {
	for _, s := range m {
		if err := s.Write(ctx, records); err != nil {
			return err
		}
	}
	return nil
}

// TableSink prints records as an aligned text table.
type TableSink struct {
	W io.Writer

	// Detailed adds the spread columns (std dev and percentiles).
	Detailed bool
}

// Write implements Sink.
func (t TableSink) Write(_ context.Context, records []Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(t.W, "No records.")
		return err
	}

	nameWidth := len("Product")
	for _, r := range records {
		if len(r.Product) > nameWidth {
			nameWidth = len(r.Product)
		}
	}

	var b strings.Builder
	if t.Detailed {
		fmt.Fprintf(&b, "%-*s %5s %12s %12s %12s %12s %12s %12s\n",
			nameWidth, "Product", "Years", "Mean Cost", "Per Year", "Std Dev", "P5", "P50", "P95")
		b.WriteString(strings.Repeat("-", nameWidth+6+13*6))
		b.WriteByte('\n')
		for _, r := range records {
			fmt.Fprintf(&b, "%-*s %5d %12.2f %12.2f %12.2f %12.2f %12.2f %12.2f\n",
				nameWidth, r.Product, r.Years, r.MeanCost, r.MeanCostPerYear,
				r.StdDevCost, r.P5, r.P50, r.P95)
		}
	} else {
		fmt.Fprintf(&b, "%-*s %5s %12s %12s\n", nameWidth, "Product", "Years", "Mean Cost", "Per Year")
		b.WriteString(strings.Repeat("-", nameWidth+6+13*2))
		b.WriteByte('\n')
		for _, r := range records {
			fmt.Fprintf(&b, "%-*s %5d %12.2f %12.2f\n",
				nameWidth, r.Product, r.Years, r.MeanCost, r.MeanCostPerYear)
		}
	}

	_, err := io.WriteString(t.W, b.String())
	return err
}

// JSONSink writes records as one JSON array.
type JSONSink struct {
	W      io.Writer
	Indent bool
}

// Write implements Sink.
func (j JSONSink) Write(_ context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(j.W)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// WriteComparison prints the per-horizon comparison under a table.
func WriteComparison(w io.Writer, comparisons []Comparison) error {
	var b strings.Builder
	for _, c := range comparisons {
		if c.RunnerUp == "" {
			fmt.Fprintf(&b, "%2d years: %s only (%.2f)\n", c.Years, c.Cheapest, c.MeanCost)
			continue
		}
		fmt.Fprintf(&b, "%2d years: %s is cheaper than %s by %.2f (%.1f%%)\n",
			c.Years, c.Cheapest, c.RunnerUp, c.Savings, c.SavingsRate*100)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
