package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nvandessel/repaircost/internal/models"
)

// ReadColumns parses a headerless numeric CSV and returns its columns.
// Every row must have the same number of fields. Blank lines are skipped.
func ReadColumns(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var cols [][]float64
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if cols == nil {
			cols = make([][]float64, len(record))
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: csv line %d column %d: %q is not a number",
					models.ErrInvalidParameter, line, i+1, field)
			}
			cols[i] = append(cols[i], v)
		}
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: csv has no rows", models.ErrInvalidParameter)
	}
	return cols, nil
}

// SummarizeColumns reads a numeric CSV and summarizes every column.
func SummarizeColumns(r io.Reader) ([]Summary, error) {
	cols, err := ReadColumns(r)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, len(cols))
	for i, col := range cols {
		s, err := Summarize(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		out[i] = s
	}
	return out, nil
}
