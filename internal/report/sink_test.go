package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []Record{
	{RunID: "r1", Product: "Framework Laptop", Strategy: "independent", Years: 1, Trials: 10, MeanCost: 1612.5, MeanCostPerYear: 1612.5},
	{RunID: "r1", Product: "MacBook Pro", Strategy: "whole_unit", Years: 1, Trials: 10, MeanCost: 3120, MeanCostPerYear: 3120},
}

func TestTableSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableSink{W: &buf}.Write(context.Background(), sampleRecords))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Mean Cost")
	assert.NotContains(t, lines[0], "Std Dev")
	assert.Contains(t, lines[2], "Framework Laptop")
	assert.Contains(t, lines[2], "1612.50")
	assert.Contains(t, lines[3], "3120.00")
}

func TestTableSinkDetailed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableSink{W: &buf, Detailed: true}.Write(context.Background(), sampleRecords))
	assert.Contains(t, buf.String(), "Std Dev")
	assert.Contains(t, buf.String(), "P95")
}

func TestTableSinkEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableSink{W: &buf}.Write(context.Background(), nil))
	assert.Equal(t, "No records.\n", buf.String())
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONSink{W: &buf}.Write(context.Background(), sampleRecords))

	var decoded []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "MacBook Pro", decoded[1].Product)
	assert.Contains(t, buf.String(), `"mean_cost_per_year":1612.5`)
}

func TestJSONSinkEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONSink{W: &buf}.Write(context.Background(), nil))
	assert.Equal(t, "[]\n", buf.String())
}

type failingSink struct{ err error }

func (f failingSink) Write(context.Context, []Record) error { return f.err }

type countingSink struct{ calls int }

func (c *countingSink) Write(context.Context, []Record) error {
	c.calls++
	return nil
}

func TestMultiSink(t *testing.T) {
	first, last := &countingSink{}, &countingSink{}
	boom := errors.New("boom")

	err := MultiSink{first, failingSink{boom}, last}.Write(context.Background(), sampleRecords)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, last.calls)
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, Compare(sampleRecords)))
	assert.Equal(t, " 1 years: Framework Laptop is cheaper than MacBook Pro by 1507.50 (48.3%)\n", buf.String())
}
