package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/repaircost/internal/models"
)

func TestReadColumns(t *testing.T) {
	input := "100.5, 12\n200.5,24\n\n300.5,36\n"

	cols, err := ReadColumns(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, []float64{100.5, 200.5, 300.5}, cols[0])
	assert.Equal(t, []float64{12, 24, 36}, cols[1])
}

func TestReadColumnsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a number", "1,2\n3,abc\n"},
		{"ragged rows", "1,2\n3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadColumns(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := ReadColumns(strings.NewReader("1,x\n"))
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestSummarizeColumns(t *testing.T) {
	summaries, err := SummarizeColumns(strings.NewReader("10,1\n20,2\n30,3\n"))
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, 20.0, summaries[0].Mean)
	assert.Equal(t, 10.0, summaries[0].StdDev)
	assert.Equal(t, 2.0, summaries[1].Mean)
	assert.Equal(t, 1.0, summaries[1].StdDev)
}
