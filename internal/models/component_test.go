package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentProbabilityAt(t *testing.T) {
	c := Component{Name: "CPU", FailureProbs: []float64{0.05, 0.1, 0.4}}

	tests := []struct {
		name string
		age  int
		want float64
	}{
		{"first year", 0, 0.05},
		{"middle of curve", 1, 0.1},
		{"last entry", 2, 0.4},
		{"one past the curve plateaus", 3, 0.4},
		{"far past the curve plateaus", 250, 0.4},
		{"negative age reads year zero", -1, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ProbabilityAt(tt.age))
		})
	}
}

func TestComponentPlateauLaw(t *testing.T) {
	curves := [][]float64{
		{1.0},
		{0.1, 0.2},
		{0.05, 0.10, 0.15, 0.2, 0.4, 0.6, 0.8, 0.99, 1.0, 1.0},
	}
	for _, curve := range curves {
		c := Component{Name: "part", FailureProbs: curve}
		last := curve[len(curve)-1]
		for age := len(curve); age < len(curve)+50; age++ {
			require.Equal(t, last, c.ProbabilityAt(age), "age %d", age)
		}
	}
}

func TestComponentAgeMutators(t *testing.T) {
	c := Component{Name: "Screen", FailureProbs: []float64{0.1, 0.2, 0.3}}

	assert.Equal(t, 0.1, c.Probability())
	c.IncrementAge()
	c.IncrementAge()
	assert.Equal(t, 2, c.Age)
	assert.Equal(t, 0.3, c.Probability())

	c.ResetAge()
	assert.Equal(t, 0, c.Age)
	assert.Equal(t, 0.1, c.Probability())
}

func TestComponentValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Component
		wantErr bool
	}{
		{"valid", Component{Name: "RAM", FailureProbs: []float64{0, 0.5, 1}, RepairCost: 100}, false},
		{"zero repair cost", Component{Name: "RAM", FailureProbs: []float64{0.1}}, false},
		{"missing name", Component{FailureProbs: []float64{0.1}}, true},
		{"empty curve", Component{Name: "RAM"}, true},
		{"probability above one", Component{Name: "RAM", FailureProbs: []float64{0.1, 1.01}}, true},
		{"negative probability", Component{Name: "RAM", FailureProbs: []float64{-0.1}}, true},
		{"NaN probability", Component{Name: "RAM", FailureProbs: []float64{math.NaN()}}, true},
		{"negative repair cost", Component{Name: "RAM", FailureProbs: []float64{0.1}, RepairCost: -1}, true},
		{"NaN repair cost", Component{Name: "RAM", FailureProbs: []float64{0.1}, RepairCost: math.NaN()}, true},
		{"negative age", Component{Name: "RAM", FailureProbs: []float64{0.1}, Age: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}
