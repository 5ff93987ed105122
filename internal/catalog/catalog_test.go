package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/repaircost/internal/models"
)

const twoProducts = `
products:
  - name: Modular
    initial_cost: 1500
    strategy: independent
    components:
      - name: CPU
        failure_probs: [1.0]
        repair_cost: 300
  - name: Sealed
    initial_cost: 2000
    strategy: whole_unit
    components:
      - name: Logic board
        failure_probs: [0.1, 0.5]
        repair_cost: 2000
        replace_entire_product: true
      - name: Screen
        failure_probs: [0.2]
        repair_cost: 150
`

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Framework Laptop", "MacBook Pro"}, c.Names())

	products, err := c.Products()
	require.NoError(t, err)
	require.Len(t, products, 2)

	fw := products[0]
	assert.Equal(t, 1500.0, fw.InitialCost)
	assert.Equal(t, models.StrategyIndependentRepair, fw.Strategy)
	assert.Len(t, fw.Components, 7)
	assert.Empty(t, fw.ReplacementComponents())

	mbp := products[1]
	assert.Equal(t, 2500.0, mbp.InitialCost)
	assert.Equal(t, models.StrategyWholeUnitReplacement, mbp.Strategy)
	assert.Len(t, mbp.Components, 7)
	assert.Equal(t, "Screen", mbp.Components[3].Name)
	assert.False(t, mbp.Components[3].ReplaceEntireProduct)
	assert.Len(t, mbp.ReplacementComponents(), 6)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(twoProducts))
	require.NoError(t, err)

	products, err := c.Products()
	require.NoError(t, err)
	require.Len(t, products, 2)

	sealed := products[1]
	assert.Equal(t, "Sealed", sealed.Name)
	assert.Equal(t, []string{"Logic board", "Screen"}, []string{sealed.Components[0].Name, sealed.Components[1].Name})
	assert.Equal(t, []float64{0.1, 0.5}, sealed.Components[0].FailureProbs)
	assert.True(t, sealed.Components[0].ReplaceEntireProduct)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"no products", "products: []\n"},
		{"unknown field", "products:\n  - name: X\n    price: 1\n"},
		{"unknown strategy", `
products:
  - name: X
    initial_cost: 1
    strategy: by_name
    components:
      - {name: CPU, failure_probs: [0.1], repair_cost: 1}
`},
		{"probability out of range", `
products:
  - name: X
    initial_cost: 1
    strategy: independent
    components:
      - {name: CPU, failure_probs: [0.1, 1.5], repair_cost: 1}
`},
		{"negative repair cost", `
products:
  - name: X
    initial_cost: 1
    strategy: independent
    components:
      - {name: CPU, failure_probs: [0.1], repair_cost: -5}
`},
		{"empty curve", `
products:
  - name: X
    initial_cost: 1
    strategy: independent
    components:
      - {name: CPU, failure_probs: [], repair_cost: 5}
`},
		{"no components", `
products:
  - name: X
    initial_cost: 1
    strategy: independent
`},
		{"duplicate product", `
products:
  - name: X
    initial_cost: 1
    strategy: independent
    components:
      - {name: CPU, failure_probs: [0.1], repair_cost: 5}
  - name: x
    initial_cost: 1
    strategy: independent
    components:
      - {name: CPU, failure_probs: [0.1], repair_cost: 5}
`},
		{"malformed yaml", "products: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			assert.Nil(t, c)
			assert.ErrorIs(t, err, models.ErrConfiguration)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoProducts), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Modular", "Sealed"}, c.Names())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	c := Default()

	p, err := c.Lookup("macbook pro")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", p.Name)

	_, err = c.Lookup("ThinkPad")
	assert.ErrorIs(t, err, models.ErrConfiguration)
	assert.Contains(t, err.Error(), "Framework Laptop")
}

func TestLookupReturnsFreshProducts(t *testing.T) {
	c := Default()

	a, err := c.Lookup("Framework Laptop")
	require.NoError(t, err)
	a.Components[0].Age = 9

	b, err := c.Lookup("Framework Laptop")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Components[0].Age)
}

func TestMarshalRoundTripKeepsOrder(t *testing.T) {
	products, err := Default().Products()
	require.NoError(t, err)

	data, err := FromProducts(products...).Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), again.Names())
	assert.Equal(t, "whole_unit", again.Entries[1].Strategy)
}
