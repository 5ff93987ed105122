// Package catalog loads product definitions from YAML.
//
// A catalog lists products in the order they are reported. Component order
// inside a product is preserved and becomes the simulator's evaluation
// order.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nvandessel/repaircost/internal/models"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the parsed form of a catalog file.
type Catalog struct {
	Entries []ProductEntry `json:"products" yaml:"products"`
}

// ProductEntry is one product as written in a catalog file.
type ProductEntry struct {
	Name        string           `json:"name" yaml:"name"`
	InitialCost float64          `json:"initial_cost" yaml:"initial_cost"`
	Strategy    string           `json:"strategy" yaml:"strategy"`
	Components  []ComponentEntry `json:"components" yaml:"components"`
}

// ComponentEntry is one component as written in a catalog file.
type ComponentEntry struct {
	Name                 string    `json:"name" yaml:"name"`
	FailureProbs         []float64 `json:"failure_probs" yaml:"failure_probs"`
	RepairCost           float64   `json:"repair_cost" yaml:"repair_cost"`
	ReplaceEntireProduct bool      `json:"replace_entire_product" yaml:"replace_entire_product"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: catalog is empty", models.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: parsing catalog: %v", models.ErrConfiguration, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every product and rejects duplicate product names.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("%w: catalog has no products", models.ErrConfiguration)
	}
	seen := make(map[string]bool, len(c.Entries))
	for _, entry := range c.Entries {
		if _, err := entry.Product(); err != nil {
			return err
		}
		key := strings.ToLower(entry.Name)
		if seen[key] {
			return fmt.Errorf("%w: product %q is declared twice", models.ErrConfiguration, entry.Name)
		}
		seen[key] = true
	}
	return nil
}

// Products converts every entry to a validated models.Product, in file order.
func (c *Catalog) Products() ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(c.Entries))
	for _, entry := range c.Entries {
		p, err := entry.Product()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Lookup finds a product by name, ignoring case.
func (c *Catalog) Lookup(name string) (*models.Product, error) {
	for _, entry := range c.Entries {
		if strings.EqualFold(entry.Name, name) {
			return entry.Product()
		}
	}
	return nil, fmt.Errorf("%w: no product named %q in catalog (have: %s)",
		models.ErrConfiguration, name, strings.Join(c.Names(), ", "))
}

// Names returns the product names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, entry := range c.Entries {
		names[i] = entry.Name
	}
	return names
}

// Product converts the entry into a validated product.
func (e ProductEntry) Product() (*models.Product, error) {
	strategy, err := models.ParseStrategy(e.Strategy)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", e.Name, err)
	}
	comps := make([]models.Component, len(e.Components))
	for i, ce := range e.Components {
		comps[i] = models.Component{
			Name:                 ce.Name,
			FailureProbs:         ce.FailureProbs,
			RepairCost:           ce.RepairCost,
			ReplaceEntireProduct: ce.ReplaceEntireProduct,
		}
	}
	return models.NewProduct(e.Name, e.InitialCost, strategy, comps...)
}

// FromProducts builds a catalog from products, for writing back to YAML.
func FromProducts(products ...*models.Product) *Catalog {
	c := &Catalog{Entries: make([]ProductEntry, len(products))}
	for i, p := range products {
		entry := ProductEntry{
			Name:        p.Name,
			InitialCost: p.InitialCost,
			Strategy:    p.Strategy.String(),
			Components:  make([]ComponentEntry, len(p.Components)),
		}
		for j, comp := range p.Components {
			entry.Components[j] = ComponentEntry{
				Name:                 comp.Name,
				FailureProbs:         comp.FailureProbs,
				RepairCost:           comp.RepairCost,
				ReplaceEntireProduct: comp.ReplaceEntireProduct,
			}
		}
		c.Entries[i] = entry
	}
	return c
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}
