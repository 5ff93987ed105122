package models

import (
	"fmt"
	"math"
)

// Product is a named laptop configuration: a purchase price, a replacement
// strategy and an ordered list of components.
//
// Components are always evaluated in declaration order. Under the
// whole-unit strategy that order decides which failing part triggers a
// replacement in a given year, so it is part of the product definition.
//
// A Product used as a template is never mutated by the simulator; every
// trial works on its own Clone.
type Product struct {
	Name        string      `json:"name" yaml:"name"`
	InitialCost float64     `json:"initial_cost" yaml:"initial_cost"`
	Strategy    Strategy    `json:"strategy" yaml:"strategy"`
	Components  []Component `json:"components" yaml:"components"`
}

// NewProduct builds and validates a product. The components are deep
// copied, so later changes to the caller's slice do not leak in.
func NewProduct(name string, initialCost float64, strategy Strategy, components ...Component) (*Product, error) {
	p := &Product{
		Name:        name,
		InitialCost: initialCost,
		Strategy:    strategy,
		Components:  make([]Component, len(components)),
	}
	for i, c := range components {
		p.Components[i] = c.clone()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the product and every component.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrConfiguration)
	}
	if math.IsNaN(p.InitialCost) || math.IsInf(p.InitialCost, 0) || p.InitialCost < 0 {
		return fmt.Errorf("%w: product %q initial_cost must be a non-negative amount, got %v",
			ErrConfiguration, p.Name, p.InitialCost)
	}
	if !p.Strategy.Valid() {
		return fmt.Errorf("%w: product %q has unknown strategy %q", ErrConfiguration, p.Name, p.Strategy)
	}
	if len(p.Components) == 0 {
		return fmt.Errorf("%w: product %q has no components", ErrConfiguration, p.Name)
	}

	seen := make(map[string]bool, len(p.Components))
	for i := range p.Components {
		c := &p.Components[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: product %q declares component %q twice", ErrConfiguration, p.Name, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Clone returns a deep copy of the product with independent component ages.
func (p *Product) Clone() *Product {
	out := *p
	out.Components = make([]Component, len(p.Components))
	for i, c := range p.Components {
		out.Components[i] = c.clone()
	}
	return &out
}

// ResetAges sets every component age to zero.
func (p *Product) ResetAges() {
	for i := range p.Components {
		p.Components[i].ResetAge()
	}
}

// ReplacementComponents returns the names of components whose failure
// replaces the whole product, in declaration order.
func (p *Product) ReplacementComponents() []string {
	var names []string
	for _, c := range p.Components {
		if c.ReplaceEntireProduct {
			names = append(names, c.Name)
		}
	}
	return names
}
