package models

import (
	"fmt"
	"strings"
)

// Strategy selects how a product responds to component failures.
type Strategy string

const (
	// StrategyIndependentRepair gives every component its own age; a
	// failure is repaired locally and resets only that component.
	StrategyIndependentRepair Strategy = "independent"

	// StrategyWholeUnitReplacement tracks one shared age for the product.
	// Failure of a component flagged ReplaceEntireProduct buys the product
	// again and resets the shared age; other failures are repaired locally.
	StrategyWholeUnitReplacement Strategy = "whole_unit"
)

// Valid returns true if the strategy is a recognized value.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyIndependentRepair, StrategyWholeUnitReplacement:
		return true
	}
	return false
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy maps a user-supplied name to a Strategy.
// Accepts the canonical names plus "whole-unit" and "modular"/"sealed" aliases.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "independent", "independent_repair", "modular":
		return StrategyIndependentRepair, nil
	case "whole_unit", "whole-unit", "whole_unit_replacement", "sealed":
		return StrategyWholeUnitReplacement, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q (valid: independent, whole_unit)", ErrConfiguration, s)
}
