package models

import "errors"

// Error classes returned by validation and by the simulation layers.
// Callers match them with errors.Is; the wrapped message carries detail.
var (
	// ErrConfiguration marks an invalid component, product or catalog.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidParameter marks an invalid run parameter such as a
	// non-positive trial count or a negative horizon.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDivideByZero is returned when a per-year figure is requested
	// for a zero-year horizon.
	ErrDivideByZero = errors.New("divide by zero")
)
