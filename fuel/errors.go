package fuel

import "errors"

var (
	// ErrAxisLen indicates an axis with fewer than two breakpoints.
	ErrAxisLen = errors.New("fuel: axis needs at least two breakpoints")

	// ErrAxisNotAscending indicates breakpoints that are not strictly increasing.
	ErrAxisNotAscending = errors.New("fuel: axis breakpoints must be strictly increasing")

	// ErrTableShape indicates an AFR table whose size does not match the
	// product of the axis lengths.
	ErrTableShape = errors.New("fuel: table size does not match axis dimensions")

	// ErrInjectorFlow indicates a non-positive injector flow rate.
	ErrInjectorFlow = errors.New("fuel: injector flow rate must be positive")

	// ErrDegenerateAxis indicates a zero-width axis interval reached during
	// interpolation. Axes validated by NewAxis cannot produce it.
	ErrDegenerateAxis = errors.New("fuel: zero-width axis interval")

	// ErrInvalidAFR indicates a corrected AFR at or below zero reaching the
	// fuel-mass conversion.
	ErrInvalidAFR = errors.New("fuel: corrected AFR must be positive")
)
