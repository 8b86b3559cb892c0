package edtf

import "errors"

// The two parse error kinds. Both are final for the individual input; they
// differ only in diagnostics. Use errors.Is to distinguish them.
var (
	// ErrInvalid reports input whose structure does not satisfy the grammar
	// or violates a structural rule: bad masking combinations, a certainty
	// marker on an internal component, trailing characters, malformed
	// scientific-year digit counts.
	ErrInvalid = errors.New("edtf: invalid")

	// ErrOutOfRange reports input that matched the grammar but carries a
	// numeric value outside its legal domain: month 13, day 32, a
	// nonexistent leap day, an overflowing packed year.
	ErrOutOfRange = errors.New("edtf: value out of range")
)

// ErrSeasonInterval is returned when interval iteration would have to step
// at season granularity. Seasons do not align with calendar years across
// hemispheres, so there is no defensible stepping convention; the operation
// is unsupported rather than guessed at.
var ErrSeasonInterval = errors.New("edtf: season-level interval iteration not supported")

// ErrNoIteration is returned when an Edtf value cannot be iterated: it is
// not a closed interval, or an endpoint has a masked component or a
// non-certain qualifier at the requested granularity.
var ErrNoIteration = errors.New("edtf: value does not support interval iteration")
