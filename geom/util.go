package geom

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute slack used for raw float comparisons in the
// geometric predicates. Coordinate-level snapping is the job of
// PrecisionModel; this constant only guards against the noise floor of
// double arithmetic (near-zero cross products, near-equal parameters).
const Tolerance = 1e-9

// Equal compares two floats within Tolerance. Exact comparison would shave
// off absurdly thin slivers on nearly-collinear edges, so everything in this
// package that asks "is this zero" or "are these the same" goes through here.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index for length n, but unlike the raw modulo operator it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
