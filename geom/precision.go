package geom

import "math"

// PrecisionModel rounds coordinates onto a fixed grid so that
// near-coincident intersection points collapse to a single coordinate. This
// is what keeps degenerate clipping inputs (shared edges, tangential touches)
// from exploding into clouds of almost-equal vertices.
//
// The zero value performs no rounding at all (full double precision). A model
// is immutable and safe to share between goroutines.
type PrecisionModel struct {
	// Scale is the grid cell size. Non-positive means identity.
	Scale float64
}

// FixedPrecision builds a model that snaps values to multiples of scale.
func FixedPrecision(scale float64) PrecisionModel {
	return PrecisionModel{Scale: scale}
}

// Round snaps a single value. It is deterministic and idempotent:
// Round(Round(x)) == Round(x).
func (m PrecisionModel) Round(v float64) float64 {
	if m.Scale <= 0 {
		return v
	}
	return math.Round(v/m.Scale) * m.Scale
}

// RoundCoordinate snaps all three components. The invalid sentinel passes
// through untouched.
func (m PrecisionModel) RoundCoordinate(c Coordinate) Coordinate {
	if !c.IsValid() {
		return c
	}
	return Coordinate{m.Round(c.X), m.Round(c.Y), m.Round(c.Z)}
}

// Equal2D reports whether two coordinates coincide in the plane once both
// are snapped to the model's grid. The identity model falls back to the
// package tolerance so that near-duplicate intersection points still merge.
func (m PrecisionModel) Equal2D(a, b Coordinate) bool {
	if m.Scale <= 0 {
		return a.Near(b)
	}
	ra, rb := m.RoundCoordinate(a), m.RoundCoordinate(b)
	return ra.Equals2D(rb)
}
