package geom

import "math"

// Coordinate is an immutable 3-component position. Z is optional and defaults
// to zero; algorithms never invent Z values, they either carry zero through or
// interpolate the inputs' Z linearly at computed points.
//
// Coordinate is a comparable value type, so it can be used directly as a map
// key. Note that the invalid sentinel is NaN-based and therefore compares
// unequal to everything, including itself; use IsValid, not ==, to test for
// it.
type Coordinate struct {
	X, Y, Z float64
}

// InvalidCoordinate signals a failed computation: no intersection, parallel
// lines, a degenerate result. It is an expected outcome of geometric queries,
// not an error.
var InvalidCoordinate = Coordinate{math.NaN(), math.NaN(), math.NaN()}

// IsValid reports whether the coordinate carries actual numbers rather than
// the NaN sentinel.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsNaN(c.Z)
}

// Equals is exact component-wise equality. For tolerance-aware comparison,
// round both sides through a PrecisionModel first.
func (c Coordinate) Equals(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// Equals2D ignores Z.
func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// Near is tolerance-based 2-D equality, for use where no precision model is
// in play.
func (c Coordinate) Near(other Coordinate) bool {
	return Equal(c.X, other.X) && Equal(c.Y, other.Y)
}

// Sub gives the direction vector pointing from other to c.
func (c Coordinate) Sub(other Coordinate) CoordinateVector {
	return CoordinateVector{c.X - other.X, c.Y - other.Y}
}

// Add displaces the coordinate by a vector. Z is carried through unchanged.
func (c Coordinate) Add(v CoordinateVector) Coordinate {
	return Coordinate{c.X + v.DX, c.Y + v.DY, c.Z}
}

// Distance is the 2-D Euclidean distance to another coordinate.
func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, which lets the monotone machinery
// assume Y values are never equal.
func (c Coordinate) Below(other Coordinate) bool {
	if Equal(c.Y, other.Y) {
		return c.X < other.X
	}
	return c.Y < other.Y
}

func (c Coordinate) Above(other Coordinate) bool {
	return !c.Below(other)
}

// CoordinateVector is a 2-D direction. Paired with an origin Coordinate it
// represents an infinite line.
type CoordinateVector struct {
	DX, DY float64
}

// Cross is the 2-D cross product (the Z component of the 3-D one). Zero means
// parallel directions; the sign gives the turn direction.
func (v CoordinateVector) Cross(other CoordinateVector) float64 {
	return v.DX*other.DY - v.DY*other.DX
}

func (v CoordinateVector) Dot(other CoordinateVector) float64 {
	return v.DX*other.DX + v.DY*other.DY
}

func (v CoordinateVector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// IsZero reports a degenerate (directionless) vector within Tolerance.
func (v CoordinateVector) IsZero() bool {
	return Equal(v.DX, 0) && Equal(v.DY, 0)
}

// Scale multiplies both components. No normalization is performed.
func (v CoordinateVector) Scale(f float64) CoordinateVector {
	return CoordinateVector{v.DX * f, v.DY * f}
}

// Orient2D is twice the signed area of the triangle a, b, c. Positive means c
// lies to the left of the directed line a->b (a counterclockwise turn),
// negative to the right, near-zero collinear.
func Orient2D(a, b, c Coordinate) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// IsCollinear reports whether three points lie on one line within Tolerance.
func IsCollinear(a, b, c Coordinate) bool {
	return Equal(Orient2D(a, b, c), 0)
}
