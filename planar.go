// Package planar is a 2-D computational geometry toolkit: polygon boolean
// operations (intersection and both differences via Greiner-Hormann or
// Weiler-Atherton clipping), sweep-line segment intersection detection,
// point-in-polygon and winding-number classification, Minkowski-sum
// buffering, monotone triangulation, approximate convex hulls, and
// rectangular window clipping.
//
// All operations share one data model (coordinate rings, polygons with
// holes) and one numeric discipline (an optional PrecisionModel snapping
// coordinates to a grid before comparison). The geom subpackage panics on
// contract violations; this package converts those panics into errors at
// the public boundary.
package planar

import "github.com/osuushi/planar/geom"

type Coordinate = geom.Coordinate
type Ring = geom.Ring
type Polygon = geom.Polygon
type PrecisionModel = geom.PrecisionModel
type ClipResult = geom.ClipResult
type Triangle = geom.Triangle
type Envelope = geom.Envelope

var (
	ErrInvalidArgument = geom.ErrInvalidArgument
	ErrDomain          = geom.ErrDomain
)

// FixedPrecision returns a precision model snapping coordinates to a grid
// of the given scale, e.g. 0.001 for millimeter-style snapping. The zero
// PrecisionModel performs no rounding.
func FixedPrecision(scale float64) PrecisionModel {
	return geom.FixedPrecision(scale)
}

// Clip computes all three boolean-operation parts at once: Internal is
// A ∩ B, ExternalFirst is A − B, and ExternalSecond is B − A. Shells in the
// result wind counterclockwise and holes clockwise.
//
// Both polygons must be valid (closed, simple, holes nested in the shell).
func Clip(a, b Polygon, pm PrecisionModel) (result ClipResult, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			result = ClipResult{}
			err = recovered
		}
	}()
	return geom.GreinerHormann{Precision: pm}.Clip(a, b), nil
}

// ClipWeilerAtherton is Clip via the Weiler-Atherton bookkeeping instead of
// Greiner-Hormann entry/exit flags. The two agree on valid input; this one
// exists for cross-checking and for callers that prefer its arc-splicing
// behavior on tangential geometry.
func ClipWeilerAtherton(a, b Polygon, pm PrecisionModel) (result ClipResult, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			result = ClipResult{}
			err = recovered
		}
	}()
	return geom.WeilerAtherton{Precision: pm}.Clip(a, b), nil
}

// Intersections reports every pairwise crossing among the coordinate chains
// using a Bentley-Ottmann sweep. Closed rings should be passed closed
// (first == last); duplicates appear when more than two segments meet at
// one point.
func Intersections(pm PrecisionModel, chains ...[]Coordinate) (points []Coordinate, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			points = nil
			err = recovered
		}
	}()
	return geom.Intersections(pm, chains...), nil
}

// Intersects answers the Shamos-Hoey yes/no form of Intersections, stopping
// at the first crossing found.
func Intersects(chains ...[]Coordinate) (crosses bool, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			crosses = false
			err = recovered
		}
	}()
	return geom.Intersects(chains...), nil
}

// Triangulate splits a simple polygon with holes into triangles containing
// only the original vertices.
func Triangulate(p Polygon) (triangles []Triangle, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			triangles = nil
			err = recovered
		}
	}()
	return geom.Triangulate(p), nil
}

// Buffer grows a counterclockwise, hole-free polygon by radius using a
// regular polygon approximation of a disc.
func Buffer(p Polygon, radius float64, segments int, pm PrecisionModel) (out Polygon, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			out = Polygon{}
			err = recovered
		}
	}()
	return geom.Buffer(pm, p, radius, segments), nil
}

// MinkowskiSum buffers a hole-free counterclockwise polygon by an arbitrary
// convex counterclockwise addend ring.
func MinkowskiSum(p Polygon, addend Ring, pm PrecisionModel) (out Polygon, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			out = Polygon{}
			err = recovered
		}
	}()
	return geom.MinkowskiSum(pm, p, addend), nil
}

// ApproximateConvexHull computes a Bentley-Faust-Preparata hull over the
// points using the given number of vertical strips. More strips trade speed
// for accuracy; the result never deviates from the true hull by more than
// one strip width.
func ApproximateConvexHull(points []Coordinate, strips int) (hull Ring, err error) {
	defer func() {
		if recovered := geom.RecoverError(recover()); recovered != nil {
			hull = nil
			err = recovered
		}
	}()
	return geom.ApproximateConvexHull(points, strips), nil
}

// WindingNumber counts how many times the ring winds counterclockwise
// around the point. Zero means outside for simple rings.
func WindingNumber(r Ring, p Coordinate) int {
	return geom.WindingNumber(r, p)
}

// ClipToWindow clips a coordinate chain against a rectangular envelope with
// Cohen-Sutherland trivial accept/reject, returning the runs that survive.
func ClipToWindow(e Envelope, chain []Coordinate) [][]Coordinate {
	return e.ClipChain(chain)
}
