package geom

import "math"

// Segment is a closed straight segment between two coordinates. All methods
// are pure 2-D computations; Z is only consulted when interpolating new
// points.
type Segment struct {
	Start, End Coordinate
}

// Vector gives the direction from Start to End.
func (s Segment) Vector() CoordinateVector {
	return s.End.Sub(s.Start)
}

// Length is the 2-D length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint is the centroid of the segment, with Z interpolated.
func (s Segment) Midpoint() Coordinate {
	return Coordinate{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
		Z: (s.Start.Z + s.End.Z) / 2,
	}
}

// PointAt returns the coordinate at parameter t in [0, 1] along the segment,
// interpolating Z linearly.
func (s Segment) PointAt(t float64) Coordinate {
	return Coordinate{
		X: s.Start.X + t*(s.End.X-s.Start.X),
		Y: s.Start.Y + t*(s.End.Y-s.Start.Y),
		Z: s.Start.Z + t*(s.End.Z-s.Start.Z),
	}
}

// PointsDown reports whether the segment points lexicographically downward.
// Horizontal segments "point down" when they run right-to-left, because of
// the rotated-coordinate convention in Coordinate.Below.
func (s Segment) PointsDown() bool {
	return s.End.Below(s.Start)
}

// IsRightOf reports whether the segment passes strictly to the right of the
// point at the point's Y value. Only meaningful when the segment's endpoints
// straddle the point lexicographically; the ray-casting loop guarantees that.
func (s Segment) IsRightOf(p Coordinate) bool {
	if Equal(s.Start.Y, s.End.Y) {
		// A straddling horizontal edge can only pass through p itself, which the
		// boundary pre-check has already excluded, so the answer is arbitrary.
		return math.Max(s.Start.X, s.End.X) > p.X
	}
	x := s.Start.X + (s.End.X-s.Start.X)*(p.Y-s.Start.Y)/(s.End.Y-s.Start.Y)
	return x > p.X
}

// inBounds reports whether p lies inside the segment's bounding box, expanded
// by Tolerance.
func (s Segment) inBounds(p Coordinate) bool {
	return p.X >= math.Min(s.Start.X, s.End.X)-Tolerance &&
		p.X <= math.Max(s.Start.X, s.End.X)+Tolerance &&
		p.Y >= math.Min(s.Start.Y, s.End.Y)-Tolerance &&
		p.Y <= math.Max(s.Start.Y, s.End.Y)+Tolerance
}

// boundsOverlap is the cheap envelope rejection test between two segments.
func (s Segment) boundsOverlap(o Segment) bool {
	if math.Max(s.Start.X, s.End.X) < math.Min(o.Start.X, o.End.X)-Tolerance ||
		math.Min(s.Start.X, s.End.X) > math.Max(o.Start.X, o.End.X)+Tolerance ||
		math.Max(s.Start.Y, s.End.Y) < math.Min(o.Start.Y, o.End.Y)-Tolerance ||
		math.Min(s.Start.Y, s.End.Y) > math.Max(o.Start.Y, o.End.Y)+Tolerance {
		return false
	}
	return true
}

// Contains reports whether the point lies on the closed segment: the cross
// product with the segment direction is zero and the point is within the
// segment's bounding box.
func (s Segment) Contains(p Coordinate) bool {
	return s.inBounds(p) && IsCollinear(s.Start, s.End, p)
}

// Distance is the minimum distance from the point to the closed segment.
func (s Segment) Distance(p Coordinate) float64 {
	v := s.Vector()
	if v.IsZero() {
		return s.Start.Distance(p)
	}
	t := p.Sub(s.Start).Dot(v) / v.Dot(v)
	switch {
	case t <= 0:
		return s.Start.Distance(p)
	case t >= 1:
		return s.End.Distance(p)
	}
	return s.PointAt(t).Distance(p)
}

// DistanceToSegment is the minimum distance between two closed segments,
// zero when they touch or cross.
func (s Segment) DistanceToSegment(o Segment) float64 {
	if s.Intersects(o) {
		return 0
	}
	d := s.Distance(o.Start)
	d = math.Min(d, s.Distance(o.End))
	d = math.Min(d, o.Distance(s.Start))
	return math.Min(d, o.Distance(s.End))
}

// sharesEndpoint reports whether the two segments have a common endpoint.
func (s Segment) sharesEndpoint(o Segment) bool {
	return s.Start.Near(o.Start) || s.Start.Near(o.End) ||
		s.End.Near(o.Start) || s.End.Near(o.End)
}

// Intersects reports whether the closed segments have at least one common
// point. Endpoint touches count.
func (s Segment) Intersects(o Segment) bool {
	return len(s.Intersection(o, PrecisionModel{})) > 0
}

// InternalIntersects is like Intersects but a contact that is an endpoint of
// both segments does not count. Polygon traversal uses this to keep ring
// joints from reading as crossings.
func (s Segment) InternalIntersects(o Segment) bool {
	return len(s.InternalIntersection(o, PrecisionModel{})) > 0
}

// Intersection returns the common points of two closed segments, rounded per
// the precision model: nil when disjoint, one coordinate for a proper or
// touching intersection, and the two overlap extremes for collinear
// overlapping segments. Z on computed points is interpolated along s.
func (s Segment) Intersection(o Segment, pm PrecisionModel) []Coordinate {
	return s.intersection(o, pm, false)
}

// InternalIntersection is Intersection minus shared endpoints: a point that
// is an endpoint of both segments is not reported, and a collinear overlap
// that degenerates to such a point is dropped.
func (s Segment) InternalIntersection(o Segment, pm PrecisionModel) []Coordinate {
	return s.intersection(o, pm, true)
}

func (s Segment) intersection(o Segment, pm PrecisionModel, internal bool) []Coordinate {
	if !s.boundsOverlap(o) {
		return nil
	}
	d1 := s.Vector()
	d2 := o.Vector()
	den := d1.Cross(d2)

	if Equal(den, 0) {
		// Parallel. Unless collinear there is nothing to report.
		if !IsCollinear(s.Start, s.End, o.Start) {
			return nil
		}
		return s.collinearOverlap(o, pm, internal)
	}

	// The division is safe: den is bounded away from zero.
	c := o.Start.Sub(s.Start)
	t := c.Cross(d2) / den
	u := c.Cross(d1) / den
	if t < -Tolerance || t > 1+Tolerance || u < -Tolerance || u > 1+Tolerance {
		return nil
	}
	p := pm.RoundCoordinate(s.PointAt(clamp01(t)))
	if internal && isEndpointOfBoth(p, s, o, pm) {
		return nil
	}
	return []Coordinate{p}
}

// collinearOverlap projects o's endpoints onto s and reports the overlap per
// the 0/1/2-point rule.
func (s Segment) collinearOverlap(o Segment, pm PrecisionModel, internal bool) []Coordinate {
	v := s.Vector()
	if v.IsZero() {
		if o.Contains(s.Start) {
			return []Coordinate{pm.RoundCoordinate(s.Start)}
		}
		return nil
	}
	lenSq := v.Dot(v)
	t0 := o.Start.Sub(s.Start).Dot(v) / lenSq
	t1 := o.End.Sub(s.Start).Dot(v) / lenSq
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := math.Max(t0, 0)
	hi := math.Min(t1, 1)
	if hi < lo-Tolerance {
		return nil
	}
	if Equal(lo, hi) {
		// The overlap is a single touching point.
		p := pm.RoundCoordinate(s.PointAt(clamp01(lo)))
		if internal && isEndpointOfBoth(p, s, o, pm) {
			return nil
		}
		return []Coordinate{p}
	}
	a := pm.RoundCoordinate(s.PointAt(clamp01(lo)))
	b := pm.RoundCoordinate(s.PointAt(clamp01(hi)))
	return []Coordinate{a, b}
}

func isEndpointOfBoth(p Coordinate, s, o Segment, pm PrecisionModel) bool {
	onS := pm.Equal2D(p, s.Start) || pm.Equal2D(p, s.End)
	onO := pm.Equal2D(p, o.Start) || pm.Equal2D(p, o.End)
	return onS && onO
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Line is an infinite line given by an origin and a direction vector.
type Line struct {
	Origin    Coordinate
	Direction CoordinateVector
}

// IsParallel reports whether two lines have parallel directions (zero cross
// product within Tolerance). Coincident lines are parallel too.
func (l Line) IsParallel(o Line) bool {
	return Equal(l.Direction.Cross(o.Direction), 0)
}

// Coincides reports whether the two lines are the same line: parallel, with
// the other's origin on this line.
func (l Line) Coincides(o Line) bool {
	return l.IsParallel(o) &&
		Equal(o.Origin.Sub(l.Origin).Cross(l.Direction), 0)
}

// Intersection returns the single common point of two infinite lines, or
// InvalidCoordinate when they are parallel (coincident included). The
// parallel test runs before any division, so no NaN ever leaks out of a
// near-zero denominator.
func (l Line) Intersection(o Line) Coordinate {
	den := l.Direction.Cross(o.Direction)
	if Equal(den, 0) {
		return InvalidCoordinate
	}
	t := o.Origin.Sub(l.Origin).Cross(o.Direction) / den
	return Coordinate{
		X: l.Origin.X + t*l.Direction.DX,
		Y: l.Origin.Y + t*l.Direction.DY,
		Z: l.Origin.Z,
	}
}

// LineStringCentroid is the mean of the coordinates of a line string.
func LineStringCentroid(coords []Coordinate) Coordinate {
	if len(coords) == 0 {
		invalidArgf("line string must have at least one coordinate")
	}
	var sx, sy, sz float64
	for _, c := range coords {
		sx += c.X
		sy += c.Y
		sz += c.Z
	}
	n := float64(len(coords))
	return Coordinate{sx / n, sy / n, sz / n}
}
