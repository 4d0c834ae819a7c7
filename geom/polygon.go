package geom

import "math"

// Orientation is the boundary direction of a ring.
type Orientation int

const (
	// CollinearOrientation means the ring encloses no area.
	CollinearOrientation Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "collinear"
}

// Opposite flips Clockwise and CounterClockwise and leaves collinear alone.
func (o Orientation) Opposite() Orientation {
	switch o {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return o
}

// Ring is an ordered coordinate sequence representing a closed loop. By
// convention first and last coordinate are equal when the ring is explicitly
// closed; the algorithms here accept both open and closed forms and treat the
// loop as cyclic either way. Insertion order defines the boundary direction.
type Ring []Coordinate

// IsClosed reports whether the ring repeats its first coordinate at the end.
func (r Ring) IsClosed() bool {
	return len(r) > 1 && r[0].Equals2D(r[len(r)-1])
}

// Closed returns the ring with an explicit closing coordinate, copying only
// if one is needed.
func (r Ring) Closed() Ring {
	if len(r) == 0 || r.IsClosed() {
		return r
	}
	out := make(Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// vertices returns the ring without the closing duplicate, so loops can use
// CircularIndex without double-counting the seam.
func (r Ring) vertices() Ring {
	if r.IsClosed() {
		return r[:len(r)-1]
	}
	return r
}

// Reverse returns a copy with the opposite boundary direction.
func (r Ring) Reverse() Ring {
	out := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		out = append(out, r[i])
	}
	return out
}

// Segments calls fn for every edge of the cyclic ring.
func (r Ring) Segments(fn func(Segment)) {
	vs := r.vertices()
	for i := range vs {
		fn(Segment{vs[i], vs[CircularIndex(i+1, len(vs))]})
	}
}

// Envelope is the ring's axis-aligned bounding box.
func (r Ring) Envelope() Envelope {
	return ChainEnvelope(r)
}

// SignedArea is the shoelace sum over the ring: positive for
// counterclockwise, negative for clockwise boundaries.
func (r Ring) SignedArea() float64 {
	vs := r.vertices()
	if len(vs) < 3 {
		return 0
	}
	var sum float64
	for i, v := range vs {
		w := vs[CircularIndex(i+1, len(vs))]
		sum += v.X*w.Y - w.X*v.Y
	}
	return sum / 2
}

// Area is the absolute enclosed area.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// RingOrientation classifies the boundary direction from the sign of the
// shoelace sum. The full sum is used rather than a single-vertex turn test,
// so self-touching figure-eight-like rings still get the orientation of their
// dominant lobe.
func (r Ring) RingOrientation() Orientation {
	a := r.SignedArea()
	switch {
	case Equal(a, 0):
		return CollinearOrientation
	case a > 0:
		return CounterClockwise
	}
	return Clockwise
}

// Centroid is the area-weighted centroid of the ring. Degenerate (zero-area)
// rings fall back to the coordinate mean.
func (r Ring) Centroid() Coordinate {
	vs := r.vertices()
	if len(vs) == 0 {
		invalidArgf("ring must have at least one coordinate")
	}
	a := r.SignedArea()
	if Equal(a, 0) {
		return LineStringCentroid(vs)
	}
	var cx, cy float64
	for i, v := range vs {
		w := vs[CircularIndex(i+1, len(vs))]
		f := v.X*w.Y - w.X*v.Y
		cx += (v.X + w.X) * f
		cy += (v.Y + w.Y) * f
	}
	return Coordinate{cx / (6 * a), cy / (6 * a), 0}
}

// IsConvex reports whether every consecutive turn of the ring has the same
// sign. Collinear turns are tolerated.
func (r Ring) IsConvex() bool {
	vs := r.vertices()
	if len(vs) < 3 {
		return false
	}
	sign := 0
	for i := range vs {
		cross := Orient2D(vs[i], vs[CircularIndex(i+1, len(vs))], vs[CircularIndex(i+2, len(vs))])
		if Equal(cross, 0) {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// IsSimple reports whether the ring does not cross itself. Adjacent edges may
// share their joint vertex; anything beyond that counts as a
// self-intersection.
func (r Ring) IsSimple() bool {
	vs := r.vertices()
	if len(vs) < 3 {
		return false
	}
	return !Intersects(Ring(vs).Closed())
}

// IsValid checks the ring in isolation: at least 3 distinct vertices, no
// invalid coordinates, no consecutive duplicates, consistent Z across the
// ring, and simplicity.
func (r Ring) IsValid() bool {
	vs := r.vertices()
	if len(vs) < 3 {
		return false
	}
	z := vs[0].Z
	for i, v := range vs {
		if !v.IsValid() {
			return false
		}
		if v.Z != z {
			return false
		}
		if v.Equals2D(vs[CircularIndex(i+1, len(vs))]) {
			return false
		}
	}
	return r.IsSimple()
}

// OnBoundary reports whether the point lies exactly on one of the ring's
// edges (within Tolerance).
func (r Ring) OnBoundary(p Coordinate) bool {
	on := false
	r.Segments(func(s Segment) {
		if !on && s.Contains(p) {
			on = true
		}
	})
	return on
}

// contains is the raw even-odd ray-casting parity, with no boundary
// handling: callers must exclude boundary points first.
func (r Ring) contains(p Coordinate) bool {
	vs := r.vertices()
	crossings := 0
	for i, v := range vs {
		w := vs[CircularIndex(i+1, len(vs))]
		seg := Segment{v, w}
		if v.Below(p) != w.Below(p) && seg.IsRightOf(p) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// InInterior reports whether the point is strictly inside the ring. Boundary
// points are neither interior nor exterior.
func (r Ring) InInterior(p Coordinate) bool {
	return !r.OnBoundary(p) && r.contains(p)
}

// InExterior reports whether the point is strictly outside the ring.
func (r Ring) InExterior(p Coordinate) bool {
	return !r.OnBoundary(p) && !r.contains(p)
}

// Polygon is a shell ring plus zero or more hole rings. Holes must be nested
// within the shell and disjoint from each other for the polygon to be valid.
type Polygon struct {
	Shell Ring
	Holes []Ring
}

// NewPolygon is a convenience constructor.
func NewPolygon(shell Ring, holes ...Ring) Polygon {
	return Polygon{Shell: shell, Holes: holes}
}

// Rings returns shell and holes as one slice, shell first.
func (p Polygon) Rings() []Ring {
	out := make([]Ring, 0, 1+len(p.Holes))
	out = append(out, p.Shell)
	out = append(out, p.Holes...)
	return out
}

// Area is the shell area minus the hole areas.
func (p Polygon) Area() float64 {
	a := p.Shell.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	return a
}

// Centroid is the area-weighted centroid of the polygon with its holes
// subtracted.
func (p Polygon) Centroid() Coordinate {
	total := p.Shell.Area()
	c := p.Shell.Centroid()
	cx := c.X * total
	cy := c.Y * total
	for _, h := range p.Holes {
		ha := h.Area()
		hc := h.Centroid()
		cx -= hc.X * ha
		cy -= hc.Y * ha
		total -= ha
	}
	if Equal(total, 0) {
		return LineStringCentroid(p.Shell.vertices())
	}
	return Coordinate{cx / total, cy / total, 0}
}

// IsConvex is false for any polygon with holes; otherwise it defers to the
// shell.
func (p Polygon) IsConvex() bool {
	return len(p.Holes) == 0 && p.Shell.IsConvex()
}

// IsSimple reports whether shell and holes are each non-self-intersecting
// and mutually non-crossing.
func (p Polygon) IsSimple() bool {
	rings := p.Rings()
	for _, r := range rings {
		if !r.IsSimple() {
			return false
		}
	}
	if len(rings) > 1 {
		chains := make([][]Coordinate, len(rings))
		for i, r := range rings {
			chains[i] = r.Closed()
		}
		if Intersects(chains...) {
			return false
		}
	}
	return true
}

// IsValid additionally requires every ring valid on its own, holes nested in
// the shell, and holes disjoint from each other.
func (p Polygon) IsValid() bool {
	if !p.Shell.IsValid() {
		return false
	}
	for _, h := range p.Holes {
		if !h.IsValid() {
			return false
		}
		if p.Shell.InExterior(h.vertices()[0]) {
			return false
		}
	}
	for i, h := range p.Holes {
		for j, g := range p.Holes {
			if i != j && h.InInterior(g.vertices()[0]) {
				return false
			}
		}
	}
	return p.IsSimple()
}

// OnBoundary reports whether the point lies on the shell or any hole edge.
func (p Polygon) OnBoundary(c Coordinate) bool {
	if p.Shell.OnBoundary(c) {
		return true
	}
	for _, h := range p.Holes {
		if h.OnBoundary(c) {
			return true
		}
	}
	return false
}

// InInterior reports whether the point is strictly inside the polygon. A
// point inside a hole is exterior to the polygon even though it is interior
// to the shell.
func (p Polygon) InInterior(c Coordinate) bool {
	if p.OnBoundary(c) || !p.Shell.contains(c) {
		return false
	}
	for _, h := range p.Holes {
		if h.contains(c) {
			return false
		}
	}
	return true
}

// InExterior reports whether the point is strictly outside the polygon,
// hole interiors included.
func (p Polygon) InExterior(c Coordinate) bool {
	return !p.OnBoundary(c) && !p.InInterior(c)
}
