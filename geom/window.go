package geom

import "math"

// Envelope is an axis-aligned rectangular window.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// ChainEnvelope computes the bounding envelope of a coordinate chain.
func ChainEnvelope(coords []Coordinate) Envelope {
	e := Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, c := range coords {
		e.MinX = math.Min(e.MinX, c.X)
		e.MinY = math.Min(e.MinY, c.Y)
		e.MaxX = math.Max(e.MaxX, c.X)
		e.MaxY = math.Max(e.MaxY, c.Y)
	}
	return e
}

// Contains reports whether the coordinate lies in the closed window.
func (e Envelope) Contains(c Coordinate) bool {
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// Intersects reports whether two envelopes overlap, boundary touches
// included.
func (e Envelope) Intersects(o Envelope) bool {
	return e.MinX <= o.MaxX && e.MaxX >= o.MinX &&
		e.MinY <= o.MaxY && e.MaxY >= o.MinY
}

// Center is the midpoint of the envelope.
func (e Envelope) Center() Coordinate {
	return Coordinate{(e.MinX + e.MaxX) / 2, (e.MinY + e.MaxY) / 2, 0}
}

// Cohen-Sutherland outcodes.
const (
	outInside = 0
	outLeft   = 1 << iota
	outRight
	outBottom
	outTop
)

func (e Envelope) outcode(c Coordinate) int {
	code := outInside
	if c.X < e.MinX {
		code |= outLeft
	} else if c.X > e.MaxX {
		code |= outRight
	}
	if c.Y < e.MinY {
		code |= outBottom
	} else if c.Y > e.MaxY {
		code |= outTop
	}
	return code
}

// ClipSegment clips a segment against the window with the Cohen-Sutherland
// algorithm. The second result is false when the segment lies entirely
// outside. Z on moved endpoints is interpolated along the original segment.
func (e Envelope) ClipSegment(s Segment) (Segment, bool) {
	a, b := s.Start, s.End
	codeA, codeB := e.outcode(a), e.outcode(b)
	for {
		switch {
		case codeA|codeB == 0:
			return Segment{a, b}, true
		case codeA&codeB != 0:
			return Segment{}, false
		}

		// Pick an endpoint that is outside and pull it onto the window edge.
		// Interpolation always runs over the current endpoints, so repeated
		// pulls converge.
		cur := Segment{a, b}
		code := codeA
		if code == 0 {
			code = codeB
		}
		var p Coordinate
		switch {
		case code&outTop != 0:
			p = cur.PointAt((e.MaxY - a.Y) / (b.Y - a.Y))
			p.Y = e.MaxY
		case code&outBottom != 0:
			p = cur.PointAt((e.MinY - a.Y) / (b.Y - a.Y))
			p.Y = e.MinY
		case code&outRight != 0:
			p = cur.PointAt((e.MaxX - a.X) / (b.X - a.X))
			p.X = e.MaxX
		default:
			p = cur.PointAt((e.MinX - a.X) / (b.X - a.X))
			p.X = e.MinX
		}
		if code == codeA {
			a = p
			codeA = e.outcode(a)
		} else {
			b = p
			codeB = e.outcode(b)
		}
	}
}

// ClipChain clips every edge of a coordinate chain against the window and
// stitches the surviving pieces back into runs. A chain that dips out of the
// window and comes back yields multiple runs.
func (e Envelope) ClipChain(coords []Coordinate) [][]Coordinate {
	if len(coords) < 2 {
		invalidArgf("chain must have at least 2 coordinates, got %d", len(coords))
	}
	var runs [][]Coordinate
	var run []Coordinate
	for i := 0; i+1 < len(coords); i++ {
		clipped, ok := e.ClipSegment(Segment{coords[i], coords[i+1]})
		if !ok {
			if len(run) > 1 {
				runs = append(runs, run)
			}
			run = nil
			continue
		}
		if len(run) == 0 || !run[len(run)-1].Equals2D(clipped.Start) {
			if len(run) > 1 {
				runs = append(runs, run)
			}
			run = []Coordinate{clipped.Start}
		}
		run = append(run, clipped.End)
	}
	if len(run) > 1 {
		runs = append(runs, run)
	}
	return runs
}
