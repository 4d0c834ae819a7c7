package geom

import (
	"math"
	"sort"
)

// Bentley-Faust-Preparata approximate convex hull. The plane is cut into
// vertical strips; only each strip's lowest and highest point (plus the
// exact left and right extremes) survive into a monotone-chain scan, so the
// result is computed in linear time and deviates from the true hull by at
// most the strip width.

// ApproximateConvexHull returns a counterclockwise convex ring over the
// candidate extremes of the input points using strips vertical slabs. Fewer
// than 3 distinct input points is an invalid argument; the hull of collinear
// points is the degenerate two-point ring spanning them.
func ApproximateConvexHull(points []Coordinate, strips int) Ring {
	if strips < 1 {
		invalidArgf("approximate hull needs at least 1 strip, got %d", strips)
	}
	distinct := dedupePoints(points)
	if len(distinct) < 3 {
		invalidArgf("approximate hull needs at least 3 distinct coordinates, got %d", len(distinct))
	}

	minX, maxX := distinct[0].X, distinct[0].X
	for _, p := range distinct {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	type stripExtremes struct {
		lo, hi Coordinate
		seen   bool
	}
	slabs := make([]stripExtremes, strips)
	width := (maxX - minX) / float64(strips)
	candidates := make([]Coordinate, 0, 2*strips+4)
	if Equal(width, 0) {
		// All points on one vertical line; the scan below collapses this to
		// the two Y extremes.
		candidates = distinct
	} else {
		var leftmost, rightmost = distinct[0], distinct[0]
		for _, p := range distinct {
			if p.X < leftmost.X {
				leftmost = p
			}
			if p.X > rightmost.X {
				rightmost = p
			}
			k := int((p.X - minX) / width)
			if k >= strips {
				k = strips - 1
			}
			s := &slabs[k]
			if !s.seen {
				s.lo, s.hi, s.seen = p, p, true
				continue
			}
			if p.Y < s.lo.Y {
				s.lo = p
			}
			if p.Y > s.hi.Y {
				s.hi = p
			}
		}
		candidates = append(candidates, leftmost, rightmost)
		for _, s := range slabs {
			if s.seen {
				candidates = append(candidates, s.lo, s.hi)
			}
		}
		candidates = dedupePoints(candidates)
	}

	return monotoneChain(candidates)
}

// monotoneChain is Andrew's variant of the Graham scan over presorted
// points, emitting the hull counterclockwise.
func monotoneChain(points []Coordinate) Ring {
	sort.SliceStable(points, func(a, b int) bool {
		if !Equal(points[a].X, points[b].X) {
			return points[a].X < points[b].X
		}
		return points[a].Y < points[b].Y
	})

	build := func(pts []Coordinate) []Coordinate {
		var chain []Coordinate
		for _, p := range pts {
			for len(chain) >= 2 && Orient2D(chain[len(chain)-2], chain[len(chain)-1], p) <= Tolerance {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}
	lower := build(points)
	upper := build(reversedPoints(points))

	hull := append(lower[:len(lower)-1:len(lower)-1], upper[:len(upper)-1]...)
	return Ring(hull).Closed()
}

func reversedPoints(points []Coordinate) []Coordinate {
	out := make([]Coordinate, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func dedupePoints(points []Coordinate) []Coordinate {
	seen := make(map[Coordinate]struct{}, len(points))
	out := make([]Coordinate, 0, len(points))
	for _, p := range points {
		flat := Coordinate{X: p.X, Y: p.Y}
		if _, ok := seen[flat]; ok {
			continue
		}
		seen[flat] = struct{}{}
		out = append(out, flat)
	}
	return out
}
