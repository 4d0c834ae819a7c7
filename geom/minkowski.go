package geom

import "math"

// Minkowski-sum buffering. The sum of a simple counterclockwise source with
// a convex counterclockwise addend is built by edge convolution: each source
// edge is offset by the addend vertex extreme along its outward normal, and
// at every convex source vertex the addend support point walks forward to
// bridge the two offsets. The source must be hole-free and counterclockwise;
// a clockwise or holed source is a domain error rather than silently wrong
// output.

// MinkowskiSum buffers the source polygon by the addend ring. At reflex
// source vertices the convolution boundary can self-intersect; callers
// needing a simple result can clip it against itself or keep the source
// convex.
func MinkowskiSum(pm PrecisionModel, source Polygon, addend Ring) Polygon {
	requirePolygon("source", source)
	if len(source.Holes) > 0 {
		domainf("minkowski sum requires a hole-free source polygon, got %d holes", len(source.Holes))
	}
	verts := source.Shell.vertices()
	if Ring(verts).RingOrientation() != CounterClockwise {
		domainf("minkowski sum requires a counter-clockwise source polygon")
	}
	disc := addend.vertices()
	if len(disc) < 3 {
		invalidArgf("addend ring must have at least 3 distinct coordinates, got %d", len(disc))
	}
	if Ring(disc).RingOrientation() != CounterClockwise {
		domainf("minkowski sum requires a counter-clockwise addend")
	}
	if !Ring(disc).IsConvex() {
		domainf("minkowski sum requires a convex addend")
	}

	n := len(verts)
	support := make([]int, n)
	for i := 0; i < n; i++ {
		d := verts[(i+1)%n].Sub(verts[i])
		if d.IsZero() {
			domainf("minkowski sum requires a direction at every source edge, edge %d is zero-length", i)
		}
		// Outward normal of a counterclockwise edge points to its right.
		support[i] = supportIndex(disc, CoordinateVector{DX: d.DY, DY: -d.DX})
	}

	var out Ring
	push := func(c Coordinate) {
		c = pm.RoundCoordinate(c)
		if len(out) == 0 || !pm.Equal2D(out[len(out)-1], c) {
			out = append(out, c)
		}
	}
	translated := func(v Coordinate, j int) Coordinate {
		return Coordinate{X: v.X + disc[j].X, Y: v.Y + disc[j].Y, Z: v.Z}
	}
	for i := 0; i < n; i++ {
		v := verts[i]
		in, outIdx := support[CircularIndex(i-1, n)], support[i]
		prev := verts[CircularIndex(i-1, n)]
		next := verts[(i+1)%n]
		if Orient2D(prev, v, next) >= -Tolerance {
			// Convex (or flat) turn: the support point sweeps forward across
			// the addend between the two edge normals.
			for j := in; ; j = (j + 1) % len(disc) {
				push(translated(v, j))
				if j == outIdx {
					break
				}
			}
		} else {
			push(translated(v, in))
			push(translated(v, outIdx))
		}
	}
	if len(out) > 1 && pm.Equal2D(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return Polygon{Shell: out.Closed()}
}

// Buffer grows the source polygon by radius using a regular segments-gon
// approximation of a disc as the Minkowski addend.
func Buffer(pm PrecisionModel, source Polygon, radius float64, segments int) Polygon {
	if segments < 3 {
		invalidArgf("buffer needs at least 3 disc segments, got %d", segments)
	}
	if radius <= 0 {
		domainf("buffer radius must be positive, got %v", radius)
	}
	disc := make(Ring, segments)
	for k := 0; k < segments; k++ {
		theta := 2 * math.Pi * float64(k) / float64(segments)
		disc[k] = Coordinate{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return MinkowskiSum(pm, source, disc)
}

// supportIndex picks the addend vertex extreme along dir, preferring the
// counterclockwise-last vertex among near-ties so consecutive supports stay
// monotone around the ring.
func supportIndex(disc []Coordinate, dir CoordinateVector) int {
	best := 0
	bestDot := disc[0].X*dir.DX + disc[0].Y*dir.DY
	for j := 1; j < len(disc); j++ {
		d := disc[j].X*dir.DX + disc[j].Y*dir.DY
		if d > bestDot+Tolerance {
			best, bestDot = j, d
		}
	}
	return best
}
