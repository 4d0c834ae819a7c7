package geom

// WindingNumber is the signed count of times the ring wraps around the
// point: positive for counterclockwise wraps, zero when the point is outside.
// It is the conventional cross-check for ray casting where the parity test is
// ambiguous (points very close to vertices or edges).
func WindingNumber(r Ring, p Coordinate) int {
	vs := r.vertices()
	wn := 0
	for i, v := range vs {
		w := vs[CircularIndex(i+1, len(vs))]
		if v.Y <= p.Y {
			if w.Y > p.Y && Orient2D(v, w, p) > Tolerance {
				wn++
			}
		} else if w.Y <= p.Y && Orient2D(v, w, p) < -Tolerance {
			wn--
		}
	}
	return wn
}

// InInteriorByWinding classifies the point against the ring using the
// winding number instead of ray-casting parity. Boundary points are excluded
// first, exactly as in Ring.InInterior.
func InInteriorByWinding(r Ring, p Coordinate) bool {
	return !r.OnBoundary(p) && WindingNumber(r, p) != 0
}

// OnBoundaryByWinding detects boundary points edge by edge. It exists so the
// winding-based classifier covers the same three-way contract as the
// ray-casting one.
func OnBoundaryByWinding(r Ring, p Coordinate) bool {
	return r.OnBoundary(p)
}
