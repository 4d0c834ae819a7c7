package geom

import "sort"

// ClipResult is the outcome of a polygon boolean operation. All three
// products of one clip come back together: the intersection and both
// differences.
type ClipResult struct {
	// Internal is A ∩ B.
	Internal []Polygon
	// ExternalFirst is A − B.
	ExternalFirst []Polygon
	// ExternalSecond is B − A.
	ExternalSecond []Polygon
}

// Clipper is a polygon boolean-operation engine. The two implementations,
// GreinerHormann and WeilerAtherton, satisfy the same contract; callers
// select one by value.
//
// Output rings follow a fixed convention: shells are counterclockwise, holes
// clockwise. Clip panics with a recoverable error (see RecoverError) on
// invalid or structurally unusable input.
type Clipper interface {
	Clip(a, b Polygon) ClipResult
}

// requirePolygon runs the eager argument checks shared by both clippers.
func requirePolygon(name string, p Polygon) {
	if len(p.Shell.vertices()) < 3 {
		invalidArgf("%s shell must have at least 3 distinct coordinates, got %d", name, len(p.Shell.vertices()))
	}
	for i, h := range p.Holes {
		if len(h.vertices()) < 3 {
			invalidArgf("%s hole %d must have at least 3 distinct coordinates, got %d", name, i, len(h.vertices()))
		}
	}
	for _, r := range p.Rings() {
		for _, c := range r {
			if !c.IsValid() {
				domainf("%s contains an invalid coordinate", name)
			}
		}
	}
}

// representativePoint picks a point of ring r suitable for classifying the
// whole ring against other, preferring points off other's boundary: a
// vertex, then an edge midpoint, then the centroid.
func representativePoint(r Ring, other Polygon) Coordinate {
	vs := r.vertices()
	for _, v := range vs {
		if !other.OnBoundary(v) {
			return v
		}
	}
	for i := range vs {
		m := Segment{vs[i], vs[CircularIndex(i+1, len(vs))]}.Midpoint()
		if !other.OnBoundary(m) {
			return m
		}
	}
	return r.Centroid()
}

// partitionRings groups a flat pool of closed rings into polygons by
// nesting: a ring contained in an even number of other rings is a shell, odd
// nesting makes it a hole of its immediate container. Shells are normalized
// counterclockwise, holes clockwise. Degenerate (area ~ 0) rings are
// dropped.
func partitionRings(pool []Ring) []Polygon {
	type entry struct {
		ring   Ring
		area   float64
		parent int
		depth  int
		poly   int
	}
	var entries []*entry
	for _, r := range pool {
		if len(r.vertices()) < 3 || Equal(r.Area(), 0) {
			continue
		}
		entries = append(entries, &entry{ring: r, area: r.Area(), parent: -1, poly: -1})
	}
	if len(entries) == 0 {
		return nil
	}
	// Largest first, so each ring's immediate container is the smallest
	// earlier ring that contains it.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].area > entries[j].area
	})
	for i, e := range entries {
		rep := e.ring.vertices()[0]
		for j := i - 1; j >= 0; j-- {
			outer := entries[j]
			if outer.ring.InInterior(rep) || (outer.ring.OnBoundary(rep) && outer.ring.contains(e.ring.Centroid())) {
				e.parent = j
				e.depth = outer.depth + 1
				break
			}
		}
	}

	var polys []Polygon
	for _, e := range entries {
		if e.depth%2 == 0 {
			shell := e.ring.Closed()
			if shell.RingOrientation() == Clockwise {
				shell = shell.Reverse()
			}
			e.poly = len(polys)
			polys = append(polys, Polygon{Shell: shell})
		}
	}
	for _, e := range entries {
		if e.depth%2 == 1 {
			hole := e.ring.Closed()
			if hole.RingOrientation() == CounterClockwise {
				hole = hole.Reverse()
			}
			owner := entries[e.parent]
			polys[owner.poly].Holes = append(polys[owner.poly].Holes, hole)
		}
	}
	return polys
}

// classifyNoCrossing resolves a clip whose inputs have no boundary crossings
// at all: one polygon fully containing the other, or fully disjoint
// polygons. A polygon sitting inside the other's hole counts as disjoint.
func classifyNoCrossing(a, b Polygon) ClipResult {
	repA := representativePoint(a.Shell, b)
	repB := representativePoint(b.Shell, a)
	switch {
	case b.InInterior(repA):
		return nestedNoCrossing(a, b, false)
	case a.InInterior(repB):
		return nestedNoCrossing(b, a, true)
	}
	return ClipResult{
		ExternalFirst:  partitionRings(a.Rings()),
		ExternalSecond: partitionRings(b.Rings()),
	}
}

// nestedNoCrossing resolves inner fully contained in outer's shell. The
// intersection is inner minus any outer holes landing inside it; outer minus
// inner punches inner's shell out of outer; and inner minus outer is exactly
// the outer-hole regions inner overlaps. Every ring goes into the pools by
// containment and partitionRings sorts out shell/hole roles by nesting.
func nestedNoCrossing(inner, outer Polygon, innerIsSecond bool) ClipResult {
	internalPool := append([]Ring{}, inner.Rings()...)
	outerExtPool := []Ring{outer.Shell, inner.Shell}
	var innerExtPool []Ring

	for _, h := range outer.Holes {
		if inner.InInterior(representativePoint(h, inner)) {
			// An outer hole inside inner: it punches the intersection and its
			// region is the inner-side difference.
			internalPool = append(internalPool, h)
			innerExtPool = append(innerExtPool, h)
		} else {
			outerExtPool = append(outerExtPool, h)
		}
	}
	for _, h := range inner.Holes {
		if outer.InInterior(representativePoint(h, outer)) {
			// Inner's hole region still belongs to outer, so it resurfaces as
			// an island of the outer-side difference.
			outerExtPool = append(outerExtPool, h)
		} else {
			innerExtPool = append(innerExtPool, h)
		}
	}

	res := ClipResult{Internal: partitionRings(internalPool)}
	if innerIsSecond {
		res.ExternalFirst = partitionRings(outerExtPool)
		res.ExternalSecond = partitionRings(innerExtPool)
	} else {
		res.ExternalFirst = partitionRings(innerExtPool)
		res.ExternalSecond = partitionRings(outerExtPool)
	}
	return res
}
