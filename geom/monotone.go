package geom

import (
	"math"
	"sort"

	"github.com/google/btree"
)

// Monotone-subdivision triangulation: a plane sweep partitions a simple
// polygon (holes allowed) into y-monotone pieces by adding diagonals at
// split and merge vertices, and each piece is then triangulated with the
// two-chain stack scan. The lexicographic Below ordering stands in for a
// slightly rotated coordinate system, so equal Y values never need special
// casing.

// Triangle is a triangle over three coordinates, counterclockwise in all
// outputs of this package.
type Triangle struct {
	A, B, C Coordinate
}

// SignedArea is positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return Orient2D(t.A, t.B, t.C) / 2
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

// Triangulate splits the polygon into triangles containing only the original
// vertices. The shell is normalized counterclockwise and holes clockwise
// before subdividing, so callers may pass either winding.
func Triangulate(p Polygon) []Triangle {
	requirePolygon("polygon", p)
	shell := p.Shell.vertices()
	if Ring(shell).RingOrientation() == Clockwise {
		shell = Ring(shell).Reverse()
	}
	rings := []Ring{shell}
	for _, h := range p.Holes {
		hv := h.vertices()
		if Ring(hv).RingOrientation() == CounterClockwise {
			hv = Ring(hv).Reverse()
		}
		rings = append(rings, hv)
	}

	sub := newSubdivider(rings)
	sub.sweep()
	var out []Triangle
	for _, piece := range sub.faces() {
		out = append(out, TriangulateMonotone(piece)...)
	}
	return out
}

// vertex kinds for the subdivision sweep.
type vertexKind int

const (
	regularVertex vertexKind = iota
	startVertex
	endVertex
	splitVertex
	mergeVertex
)

type monoVertex struct {
	coord      Coordinate
	prev, next int
}

type subdivider struct {
	verts     []monoVertex
	diagonals [][2]int

	status *btree.BTree
	state  *monoSweep
	edges  map[int]*monoEdge // live status edges keyed by origin vertex
	helper map[int]int       // helper vertex per live edge origin
	kinds  []vertexKind
}

type monoSweep struct {
	y, x float64
}

// monoEdge is a polygon edge currently crossed by the sweep line, ordered in
// the status tree by its X at the sweep Y. Edges of a simple polygon never
// cross, so the ordering stays consistent as the sweep advances.
type monoEdge struct {
	origin       int
	upper, lower Coordinate
	state        *monoSweep
}

func (e *monoEdge) xAt(y float64) float64 {
	if Equal(e.upper.Y, e.lower.Y) {
		return math.Min(e.upper.X, e.lower.X)
	}
	t := (e.upper.Y - y) / (e.upper.Y - e.lower.Y)
	return e.upper.X + clamp01(t)*(e.lower.X-e.upper.X)
}

func (e *monoEdge) Less(than btree.Item) bool {
	o := than.(*monoEdge)
	if e.origin == o.origin {
		return false
	}
	xa, xb := e.xAt(e.state.y), o.xAt(o.state.y)
	if !Equal(xa, xb) {
		return xa < xb
	}
	return e.origin < o.origin
}

func newSubdivider(rings []Ring) *subdivider {
	s := &subdivider{
		status: btree.New(16),
		state:  &monoSweep{},
		edges:  make(map[int]*monoEdge),
		helper: make(map[int]int),
	}
	for _, r := range rings {
		base := len(s.verts)
		for i, c := range r {
			s.verts = append(s.verts, monoVertex{
				coord: c,
				prev:  base + CircularIndex(i-1, len(r)),
				next:  base + CircularIndex(i+1, len(r)),
			})
		}
	}
	s.kinds = make([]vertexKind, len(s.verts))
	for i := range s.verts {
		s.kinds[i] = s.classify(i)
	}
	return s
}

func (s *subdivider) classify(i int) vertexKind {
	v := s.verts[i].coord
	p := s.verts[s.verts[i].prev].coord
	n := s.verts[s.verts[i].next].coord
	convex := Orient2D(p, v, n) > 0
	switch {
	case p.Below(v) && n.Below(v):
		if convex {
			return startVertex
		}
		return splitVertex
	case v.Below(p) && v.Below(n):
		if convex {
			return endVertex
		}
		return mergeVertex
	}
	return regularVertex
}

func (s *subdivider) sweep() {
	order := make([]int, len(s.verts))
	for i := range order {
		order[i] = i
	}
	// Top vertex first.
	sort.SliceStable(order, func(a, b int) bool {
		return s.verts[order[a]].coord.Above(s.verts[order[b]].coord)
	})

	for _, i := range order {
		v := s.verts[i].coord
		s.state.y, s.state.x = v.Y, v.X
		switch s.kinds[i] {
		case startVertex:
			s.insertEdge(i)
		case endVertex:
			s.finishEdge(s.verts[i].prev, i)
		case splitVertex:
			left := s.edgeLeftOf(v)
			if left == nil {
				fatalf("split vertex has no edge to its left; polygon is not simple")
			}
			s.addDiagonal(i, s.helper[left.origin])
			s.helper[left.origin] = i
			s.insertEdge(i)
		case mergeVertex:
			s.finishEdge(s.verts[i].prev, i)
			if left := s.edgeLeftOf(v); left != nil {
				if s.kinds[s.helper[left.origin]] == mergeVertex {
					s.addDiagonal(i, s.helper[left.origin])
				}
				s.helper[left.origin] = i
			}
		default:
			prevAbove := s.verts[s.verts[i].prev].coord.Above(v)
			if prevAbove {
				// Downward chain: the interior lies to the right of v.
				s.finishEdge(s.verts[i].prev, i)
				s.insertEdge(i)
			} else if left := s.edgeLeftOf(v); left != nil {
				if s.kinds[s.helper[left.origin]] == mergeVertex {
					s.addDiagonal(i, s.helper[left.origin])
				}
				s.helper[left.origin] = i
			}
		}
	}
}

// insertEdge opens the edge that starts at vertex i (toward its ring
// successor) with i as its helper.
func (s *subdivider) insertEdge(i int) {
	e := &monoEdge{
		origin: i,
		upper:  s.verts[i].coord,
		lower:  s.verts[s.verts[i].next].coord,
		state:  s.state,
	}
	s.edges[i] = e
	s.helper[i] = i
	s.status.ReplaceOrInsert(e)
}

// finishEdge closes the edge opened at origin when the sweep reaches its
// lower endpoint at vertex i, connecting a pending merge helper first.
func (s *subdivider) finishEdge(origin, i int) {
	e, ok := s.edges[origin]
	if !ok {
		return
	}
	if s.kinds[s.helper[origin]] == mergeVertex {
		s.addDiagonal(i, s.helper[origin])
	}
	s.status.Delete(e)
	delete(s.edges, origin)
	delete(s.helper, origin)
}

// edgeLeftOf finds the status edge immediately to the left of the point.
func (s *subdivider) edgeLeftOf(c Coordinate) *monoEdge {
	probe := &monoEdge{origin: len(s.verts), upper: c, lower: c, state: s.state}
	var out *monoEdge
	s.status.DescendLessOrEqual(probe, func(item btree.Item) bool {
		e := item.(*monoEdge)
		if e.origin == probe.origin {
			return true
		}
		out = e
		return false
	})
	return out
}

func (s *subdivider) addDiagonal(a, b int) {
	if a == b {
		return
	}
	s.diagonals = append(s.diagonals, [2]int{a, b})
}

// faces walks the subdivided structure and returns its interior faces, each
// a y-monotone counterclockwise ring. Ring edges are used in ring direction
// only; diagonals in both. At each arrival the walk leaves through the
// rotationally previous edge (the most clockwise turn), which traces every
// interior face exactly once.
func (s *subdivider) faces() []Ring {
	type dirEdge struct{ from, to int }
	outgoing := make(map[int][]int)
	var all []dirEdge
	addEdge := func(from, to int) {
		outgoing[from] = append(outgoing[from], to)
		all = append(all, dirEdge{from, to})
	}
	for i := range s.verts {
		addEdge(i, s.verts[i].next)
	}
	for _, d := range s.diagonals {
		addEdge(d[0], d[1])
		addEdge(d[1], d[0])
	}
	angle := func(from, to int) float64 {
		v := s.verts[to].coord.Sub(s.verts[from].coord)
		return math.Atan2(v.DY, v.DX)
	}
	for from, targets := range outgoing {
		from := from
		sort.SliceStable(targets, func(a, b int) bool {
			return angle(from, targets[a]) < angle(from, targets[b])
		})
	}

	// next target after arriving at 'at' from 'from': the outgoing edge with
	// the largest angle cyclically below the reversed arrival direction.
	nextTarget := func(from, at int) int {
		back := angle(at, from)
		targets := outgoing[at]
		best := -1
		for i, t := range targets {
			if t == from && Equal(angle(at, t), back) {
				continue
			}
			if angle(at, t) < back-Tolerance {
				best = i
			}
		}
		if best < 0 {
			// Wrap around: the largest angle overall.
			for i, t := range targets {
				if t == from && len(targets) > 1 {
					continue
				}
				best = i
			}
		}
		return targets[best]
	}

	used := make(map[dirEdge]bool)
	var out []Ring
	for _, e := range all {
		if used[e] {
			continue
		}
		face := Ring{s.verts[e.from].coord}
		from, at := e.from, e.to
		used[e] = true
		for steps := 0; at != e.from; steps++ {
			if steps > len(all) {
				fatalf("face walk did not close; polygon is not simple")
			}
			face = append(face, s.verts[at].coord)
			nt := nextTarget(from, at)
			from, at = at, nt
			used[dirEdge{from, at}] = true
		}
		if len(face) >= 3 && face.RingOrientation() == CounterClockwise {
			out = append(out, face)
		}
	}
	return out
}

// TriangulateMonotone triangulates a single y-monotone counterclockwise
// ring with the classic two-chain stack scan: points are merged top to
// bottom from the left and right chains, and each new point empties as much
// of the stack as it can see.
func TriangulateMonotone(r Ring) []Triangle {
	vs := r.vertices()
	if len(vs) < 3 {
		invalidArgf("cannot triangulate degenerate ring with %d coordinates", len(vs))
	}
	if len(vs) == 3 {
		return []Triangle{{vs[0], vs[1], vs[2]}}
	}

	triangles := make([]Triangle, 0, len(vs)-2)

	// Find the top point.
	top := 0
	for i := range vs {
		if vs[i].Above(vs[top]) {
			top = i
		}
	}

	// Merge-sort the two chains from the top, remembering which points came
	// down the left chain. The bottom point is handled separately at the end.
	sorted := make([]Coordinate, 0, len(vs))
	sorted = append(sorted, vs[top])
	leftChain := map[Coordinate]struct{}{}
	isLeft := func(c Coordinate) bool {
		_, ok := leftChain[c]
		return ok
	}
	var bottom Coordinate
	leftOff, rightOff := 1, 1
	for {
		left := vs[CircularIndex(top+leftOff, len(vs))]
		right := vs[CircularIndex(top-rightOff, len(vs))]
		if left.Equals2D(right) {
			bottom = left
			break
		}
		if left.Above(right) {
			leftChain[left] = struct{}{}
			sorted = append(sorted, left)
			leftOff++
		} else {
			sorted = append(sorted, right)
			rightOff++
		}
	}

	stack := []Coordinate{sorted[0], sorted[1]}
	peek := func() Coordinate { return stack[len(stack)-1] }
	pop := func() Coordinate {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return c
	}

	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := isLeft(p)
		if left != isLeft(peek()) {
			// Jumped to the opposite chain: monotonicity guarantees every
			// stacked point is visible, so the whole stack empties into fans.
			for len(stack) > 0 {
				a := pop()
				if len(stack) > 0 {
					b := peek()
					if left {
						triangles = appendTriangle(triangles, Triangle{p, a, b})
					} else {
						triangles = appendTriangle(triangles, Triangle{a, p, b})
					}
				}
			}
			stack = append(stack, sorted[i-1], p)
			continue
		}

		// Same chain: pop as long as the new point can see the stack top,
		// which is exactly when the candidate triangle comes out
		// counterclockwise.
		v := pop()
		for len(stack) > 0 {
			var candidate Triangle
			if left {
				candidate = Triangle{p, peek(), v}
			} else {
				candidate = Triangle{p, v, peek()}
			}
			if !candidate.IsCCW() {
				break
			}
			v = pop()
			triangles = append(triangles, candidate)
		}
		stack = append(stack, v, p)
	}

	// The remaining stack fans out from the bottom point. Unlike a pure
	// diagonal-insertion variant, the final triangle must be generated too,
	// or the bottom point would drop out of the result entirely.
	l := pop()
	for len(stack) > 0 {
		p := pop()
		if isLeft(l) {
			triangles = appendTriangle(triangles, Triangle{bottom, p, l})
		} else {
			triangles = appendTriangle(triangles, Triangle{bottom, l, p})
		}
		l = p
	}
	return triangles
}

// Pulled out so it is easy to add instrumentation.
func appendTriangle(triangles []Triangle, tri Triangle) []Triangle {
	if tri.SignedArea() < -Tolerance {
		fatalf("triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
