package geom

// The clippers augment each input polygon with a doubly linked traversal
// list per ring, into which computed crossing points are spliced. Nodes live
// in a per-call arena and refer to each other by index: "next/previous in
// ring" and "paired node in the other polygon" are indices, never pointers,
// so the whole structure is dropped when the clip call returns and no cyclic
// ownership ever exists.

type clipVertex struct {
	coord Coordinate
	next  int
	prev  int
	ring  int

	// original marks vertices of the input ring as opposed to spliced-in
	// crossing points. Edges are identified by their original start vertex.
	original bool

	// alpha is the parametric position along the source edge, used to keep
	// spliced vertices sorted between their edge's original endpoints.
	alpha float64

	// intersection marks a vertex as a genuine crossing, paired with
	// neighbor in the other arena. entry is the Greiner-Hormann flag:
	// the boundary transitions into the other polygon here.
	intersection bool
	entry        bool
	visited      bool
	neighbor     int
}

type clipArena struct {
	nodes     []clipVertex
	ringStart []int
	source    Polygon
	pm        PrecisionModel
}

func newClipArena(p Polygon, pm PrecisionModel) *clipArena {
	a := &clipArena{source: p, pm: pm}
	for ringIdx, r := range p.Rings() {
		vs := r.vertices()
		base := len(a.nodes)
		a.ringStart = append(a.ringStart, base)
		for i, c := range vs {
			a.nodes = append(a.nodes, clipVertex{
				coord:    c,
				next:     base + CircularIndex(i+1, len(vs)),
				prev:     base + CircularIndex(i-1, len(vs)),
				ring:     ringIdx,
				original: true,
				neighbor: -1,
			})
		}
	}
	return a
}

func (a *clipArena) at(i int) *clipVertex {
	return &a.nodes[i]
}

// eachOriginalEdge visits every edge of every ring, identified by the index
// of its original start vertex. Spliced vertices never change the edge set.
func (a *clipArena) eachOriginalEdge(fn func(start int, seg Segment)) {
	for i := range a.nodes {
		v := &a.nodes[i]
		if !v.original {
			continue
		}
		end := a.originalNext(i)
		fn(i, Segment{v.coord, a.nodes[end].coord})
	}
}

// originalNext is the next original vertex, skipping spliced crossings.
func (a *clipArena) originalNext(i int) int {
	j := a.nodes[i].next
	for !a.nodes[j].original {
		j = a.nodes[j].next
	}
	return j
}

// insertOnEdge splices a crossing coordinate into the edge that starts at
// the original vertex start, keeping spliced vertices ordered by alpha. When
// the point lands on an existing vertex of the list (per the precision
// model) that vertex is reused instead of duplicating it; runs of identical
// degenerate crossings therefore collapse onto single nodes in original
// traversal order.
func (a *clipArena) insertOnEdge(start int, coord Coordinate, alpha float64) int {
	cur := start
	if a.pm.Equal2D(a.nodes[start].coord, coord) {
		return start
	}
	for {
		next := a.nodes[cur].next
		n := &a.nodes[next]
		if a.pm.Equal2D(n.coord, coord) {
			return next
		}
		if n.original || n.alpha > alpha {
			break
		}
		cur = next
	}
	idx := len(a.nodes)
	a.nodes = append(a.nodes, clipVertex{
		coord:    coord,
		next:     a.nodes[cur].next,
		prev:     cur,
		ring:     a.nodes[cur].ring,
		alpha:    alpha,
		neighbor: -1,
	})
	a.nodes[a.nodes[idx].next].prev = idx
	a.nodes[cur].next = idx
	return idx
}

// crossCount is the number of live crossing vertices.
func (a *clipArena) crossCount() int {
	n := 0
	for i := range a.nodes {
		if a.nodes[i].intersection {
			n++
		}
	}
	return n
}

func (a *clipArena) resetVisited() {
	for i := range a.nodes {
		a.nodes[i].visited = false
	}
}

// ringsWithoutCrossings returns the source rings no crossing vertex landed
// on; those belong wholly to one side of the clip.
func (a *clipArena) ringsWithoutCrossings() []Ring {
	crossed := make(map[int]bool)
	for i := range a.nodes {
		if a.nodes[i].intersection {
			crossed[a.nodes[i].ring] = true
		}
	}
	var out []Ring
	for ringIdx, r := range a.source.Rings() {
		if !crossed[ringIdx] {
			out = append(out, r)
		}
	}
	return out
}

// crossing records one computed intersection point between an edge of each
// arena, before splicing.
type crossing struct {
	aEdge, bEdge   int
	point          Coordinate
	alphaA, alphaB float64
}

// findCrossings locates all pairwise edge intersections between the two
// arenas' original edges: shell against shell, shell against hole, and hole
// against hole alike. A collinear overlap contributes its two overlap
// extremes, each as its own crossing candidate.
func findCrossings(a, b *clipArena, pm PrecisionModel) []crossing {
	var out []crossing
	a.eachOriginalEdge(func(ai int, as Segment) {
		b.eachOriginalEdge(func(bi int, bs Segment) {
			for _, p := range as.Intersection(bs, pm) {
				out = append(out, crossing{
					aEdge: ai, bEdge: bi, point: p,
					alphaA: edgeParameter(as, p),
					alphaB: edgeParameter(bs, p),
				})
			}
		})
	})
	return out
}

// edgeParameter is the parametric position of p along seg in [0, 1].
func edgeParameter(seg Segment, p Coordinate) float64 {
	v := seg.Vector()
	lenSq := v.Dot(v)
	if Equal(lenSq, 0) {
		return 0
	}
	return clamp01(p.Sub(seg.Start).Dot(v) / lenSq)
}

// spliceCrossings inserts every crossing into both arenas and pairs the
// resulting nodes. A node that already carries a different pairing keeps it;
// the redundant pairing of a degenerate run is simply skipped, which is what
// collapses such a run into a single logical crossing.
func spliceCrossings(a, b *clipArena, crossings []crossing) {
	for _, c := range crossings {
		na := a.insertOnEdge(c.aEdge, c.point, c.alphaA)
		nb := b.insertOnEdge(c.bEdge, c.point, c.alphaB)
		va, vb := a.at(na), b.at(nb)
		if (va.intersection && va.neighbor != nb) || (vb.intersection && vb.neighbor != na) {
			continue
		}
		va.intersection, vb.intersection = true, true
		va.neighbor, vb.neighbor = nb, na
	}
}

// demote strips a vertex of its crossing status on both sides of the
// pairing.
func demote(a, b *clipArena, idx int) {
	v := a.at(idx)
	if v.neighbor >= 0 {
		nb := b.at(v.neighbor)
		nb.intersection = false
		nb.neighbor = -1
	}
	v.intersection = false
	v.neighbor = -1
}
