package geom

// GreinerHormann is the production polygon clipper. One call computes all
// three boolean products of its two inputs (intersection and both
// differences) from a single augmented-vertex-list build: crossing points
// are spliced into both polygons' ring lists, classified as entry or exit
// relative to the other polygon, and the lists are then walked with
// direction switches at each crossing to emit the closed result rings.
type GreinerHormann struct {
	Precision PrecisionModel
}

// Clip computes A ∩ B, A − B and B − A. It panics with a recoverable error
// (see RecoverError) when either polygon has a ring with fewer than 3
// distinct coordinates or carries invalid coordinates.
func (g GreinerHormann) Clip(a, b Polygon) ClipResult {
	requirePolygon("first polygon", a)
	requirePolygon("second polygon", b)

	arenaA := newClipArena(a, g.Precision)
	arenaB := newClipArena(b, g.Precision)
	spliceCrossings(arenaA, arenaB, findCrossings(arenaA, arenaB, g.Precision))

	classifyEntries(arenaA, arenaB, b)
	classifyEntries(arenaB, arenaA, a)
	reconcilePairs(arenaA, arenaB)
	enforceAlternation(arenaA, arenaB)
	enforceAlternation(arenaB, arenaA)

	if arenaA.crossCount() == 0 {
		return classifyNoCrossing(a, b)
	}

	internal := traverseClip(arenaA, arenaB, false, false)
	externalFirst := traverseClip(arenaA, arenaB, true, false)
	externalSecond := traverseClip(arenaA, arenaB, false, true)

	freeA := arenaA.ringsWithoutCrossings()
	freeB := arenaB.ringsWithoutCrossings()
	internal = append(internal, splitByContainment(freeA, b, true)...)
	internal = append(internal, splitByContainment(freeB, a, true)...)
	externalFirst = append(externalFirst, splitByContainment(freeA, b, false)...)
	externalFirst = append(externalFirst, splitByContainment(freeB, a, true)...)
	externalSecond = append(externalSecond, splitByContainment(freeB, a, false)...)
	externalSecond = append(externalSecond, splitByContainment(freeA, b, true)...)

	return ClipResult{
		Internal:       partitionRings(internal),
		ExternalFirst:  partitionRings(externalFirst),
		ExternalSecond: partitionRings(externalSecond),
	}
}

// splitByContainment filters rings by whether their region lies inside the
// other polygon.
func splitByContainment(rings []Ring, other Polygon, wantInside bool) []Ring {
	var out []Ring
	for _, r := range rings {
		if other.InInterior(representativePoint(r, other)) == wantInside {
			out = append(out, r)
		}
	}
	return out
}

// classifyEntries decides, for every crossing vertex of the arena, whether
// the boundary enters or leaves the other polygon there. The decision is
// made from actual containment of the adjacent sub-edge midpoints rather
// than by blind alternation, because degenerate inputs (tangential touches,
// shared collinear edges) break strict alternation. A vertex whose
// neighborhood does not actually change sides is demoted on the spot; for a
// run of crossings along a shared edge this leaves exactly the first and
// last side-changing vertices live, collapsing the run to single logical
// crossings.
func classifyEntries(arena *clipArena, other *clipArena, otherPoly Polygon) {
	for idx := range arena.nodes {
		v := arena.at(idx)
		if !v.intersection {
			continue
		}
		before := Segment{arena.at(v.prev).coord, v.coord}.Midpoint()
		after := Segment{v.coord, arena.at(v.next).coord}.Midpoint()
		// Points on the shared boundary count as inside: a crossing is only
		// live where the boundary actually reaches the other polygon's
		// exterior on one side.
		insideBefore := !otherPoly.InExterior(before)
		insideAfter := !otherPoly.InExterior(after)
		switch {
		case !insideBefore && insideAfter:
			v.entry = true
		case insideBefore && !insideAfter:
			v.entry = false
		default:
			demote(arena, other, idx)
		}
	}
}

// reconcilePairs demotes any crossing whose partner was demoted during the
// other arena's classification; a crossing is only usable when both lists
// agree it is one.
func reconcilePairs(a, b *clipArena) {
	for idx := range a.nodes {
		v := a.at(idx)
		if v.intersection && (v.neighbor < 0 || !b.at(v.neighbor).intersection) {
			demote(a, b, idx)
		}
	}
	for idx := range b.nodes {
		v := b.at(idx)
		if v.intersection && (v.neighbor < 0 || !a.at(v.neighbor).intersection) {
			demote(b, a, idx)
		}
	}
}

// enforceAlternation validates the entry/exit parity around each ring:
// entries and exits must strictly alternate. Numeric edge cases can leave
// two equal flags in a row; the second of such a pair is not a usable
// crossing and is demoted together with its partner.
func enforceAlternation(arena, other *clipArena) {
	for _, start := range arena.ringStart {
		var ringCrossings []int
		idx := start
		for {
			if arena.at(idx).intersection {
				ringCrossings = append(ringCrossings, idx)
			}
			idx = arena.at(idx).next
			if idx == start {
				break
			}
		}
		if len(ringCrossings) == 0 {
			continue
		}
		kept := []int{ringCrossings[0]}
		for _, idx := range ringCrossings[1:] {
			if arena.at(idx).entry == arena.at(kept[len(kept)-1]).entry {
				demote(arena, other, idx)
				continue
			}
			kept = append(kept, idx)
		}
		// The cycle must close with opposite flags too, and an odd number of
		// crossings cannot alternate at all.
		if len(kept) >= 2 && len(kept)%2 == 1 {
			demote(arena, other, kept[len(kept)-1])
		} else if len(kept) == 1 {
			demote(arena, other, kept[0])
		}
	}
}

// traverseClip walks the augmented lists and emits the closed rings of one
// boolean product. With neither flag flipped the walk follows each polygon's
// inside-the-other arcs and produces the intersection; flipping the first
// polygon's flags produces A − B, flipping the second B − A. At an entry the
// walk moves forward along the current list, at an exit backward, and at
// every crossing it jumps to the cross-linked node in the other list.
func traverseClip(a, b *clipArena, flipA, flipB bool) []Ring {
	a.resetVisited()
	b.resetVisited()
	limit := 2 * (len(a.nodes) + len(b.nodes))

	var out []Ring
	for startIdx := range a.nodes {
		if !a.at(startIdx).intersection || a.at(startIdx).visited {
			continue
		}
		ring := Ring{}
		arena, otherArena := a, b
		flip, otherFlip := flipA, flipB
		cur := startIdx
		steps := 0
		for {
			if steps++; steps > limit {
				fatalf("clip traversal did not close a ring; inputs are likely non-simple")
			}
			node := arena.at(cur)
			node.visited = true
			if node.neighbor >= 0 {
				otherArena.at(node.neighbor).visited = true
			}
			ring = append(ring, node.coord)
			if node.entry != flip {
				cur = node.next
				for !arena.at(cur).intersection {
					ring = append(ring, arena.at(cur).coord)
					cur = arena.at(cur).next
				}
			} else {
				cur = node.prev
				for !arena.at(cur).intersection {
					ring = append(ring, arena.at(cur).coord)
					cur = arena.at(cur).prev
				}
			}
			reached := arena.at(cur)
			reached.visited = true
			next := reached.neighbor
			if next < 0 {
				fatalf("clip traversal reached an unpaired crossing")
			}
			arena, otherArena = otherArena, arena
			flip, otherFlip = otherFlip, flip
			cur = next
			if arena == a && cur == startIdx {
				break
			}
			if arena == b && a.at(startIdx).neighbor == cur {
				break
			}
		}
		if len(ring) >= 3 {
			out = append(out, ring.Closed())
		}
	}
	return out
}
