package geom

// WeilerAtherton is the alternative clipping engine. It shares the
// crossing-splice machinery with GreinerHormann but keeps different books:
// instead of per-vertex entry/exit flags and a direction-switching pointer
// walk, it carries an inside/outside state along each ring — seeded from
// containment just before the ring's first crossing and toggled at every
// subsequent one — cuts the rings into subject and clip arcs at the
// crossings, and stitches arcs of matching regions back together by their
// endpoints. The two clippers satisfy the identical contract.
type WeilerAtherton struct {
	Precision PrecisionModel
}

// Clip computes A ∩ B, A − B and B − A; A is the subject, B the clip
// polygon. Same error behavior as GreinerHormann.Clip.
func (w WeilerAtherton) Clip(a, b Polygon) ClipResult {
	requirePolygon("subject polygon", a)
	requirePolygon("clip polygon", b)

	subject := newClipArena(a, w.Precision)
	clip := newClipArena(b, w.Precision)
	spliceCrossings(subject, clip, findCrossings(subject, clip, w.Precision))

	markSpanStates(subject, clip, b)
	markSpanStates(clip, subject, a)
	reconcilePairs(subject, clip)

	if subject.crossCount() == 0 {
		return classifyNoCrossing(a, b)
	}

	subjArcs := extractArcs(subject)
	clipArcs := extractArcs(clip)

	internal := stitchArcs(w.Precision,
		arcsBy(subjArcs, true, false), arcsBy(clipArcs, true, false))
	externalFirst := stitchArcs(w.Precision,
		arcsBy(subjArcs, false, false), arcsBy(clipArcs, true, true))
	externalSecond := stitchArcs(w.Precision,
		arcsBy(clipArcs, false, false), arcsBy(subjArcs, true, true))

	freeSubj := subject.ringsWithoutCrossings()
	freeClip := clip.ringsWithoutCrossings()
	internal = append(internal, splitByContainment(freeSubj, b, true)...)
	internal = append(internal, splitByContainment(freeClip, a, true)...)
	externalFirst = append(externalFirst, splitByContainment(freeSubj, b, false)...)
	externalFirst = append(externalFirst, splitByContainment(freeClip, a, true)...)
	externalSecond = append(externalSecond, splitByContainment(freeClip, a, false)...)
	externalSecond = append(externalSecond, splitByContainment(freeSubj, b, true)...)

	return ClipResult{
		Internal:       partitionRings(internal),
		ExternalFirst:  partitionRings(externalFirst),
		ExternalSecond: partitionRings(externalSecond),
	}
}

// markSpanStates walks each ring once, toggling the inside/outside state at
// every crossing and validating each toggle against actual containment of
// the following sub-edge. A crossing whose far side does not change sides is
// tangential, not a crossing, and is demoted. The surviving state is stored
// on the crossing node (entry == "the span after this node lies inside the
// other polygon").
func markSpanStates(arena, other *clipArena, otherPoly Polygon) {
	for _, start := range arena.ringStart {
		first := -1
		idx := start
		for {
			if arena.at(idx).intersection {
				first = idx
				break
			}
			idx = arena.at(idx).next
			if idx == start {
				break
			}
		}
		if first < 0 {
			continue
		}

		v := arena.at(first)
		before := Segment{arena.at(v.prev).coord, v.coord}.Midpoint()
		state := !otherPoly.InExterior(before)

		idx = first
		for {
			node := arena.at(idx)
			next := idx
			for {
				next = arena.at(next).next
				if arena.at(next).intersection || next == first {
					break
				}
			}
			if node.intersection {
				after := Segment{node.coord, arena.at(node.next).coord}.Midpoint()
				insideAfter := !otherPoly.InExterior(after)
				if insideAfter == state {
					demote(arena, other, idx)
				} else {
					state = insideAfter
					node.entry = state
				}
			}
			if next == first {
				break
			}
			idx = next
		}
	}
}

// clipArc is one piece of a ring between two consecutive crossings, crossing
// endpoints included.
type clipArc struct {
	pts    []Coordinate
	inside bool
	used   bool
}

// extractArcs cuts every crossed ring of the arena into arcs at its live
// crossing vertices.
func extractArcs(arena *clipArena) []*clipArc {
	var out []*clipArc
	for _, start := range arena.ringStart {
		first := -1
		idx := start
		for {
			if arena.at(idx).intersection {
				first = idx
				break
			}
			idx = arena.at(idx).next
			if idx == start {
				break
			}
		}
		if first < 0 {
			continue
		}
		idx = first
		for {
			node := arena.at(idx)
			arc := &clipArc{pts: []Coordinate{node.coord}, inside: node.entry}
			j := node.next
			for !arena.at(j).intersection {
				arc.pts = append(arc.pts, arena.at(j).coord)
				j = arena.at(j).next
			}
			arc.pts = append(arc.pts, arena.at(j).coord)
			out = append(out, arc)
			idx = j
			if idx == first {
				break
			}
		}
	}
	return out
}

// arcsBy selects arcs by region, optionally reversing them (differences use
// the other polygon's inside arcs backwards, so the carved boundary winds
// against the kept one).
func arcsBy(arcs []*clipArc, inside, reversed bool) []*clipArc {
	var out []*clipArc
	for _, a := range arcs {
		if a.inside != inside {
			continue
		}
		if !reversed {
			out = append(out, &clipArc{pts: a.pts, inside: a.inside})
			continue
		}
		rev := make([]Coordinate, len(a.pts))
		for i, p := range a.pts {
			rev[len(a.pts)-1-i] = p
		}
		out = append(out, &clipArc{pts: rev, inside: a.inside})
	}
	return out
}

type arcKey struct {
	x, y float64
}

// stitchArcs chains arcs end to start until rings close. Arc endpoints are
// crossing coordinates computed once and spliced into both arenas, so after
// precision rounding they match exactly.
func stitchArcs(pm PrecisionModel, groups ...[]*clipArc) []Ring {
	index := make(map[arcKey][]*clipArc)
	var all []*clipArc
	for _, group := range groups {
		for _, arc := range group {
			p := pm.RoundCoordinate(arc.pts[0])
			key := arcKey{p.X, p.Y}
			index[key] = append(index[key], arc)
			all = append(all, arc)
		}
	}

	var out []Ring
	for _, start := range all {
		if start.used {
			continue
		}
		start.used = true
		ring := Ring(append([]Coordinate{}, start.pts...))
		closed := false
		for steps := 0; steps <= len(all); steps++ {
			last := pm.RoundCoordinate(ring[len(ring)-1])
			firstPt := pm.RoundCoordinate(ring[0])
			if last.Equals2D(firstPt) {
				closed = true
				break
			}
			var next *clipArc
			for _, cand := range index[arcKey{last.X, last.Y}] {
				if !cand.used {
					next = cand
					break
				}
			}
			if next == nil {
				break
			}
			next.used = true
			ring = append(ring, next.pts[1:]...)
		}
		if closed && len(ring.vertices()) >= 3 {
			out = append(out, ring.Closed())
		}
	}
	return out
}
