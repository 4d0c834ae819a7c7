package geom

import (
	"math"

	"github.com/google/btree"
)

// Sweep-line intersection detection in the Bentley-Ottmann manner: a
// priority queue of events drives a left-to-right sweep while an ordered set
// of "active" segments (those crossing the sweep line) tracks vertical
// ordering, so only neighbors in that ordering ever need a pairwise test.
//
// Both the event queue and the active set are btrees. The active set's
// ordering is relative to the mutable sweep position shared by all its items;
// that ordering changes exactly at intersection events, where the two
// involved segments are pulled out before the sweep advances and reinserted
// after, which keeps the tree consistent.

type sweepEventKind int

const (
	eventCross sweepEventKind = iota
	eventEnd
	eventStart
)

type sweepState struct {
	x, y float64
}

type sweepSegment struct {
	id    int
	start Coordinate // lexicographically smaller endpoint (by X, then Y)
	end   Coordinate
	state *sweepState
}

func (s *sweepSegment) segment() Segment {
	return Segment{s.start, s.end}
}

func (s *sweepSegment) vertical() bool {
	return Equal(s.start.X, s.end.X)
}

// yAt is the segment's height at sweep position x. For verticals the lower
// endpoint stands in; the slope tie-break keeps them ordered above
// everything they touch.
func (s *sweepSegment) yAt(x float64) float64 {
	if s.vertical() {
		return s.start.Y
	}
	t := (x - s.start.X) / (s.end.X - s.start.X)
	return s.start.Y + clamp01(t)*(s.end.Y-s.start.Y)
}

func (s *sweepSegment) slope() float64 {
	if s.vertical() {
		return math.Inf(1)
	}
	return (s.end.Y - s.start.Y) / (s.end.X - s.start.X)
}

// Less orders active segments by height at the current sweep position, then
// by slope (the post-crossing order at a common point), then by id so the
// order is a strict total order and deletions find their exact item.
func (s *sweepSegment) Less(than btree.Item) bool {
	o := than.(*sweepSegment)
	if s.id == o.id {
		return false
	}
	ya, yb := s.yAt(s.state.x), o.yAt(o.state.x)
	if !Equal(ya, yb) {
		return ya < yb
	}
	sa, sb := s.slope(), o.slope()
	if sa != sb {
		return sa < sb
	}
	return s.id < o.id
}

type sweepEvent struct {
	x, y  float64
	kind  sweepEventKind
	a, b  *sweepSegment // b only for crossings
	point Coordinate
}

// Less orders events by X, ties broken by Y, then kind (crossings before
// ends before starts), then the segment ids. The id component doubles as
// deduplication: re-enqueueing the same pairwise crossing is a no-op.
func (e *sweepEvent) Less(than btree.Item) bool {
	o := than.(*sweepEvent)
	if !Equal(e.x, o.x) {
		return e.x < o.x
	}
	if !Equal(e.y, o.y) {
		return e.y < o.y
	}
	if e.kind != o.kind {
		return e.kind < o.kind
	}
	if e.a.id != o.a.id {
		return e.a.id < o.a.id
	}
	eb, ob := -1, -1
	if e.b != nil {
		eb = e.b.id
	}
	if o.b != nil {
		ob = o.b.id
	}
	return eb < ob
}

type sweeper struct {
	events *btree.BTree
	status *btree.BTree
	state  *sweepState
	pm     PrecisionModel

	report       []Coordinate
	seen         map[crossKey]struct{}
	shortCircuit bool
	found        bool
}

// crossKey identifies one pairwise crossing at one (rounded) point, so a
// pair that becomes adjacent again after its swap is not re-enqueued.
type crossKey struct {
	loID, hiID int
	x, y       float64
}

func newSweeper(pm PrecisionModel, shortCircuit bool, chains ...[]Coordinate) *sweeper {
	sw := &sweeper{
		events:       btree.New(16),
		status:       btree.New(16),
		state:        &sweepState{x: math.Inf(-1)},
		pm:           pm,
		seen:         make(map[crossKey]struct{}),
		shortCircuit: shortCircuit,
	}
	id := 0
	for _, chain := range chains {
		if chain == nil {
			invalidArgf("nil coordinate chain")
		}
		if len(chain) < 2 {
			invalidArgf("chain must have at least 2 coordinates, got %d", len(chain))
		}
		for i := 0; i+1 < len(chain); i++ {
			a, b := chain[i], chain[i+1]
			if a.Near(b) {
				continue // zero-length edges carry no events
			}
			if b.X < a.X || (Equal(a.X, b.X) && b.Y < a.Y) {
				a, b = b, a
			}
			seg := &sweepSegment{id: id, start: a, end: b, state: sw.state}
			id++
			sw.events.ReplaceOrInsert(&sweepEvent{x: a.X, y: a.Y, kind: eventStart, a: seg})
			sw.events.ReplaceOrInsert(&sweepEvent{x: b.X, y: b.Y, kind: eventEnd, a: seg})
		}
	}
	return sw
}

// pairIntersections finds the common points of two active segments. Segments
// that merely share an endpoint must not read as crossing, so those pairs
// use the internal (endpoint-excluding) rule; collinear overlaps still come
// back as their two overlap extremes.
func (sw *sweeper) pairIntersections(a, b *sweepSegment) []Coordinate {
	sa, sb := a.segment(), b.segment()
	if sa.sharesEndpoint(sb) {
		return sa.InternalIntersection(sb, sw.pm)
	}
	return sa.Intersection(sb, sw.pm)
}

// checkPair tests two neighbors and queues any crossing that still lies
// ahead of the sweep.
func (sw *sweeper) checkPair(a, b *sweepSegment) {
	if a == nil || b == nil {
		return
	}
	pts := sw.pairIntersections(a, b)
	if len(pts) == 0 {
		return
	}
	if sw.shortCircuit {
		sw.found = true
		return
	}
	for _, p := range pts {
		if p.X < sw.state.x-Tolerance ||
			(Equal(p.X, sw.state.x) && p.Y < sw.state.y-Tolerance) {
			continue // already swept past this point
		}
		key := crossKey{loID: a.id, hiID: b.id, x: p.X, y: p.Y}
		if key.loID > key.hiID {
			key.loID, key.hiID = key.hiID, key.loID
		}
		if _, ok := sw.seen[key]; ok {
			continue
		}
		sw.seen[key] = struct{}{}
		sw.events.ReplaceOrInsert(&sweepEvent{
			x: p.X, y: p.Y, kind: eventCross, a: a, b: b, point: p,
		})
	}
}

func (sw *sweeper) above(s *sweepSegment) *sweepSegment {
	var out *sweepSegment
	sw.status.AscendGreaterOrEqual(s, func(i btree.Item) bool {
		t := i.(*sweepSegment)
		if t.id == s.id {
			return true
		}
		out = t
		return false
	})
	return out
}

func (sw *sweeper) below(s *sweepSegment) *sweepSegment {
	var out *sweepSegment
	sw.status.DescendLessOrEqual(s, func(i btree.Item) bool {
		t := i.(*sweepSegment)
		if t.id == s.id {
			return true
		}
		out = t
		return false
	})
	return out
}

func (sw *sweeper) run() {
	for sw.events.Len() > 0 {
		if sw.found {
			return
		}
		ev := sw.events.DeleteMin().(*sweepEvent)
		switch ev.kind {
		case eventStart:
			sw.state.x, sw.state.y = ev.x, ev.y
			sw.status.ReplaceOrInsert(ev.a)
			sw.checkPair(sw.below(ev.a), ev.a)
			sw.checkPair(ev.a, sw.above(ev.a))
		case eventEnd:
			lo, hi := sw.below(ev.a), sw.above(ev.a)
			sw.status.Delete(ev.a)
			sw.state.x, sw.state.y = ev.x, ev.y
			sw.checkPair(lo, hi)
		case eventCross:
			sw.handleCross(ev)
		}
	}
}

func (sw *sweeper) handleCross(ev *sweepEvent) {
	sw.report = append(sw.report, ev.point)

	// Pull both segments out while the pre-crossing ordering is still in
	// force, then advance the sweep to the event point and reinsert; the
	// slope tie-break in Less now yields the post-crossing order, which is
	// the swap the algorithm calls for.
	inA := sw.status.Delete(ev.a) != nil
	inB := sw.status.Delete(ev.b) != nil
	sw.state.x, sw.state.y = ev.x, ev.y
	if inA {
		sw.status.ReplaceOrInsert(ev.a)
	}
	if inB {
		sw.status.ReplaceOrInsert(ev.b)
	}
	if inA {
		sw.checkPair(sw.below(ev.a), ev.a)
		sw.checkPair(ev.a, sw.above(ev.a))
	}
	if inB {
		sw.checkPair(sw.below(ev.b), ev.b)
		sw.checkPair(ev.b, sw.above(ev.b))
	}

	// When three or more segments meet at one point, two of them may never
	// become adjacent in the status at all. Test every pair in the bundle
	// passing through the event point; the seen set keeps this from
	// re-reporting pairs already handled.
	var bundle []*sweepSegment
	if inA {
		bundle = sw.bundleAt(ev.y, ev.a)
	} else if inB {
		bundle = sw.bundleAt(ev.y, ev.b)
	}
	for i := 0; i < len(bundle); i++ {
		for j := i + 1; j < len(bundle); j++ {
			sw.checkPair(bundle[i], bundle[j])
		}
	}
}

// bundleAt collects the active segments whose height at the current sweep
// position equals y, walking outward from a known member.
func (sw *sweeper) bundleAt(y float64, from *sweepSegment) []*sweepSegment {
	bundle := []*sweepSegment{from}
	for s := sw.below(from); s != nil && Equal(s.yAt(sw.state.x), y); s = sw.below(s) {
		bundle = append(bundle, s)
	}
	for s := sw.above(from); s != nil && Equal(s.yAt(sw.state.x), y); s = sw.above(s) {
		bundle = append(bundle, s)
	}
	return bundle
}

// Intersections reports all pairwise intersection points among the segments
// of the given chains (Bentley-Ottmann). Each consecutive coordinate pair of
// a chain is one segment; pass rings explicitly closed (first == last) to
// include the closing edge. Points are rounded per the precision model, and
// a point where more than two segments meet appears once per pairwise
// crossing. Collinear overlaps are reported as their two overlap extremes.
func Intersections(pm PrecisionModel, chains ...[]Coordinate) []Coordinate {
	sw := newSweeper(pm, false, chains...)
	sw.run()
	return sw.report
}

// Intersects answers the Shamos-Hoey yes/no question: do any two segments of
// the chains intersect anywhere beyond shared chain joints? It runs the same
// sweep but stops at the first hit.
func Intersects(chains ...[]Coordinate) bool {
	sw := newSweeper(PrecisionModel{}, true, chains...)
	sw.run()
	return sw.found
}
