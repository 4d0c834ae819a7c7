package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreinerHormannConvexIntersection(t *testing.T) {
	// Two overlapping axis-aligned squares:
	//
	//        ┌────────┐
	//        │        │
	//   ┌────┼───┐    │
	//   │    │▒▒▒│    │
	//   │    └───┼────┘
	//   │        │
	//   └────────┘
	a := NewPolygon(square(0, 0, 10))
	b := NewPolygon(square(5, 5, 10))
	result := GreinerHormann{}.Clip(a, b)

	require.Len(t, result.Internal, 1)
	assertSameRing(t, Ring{c(10, 5), c(10, 10), c(5, 10), c(5, 5)}, result.Internal[0].Shell)
	assert.Empty(t, result.Internal[0].Holes)

	require.Len(t, result.ExternalFirst, 1)
	assert.InDelta(t, 75, result.ExternalFirst[0].Area(), 1e-9)
	require.Len(t, result.ExternalSecond, 1)
	assert.InDelta(t, 75, result.ExternalSecond[0].Area(), 1e-9)

	t.Run("output winding convention", func(t *testing.T) {
		for _, polys := range [][]Polygon{result.Internal, result.ExternalFirst, result.ExternalSecond} {
			for _, p := range polys {
				assert.Equal(t, CounterClockwise, p.Shell.RingOrientation())
				for _, h := range p.Holes {
					assert.Equal(t, Clockwise, h.RingOrientation())
				}
			}
		}
	})
}

func TestGreinerHormannDisjoint(t *testing.T) {
	a := NewPolygon(square(0, 0, 10))
	b := NewPolygon(square(20, 20, 5))
	result := GreinerHormann{}.Clip(a, b)

	assert.Empty(t, result.Internal)
	require.Len(t, result.ExternalFirst, 1)
	assertSameRing(t, a.Shell, result.ExternalFirst[0].Shell)
	require.Len(t, result.ExternalSecond, 1)
	assertSameRing(t, b.Shell, result.ExternalSecond[0].Shell)
}

func TestGreinerHormannContainment(t *testing.T) {
	// B fully inside A: the intersection is B, A minus B is A with a B
	// shaped hole, and B minus A is nothing.
	a := NewPolygon(square(0, 0, 30))
	b := NewPolygon(square(10, 10, 10))
	result := GreinerHormann{}.Clip(a, b)

	require.Len(t, result.Internal, 1)
	assertSameRing(t, b.Shell, result.Internal[0].Shell)

	require.Len(t, result.ExternalFirst, 1)
	assertSameRing(t, a.Shell, result.ExternalFirst[0].Shell)
	require.Len(t, result.ExternalFirst[0].Holes, 1)
	assertSameRing(t, b.Shell, result.ExternalFirst[0].Holes[0])
	assert.InDelta(t, 800, result.ExternalFirst[0].Area(), 1e-9)

	assert.Empty(t, result.ExternalSecond)
}

func TestGreinerHormannWithHoles(t *testing.T) {
	// A has a hole; B overlaps A's right half but stays clear of the hole.
	a := NewPolygon(square(0, 0, 20), square(4, 4, 4).Reverse())
	b := NewPolygon(square(10, 5, 20))
	result := GreinerHormann{}.Clip(a, b)

	assert.InDelta(t, a.Area(), totalArea(result.Internal)+totalArea(result.ExternalFirst), 1e-9)
	assert.InDelta(t, b.Area(), totalArea(result.Internal)+totalArea(result.ExternalSecond), 1e-9)
	// B ∩ A here is the 10x15 overlap rectangle.
	assert.InDelta(t, 150, totalArea(result.Internal), 1e-9)
}

func TestGreinerHormannHoleOverlap(t *testing.T) {
	// B lands right on top of A's hole: the intersection is B minus the
	// hole region.
	a := NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse())
	b := NewPolygon(square(5, 5, 20))
	result := GreinerHormann{}.Clip(a, b)

	assert.InDelta(t, 300, totalArea(result.Internal), 1e-9, "B's 400 minus the 100 hole")
	assert.InDelta(t, a.Area(), totalArea(result.Internal)+totalArea(result.ExternalFirst), 1e-9)
	assert.InDelta(t, b.Area(), totalArea(result.Internal)+totalArea(result.ExternalSecond), 1e-9)
}

// Area(Internal) + Area(ExternalFirst) must equal Area(A), and likewise for
// B, on any input without precision rounding.
func TestGreinerHormannComplementarity(t *testing.T) {
	cases := []struct {
		name string
		a, b Polygon
	}{
		{"overlapping squares", NewPolygon(square(0, 0, 10)), NewPolygon(square(5, 5, 10))},
		{"disjoint", NewPolygon(square(0, 0, 10)), NewPolygon(square(30, 0, 10))},
		{"contained", NewPolygon(square(0, 0, 30)), NewPolygon(square(10, 10, 10))},
		{"plus and square", NewPolygon(loadFixture("plus")), NewPolygon(square(5, 5, 40))},
		{"comb and square", NewPolygon(loadFixture("comb")), NewPolygon(square(-5, 5, 20))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := GreinerHormann{}.Clip(tc.a, tc.b)
			assert.InDelta(t, tc.a.Area(), totalArea(result.Internal)+totalArea(result.ExternalFirst), 1e-6)
			assert.InDelta(t, tc.b.Area(), totalArea(result.Internal)+totalArea(result.ExternalSecond), 1e-6)
		})
	}
}

// Clipping (A,B) and (B,A) must swap the external results and keep the same
// intersection.
func TestGreinerHormannSymmetry(t *testing.T) {
	a := NewPolygon(loadFixture("plus"))
	b := NewPolygon(square(5, 5, 40))
	ab := GreinerHormann{}.Clip(a, b)
	ba := GreinerHormann{}.Clip(b, a)

	assert.InDelta(t, totalArea(ab.Internal), totalArea(ba.Internal), 1e-9)
	assert.InDelta(t, totalArea(ab.ExternalFirst), totalArea(ba.ExternalSecond), 1e-9)
	assert.InDelta(t, totalArea(ab.ExternalSecond), totalArea(ba.ExternalFirst), 1e-9)
}

func TestGreinerHormannSharedEdge(t *testing.T) {
	// Adjacent squares sharing the edge x=10: no interior overlap, and the
	// shared edge must not generate phantom intersection slivers.
	a := NewPolygon(square(0, 0, 10))
	b := NewPolygon(square(10, 0, 10))
	result := GreinerHormann{}.Clip(a, b)

	assert.InDelta(t, 0, totalArea(result.Internal), 1e-9)
	assert.InDelta(t, 100, totalArea(result.ExternalFirst), 1e-9)
	assert.InDelta(t, 100, totalArea(result.ExternalSecond), 1e-9)
}

func TestGreinerHormannPrecisionModel(t *testing.T) {
	// Near-coincident corners collapse onto the grid instead of producing
	// micro slivers.
	a := NewPolygon(Ring{c(0, 0), c(10.0004, 0), c(10.0004, 10.0003), c(0, 10.0003)})
	b := NewPolygon(square(5, 5, 10))
	result := GreinerHormann{Precision: FixedPrecision(0.001)}.Clip(a, b)

	require.Len(t, result.Internal, 1)
	assert.InDelta(t, 25, totalArea(result.Internal), 0.1)
}

func TestGreinerHormannRejectsBadInput(t *testing.T) {
	good := NewPolygon(square(0, 0, 10))
	assert.Panics(t, func() { GreinerHormann{}.Clip(Polygon{}, good) })
	assert.Panics(t, func() { GreinerHormann{}.Clip(good, NewPolygon(Ring{c(0, 0), c(1, 1)})) })
	assert.Panics(t, func() {
		GreinerHormann{}.Clip(good, NewPolygon(Ring{c(0, 0), InvalidCoordinate, c(1, 1)}))
	})
}

// Randomized cross-check: complementarity holds for star-shaped random
// polygon pairs.
func TestGreinerHormannRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for i := 0; i < 25; i++ {
		a := NewPolygon(RandomPolygon(rng, 5+rng.Intn(8), Envelope{0, 0, 20, 20}))
		b := NewPolygon(RandomPolygon(rng, 5+rng.Intn(8), Envelope{8, 8, 28, 28}))
		result := GreinerHormann{}.Clip(a, b)
		assert.InDelta(t, a.Area(), totalArea(result.Internal)+totalArea(result.ExternalFirst), 1e-6,
			"case %d polygon A", i)
		assert.InDelta(t, b.Area(), totalArea(result.Internal)+totalArea(result.ExternalSecond), 1e-6,
			"case %d polygon B", i)
	}
}
