package geom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeilerAthertonConvexIntersection(t *testing.T) {
	// Same overlapping squares as the Greiner–Hormann suite. Both clippers
	// must produce the same pieces here.
	//
	//            ┌──────────┐
	//            │          │
	//       ┌────┼────┐     │
	//       │    │∙∙∙∙│     │
	//       │    └────┼─────┘
	//       │         │
	//       └─────────┘
	a := NewPolygon(square(0, 0, 10))
	b := NewPolygon(square(5, 5, 10))
	result := WeilerAtherton{}.Clip(a, b)

	require.Len(t, result.Internal, 1)
	assertSameRing(t, Ring{c(5, 5), c(10, 5), c(10, 10), c(5, 10)}, result.Internal[0].Shell)

	assert.InDelta(t, 75, totalArea(result.ExternalFirst), 1e-9)
	assert.InDelta(t, 75, totalArea(result.ExternalSecond), 1e-9)
}

func TestWeilerAthertonNested(t *testing.T) {
	a := NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse())
	b := NewPolygon(square(5, 5, 20))
	result := WeilerAtherton{}.Clip(a, b)

	assert.InDelta(t, 300, totalArea(result.Internal), 1e-9)
	assert.InDelta(t, 500, totalArea(result.ExternalFirst), 1e-9)
	assert.InDelta(t, 100, totalArea(result.ExternalSecond), 1e-9)
}

// The two clippers take different routes around the vertex graph but must
// agree on the regions they produce.
func TestWeilerAthertonAgreesWithGreinerHormann(t *testing.T) {
	cases := []struct {
		name string
		a, b Polygon
	}{
		{"overlapping squares", NewPolygon(square(0, 0, 10)), NewPolygon(square(5, 5, 10))},
		{"disjoint", NewPolygon(square(0, 0, 10)), NewPolygon(square(30, 0, 10))},
		{"contained", NewPolygon(square(0, 0, 30)), NewPolygon(square(10, 10, 10))},
		{"shared edge", NewPolygon(square(0, 0, 10)), NewPolygon(square(10, 0, 10))},
		{"holed subject", NewPolygon(square(0, 0, 20), square(4, 4, 4).Reverse()), NewPolygon(square(10, 5, 20))},
		{"plus and square", NewPolygon(loadFixture("plus")), NewPolygon(square(5, 5, 40))},
		{"comb and square", NewPolygon(loadFixture("comb")), NewPolygon(square(-5, 5, 20))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gh := GreinerHormann{}.Clip(tc.a, tc.b)
			wa := WeilerAtherton{}.Clip(tc.a, tc.b)
			assert.InDelta(t, totalArea(gh.Internal), totalArea(wa.Internal), 1e-6)
			assert.InDelta(t, totalArea(gh.ExternalFirst), totalArea(wa.ExternalFirst), 1e-6)
			assert.InDelta(t, totalArea(gh.ExternalSecond), totalArea(wa.ExternalSecond), 1e-6)
		})
	}
}

func TestWeilerAthertonRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	env := Envelope{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	for i := 0; i < 25; i++ {
		t.Run(fmt.Sprintf("pair %d", i), func(t *testing.T) {
			a := NewPolygon(RandomPolygon(rng, 6+rng.Intn(8), env))
			b := NewPolygon(RandomPolygon(rng, 6+rng.Intn(8), env))
			result := WeilerAtherton{}.Clip(a, b)
			assert.InDelta(t, a.Area(), totalArea(result.Internal)+totalArea(result.ExternalFirst), 1e-6)
			assert.InDelta(t, b.Area(), totalArea(result.Internal)+totalArea(result.ExternalSecond), 1e-6)
		})
	}
}

func TestWeilerAthertonRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() {
		WeilerAtherton{}.Clip(NewPolygon(Ring{c(0, 0), c(1, 0)}), NewPolygon(square(0, 0, 1)))
	})
}
