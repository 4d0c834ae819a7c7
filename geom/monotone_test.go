package geom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateBasicShapes(t *testing.T) {
	cases := []struct {
		name      string
		poly      Polygon
		triangles int
	}{
		{"triangle", NewPolygon(Ring{c(0, 0), c(10, 0), c(5, 8)}), 1},
		{"square", NewPolygon(square(0, 0, 10)), 2},
		{"diamond", NewPolygon(Ring{c(5, 0), c(10, 5), c(5, 10), c(0, 5)}), 2},
		// One reflex vertex forces a split diagonal.
		{"chevron", NewPolygon(Ring{c(0, 0), c(10, 0), c(5, 4), c(5, 10)}), 2},
		{"pentagon", NewPolygon(Ring{c(5, 0), c(10, 4), c(8, 10), c(2, 10), c(0, 4)}), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tris := Triangulate(tc.poly)
			assert.Len(t, tris, tc.triangles)
			assertValidTriangulation(t, tc.poly, tris)
		})
	}
}

func TestTriangulateConcave(t *testing.T) {
	// The comb's teeth produce a run of split and merge vertices; the plus
	// has reflex corners on every side.
	for _, name := range []string{"comb", "plus"} {
		t.Run(name, func(t *testing.T) {
			poly := NewPolygon(loadFixture(name))
			tris := Triangulate(poly)
			// n boundary vertices, no holes: always n−2 triangles.
			assert.Len(t, tris, len(poly.Shell.vertices())-2)
			assertValidTriangulation(t, poly, tris)
		})
	}
}

func TestTriangulateWithHoles(t *testing.T) {
	t.Run("square with square hole", func(t *testing.T) {
		poly := NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse())
		tris := Triangulate(poly)
		// n vertices and h holes: n + 2h − 2 triangles.
		assert.Len(t, tris, 8)
		assertValidTriangulation(t, poly, tris)
	})
	t.Run("two holes", func(t *testing.T) {
		poly := NewPolygon(square(0, 0, 40),
			square(5, 5, 8).Reverse(),
			square(22, 20, 10).Reverse())
		tris := Triangulate(poly)
		assert.Len(t, tris, 14)
		assertValidTriangulation(t, poly, tris)
	})
}

func TestTriangulateOrientationInsensitive(t *testing.T) {
	// Callers might hand in a clockwise shell or counterclockwise holes; the
	// rings are normalized before the sweep.
	poly := NewPolygon(square(0, 0, 30).Reverse(), square(10, 10, 10))
	tris := Triangulate(poly)
	assert.Len(t, tris, 8)
	assertValidTriangulation(t, NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse()), tris)
}

func TestTriangulateRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	env := Envelope{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}
	for i := 0; i < 30; i++ {
		t.Run(fmt.Sprintf("polygon %d", i), func(t *testing.T) {
			poly := NewPolygon(RandomPolygon(rng, 4+rng.Intn(20), env))
			tris := Triangulate(poly)
			assert.Len(t, tris, len(poly.Shell.vertices())-2)
			assertValidTriangulation(t, poly, tris)
		})
	}
}

func TestTriangulateMonotone(t *testing.T) {
	// A y-monotone staircase, fed straight to the stack walk without the
	// subdivision sweep.
	ring := Ring{c(0, 0), c(6, 2), c(7, 5), c(6, 9), c(0, 7), c(-1, 4)}
	tris := TriangulateMonotone(ring)
	require.Len(t, tris, 4)
	assertValidTriangulation(t, NewPolygon(ring), tris)
}

func TestTriangulateRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { Triangulate(NewPolygon(Ring{c(0, 0), c(1, 0)})) })
}
