package geom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared assertion helpers for the geometry tests.

func c(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

func square(minX, minY, size float64) Ring {
	return Ring{
		c(minX, minY),
		c(minX+size, minY),
		c(minX+size, minY+size),
		c(minX, minY+size),
	}
}

// canonicalRing normalizes a ring for comparison: open form, forced
// counterclockwise, rotated to start at the lexicographically smallest
// vertex.
func canonicalRing(r Ring) Ring {
	vs := r.vertices()
	if Ring(vs).RingOrientation() == Clockwise {
		vs = Ring(vs).Reverse()
	}
	low := 0
	for i := range vs {
		if vs[i].Below(vs[low]) {
			low = i
		}
	}
	out := make(Ring, 0, len(vs))
	for i := range vs {
		out = append(out, vs[CircularIndex(low+i, len(vs))])
	}
	return out
}

// assertSameRing compares two rings up to closure, rotation, and direction.
func assertSameRing(t *testing.T, expected, actual Ring) {
	t.Helper()
	e, a := canonicalRing(expected), canonicalRing(actual)
	require.Equal(t, len(e), len(a), "ring size mismatch: want %v, got %v", e, a)
	for i := range e {
		assert.InDelta(t, e[i].X, a[i].X, 1e-6, "vertex %d of %v vs %v", i, e, a)
		assert.InDelta(t, e[i].Y, a[i].Y, 1e-6, "vertex %d of %v vs %v", i, e, a)
	}
}

func totalArea(polys []Polygon) float64 {
	var sum float64
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}

// assertValidTriangulation cross-checks a triangulation against its source
// polygon: every triangle counterclockwise with its centroid inside the
// polygon, every vertex an original polygon vertex, and total area equal to
// the polygon area.
func assertValidTriangulation(t *testing.T, p Polygon, triangles []Triangle) {
	t.Helper()
	originals := map[Coordinate]struct{}{}
	for _, r := range p.Rings() {
		for _, v := range r.vertices() {
			originals[Coordinate{X: v.X, Y: v.Y}] = struct{}{}
		}
	}
	var area float64
	for i, tri := range triangles {
		area += tri.SignedArea()
		assert.GreaterOrEqual(t, tri.SignedArea(), -Tolerance,
			"triangle %d is clockwise: %v", i, tri)
		for _, v := range []Coordinate{tri.A, tri.B, tri.C} {
			_, ok := originals[Coordinate{X: v.X, Y: v.Y}]
			assert.True(t, ok, "triangle %d has a non-original vertex %v", i, v)
		}
		if !tri.IsCCW() {
			continue // zero-area sliver, no interior to test
		}
		centroid := LineStringCentroid([]Coordinate{tri.A, tri.B, tri.C})
		assert.True(t, p.InInterior(centroid),
			"triangle %d centroid %v lies outside the polygon", i, centroid)
	}
	assert.InDelta(t, p.Area(), area, 1e-6, "triangulated area differs from polygon area")
}

// pointName makes subtest names out of coordinates without fmt noise.
func pointName(p Coordinate) string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
