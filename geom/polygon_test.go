package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingOrientation(t *testing.T) {
	ccw := square(0, 0, 10)
	cw := ccw.Reverse()

	assert.Equal(t, CounterClockwise, ccw.RingOrientation())
	assert.Equal(t, Clockwise, cw.RingOrientation())
	assert.Equal(t, CounterClockwise, ccw.Closed().RingOrientation(), "closure does not change orientation")

	t.Run("reversal flips orientation and negates signed area", func(t *testing.T) {
		assert.Equal(t, ccw.RingOrientation().Opposite(), cw.RingOrientation())
		assert.InDelta(t, 100, ccw.SignedArea(), 1e-12)
		assert.InDelta(t, -100, cw.SignedArea(), 1e-12)
		assert.InDelta(t, ccw.Area(), cw.Area(), 1e-12)
	})

	t.Run("degenerate ring is collinear", func(t *testing.T) {
		line := Ring{c(0, 0), c(5, 0), c(10, 0)}
		assert.Equal(t, CollinearOrientation, line.RingOrientation())
	})

	t.Run("figure eight gets the dominant lobe's orientation", func(t *testing.T) {
		// Two lobes joined at (5,0); the left CCW lobe is bigger than the
		// right CW one.
		eight := Ring{c(0, 0), c(5, 0), c(8, 3), c(8, -3), c(5, 0), c(0, 5)}
		assert.Equal(t, CounterClockwise, eight.RingOrientation())
	})
}

func TestPolygonArea(t *testing.T) {
	p := NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse())
	assert.InDelta(t, 800, p.Area(), 1e-12)
	assert.InDelta(t, 900, p.Shell.Area(), 1e-12)
}

func TestRingCentroid(t *testing.T) {
	assert.True(t, square(0, 0, 10).Centroid().Near(c(5, 5)))
	// Centroid is area-weighted, not a vertex mean.
	l := Ring{c(0, 0), c(4, 0), c(4, 1), c(1, 1), c(1, 4), c(0, 4)}
	got := l.Centroid()
	assert.InDelta(t, 9.5/7, got.X, 1e-6)
	assert.InDelta(t, 9.5/7, got.Y, 1e-6)
}

func TestIsConvex(t *testing.T) {
	assert.True(t, square(0, 0, 5).IsConvex())
	assert.True(t, Ring{c(0, 0), c(5, 0), c(10, 0), c(10, 10), c(0, 10)}.IsConvex(),
		"collinear vertices are tolerated")
	assert.False(t, Ring{c(0, 0), c(10, 0), c(10, 10), c(5, 5), c(0, 10)}.IsConvex())
	assert.True(t, square(0, 0, 5).Reverse().IsConvex(), "convexity is direction-independent")

	t.Run("polygon with holes is never convex", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 30), square(10, 10, 5).Reverse())
		assert.False(t, p.IsConvex())
	})
}

func TestIsSimple(t *testing.T) {
	assert.True(t, square(0, 0, 10).IsSimple())

	bowtie := Ring{c(0, 0), c(10, 10), c(10, 0), c(0, 10)}
	assert.False(t, bowtie.IsSimple())

	t.Run("hole crossing the shell makes the polygon non-simple", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 10), square(5, 5, 10).Reverse())
		assert.False(t, p.IsSimple())

		nested := NewPolygon(square(0, 0, 10), square(2, 2, 3).Reverse())
		assert.True(t, nested.IsSimple())
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, square(0, 0, 10).IsValid())
	assert.True(t, square(0, 0, 10).Closed().IsValid())
	assert.False(t, Ring{c(0, 0), c(1, 1)}.IsValid(), "too few points")
	assert.False(t, Ring{c(0, 0), c(5, 5), c(5, 5), c(0, 10)}.IsValid(), "duplicate consecutive points")
	assert.False(t, Ring{c(0, 0), c(10, 10), c(10, 0), c(0, 10)}.IsValid(), "self-crossing")
	assert.False(t, Ring{c(0, 0), Coordinate{5, 0, 1}, c(5, 5)}.IsValid(), "inconsistent Z")
	assert.False(t, Ring{c(0, 0), InvalidCoordinate, c(5, 5)}.IsValid(), "sentinel coordinate")

	t.Run("polygon validity requires nested disjoint holes", func(t *testing.T) {
		assert.True(t, NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse()).IsValid())
		assert.False(t, NewPolygon(square(0, 0, 30), square(40, 40, 5).Reverse()).IsValid(),
			"hole outside the shell")
		assert.False(t, NewPolygon(
			square(0, 0, 30),
			square(5, 5, 10).Reverse(),
			square(8, 8, 4).Reverse(),
		).IsValid(), "hole nested in another hole")
	})
}

func TestPointClassification(t *testing.T) {
	p := NewPolygon(square(0, 0, 30), square(10, 10, 10).Reverse())

	cases := []struct {
		point    Coordinate
		interior bool
		boundary bool
	}{
		{c(5, 5), true, false},
		{c(15, 15), false, false}, // inside the hole: exterior
		{c(-5, 5), false, false},
		{c(0, 5), false, true},   // on the shell
		{c(10, 15), false, true}, // on the hole boundary
		{c(30, 30), false, true}, // shell corner
	}
	for _, tc := range cases {
		t.Run(pointName(tc.point), func(t *testing.T) {
			assert.Equal(t, tc.interior, p.InInterior(tc.point))
			assert.Equal(t, tc.boundary, p.OnBoundary(tc.point))
			assert.Equal(t, !tc.interior && !tc.boundary, p.InExterior(tc.point))
		})
	}

	t.Run("exactly one classification holds", func(t *testing.T) {
		for _, pt := range []Coordinate{c(1, 1), c(29, 29), c(15, 5), c(11, 11), c(-1, -1)} {
			states := 0
			for _, b := range []bool{p.InInterior(pt), p.InExterior(pt), p.OnBoundary(pt)} {
				if b {
					states++
				}
			}
			assert.Equal(t, 1, states, "point %v", pt)
		}
	})
}
