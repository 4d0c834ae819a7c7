package geom

import (
	"math"
	"math/rand"
	"sort"
)

// RandomPolygon generates a star-shaped simple counterclockwise ring with n
// vertices inside the envelope: random angles about the envelope center,
// sorted, each paired with a random radius. Star-shapedness guarantees
// simplicity without any rejection sampling, which keeps test-data
// generation deterministic per seed.
func RandomPolygon(rng *rand.Rand, n int, env Envelope) Ring {
	if n < 3 {
		invalidArgf("random polygon needs at least 3 vertices, got %d", n)
	}
	center := env.Center()
	halfW := (env.MaxX - env.MinX) / 2
	halfH := (env.MaxY - env.MinY) / 2
	if halfW <= 0 || halfH <= 0 {
		domainf("random polygon needs an envelope with positive extent, got %+v", env)
	}

	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)
	// Nudge duplicated angles apart so no two vertices collapse onto the
	// same ray.
	for i := 1; i < n; i++ {
		if angles[i]-angles[i-1] < Tolerance {
			angles[i] = angles[i-1] + Tolerance*10
		}
	}

	ring := make(Ring, n)
	for i, theta := range angles {
		r := 0.1 + 0.9*rng.Float64()
		ring[i] = Coordinate{
			X: center.X + r*halfW*math.Cos(theta),
			Y: center.Y + r*halfH*math.Sin(theta),
		}
	}
	// Sorted ascending angles already walk counterclockwise.
	return ring
}
