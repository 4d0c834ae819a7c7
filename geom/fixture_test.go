package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. This is not a full
// (or even correct) svg parser. It parses the SVG, finds whatever the first
// polygon is, and converts that into a CCW Ring. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) Ring {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var ring Ring
	for _, pair := range strings.Fields(pointString) {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pair, name)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		ring = append(ring, Coordinate{X: x, Y: y})
	}

	// SVG is y-down, so shapes authored counterclockwise on screen come out
	// clockwise here. Normalize.
	if ring.RingOrientation() == Clockwise {
		ring = ring.Reverse()
	}
	return ring
}
