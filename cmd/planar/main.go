package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/planar"
	"github.com/osuushi/planar/geom"
)

// Demo of the geometry operations. Input on stdin should be newline
// separated points in the form "x y", with each ring separated by an extra
// newline. The first ring of each polygon is its shell; clockwise rings that
// follow are holes. For the clip operations exactly two polygons are
// expected: counterclockwise shells start a new polygon.

var (
	op = kingpin.Flag("op", "Operation: clip, intersections, triangulate, buffer, hull").
		Default("clip").Enum("clip", "intersections", "triangulate", "buffer", "hull")
	scale  = kingpin.Flag("scale", "Precision grid scale, 0 for none").Default("0").Float64()
	radius = kingpin.Flag("radius", "Buffer radius").Default("1").Float64()
	draw   = kingpin.Flag("draw", "Render the result to a PNG and cat it (iTerm2)").Bool()
	out    = kingpin.Flag("out", "PNG path for --draw").Default("/tmp/planar.png").String()
)

func main() {
	kingpin.Parse()
	pm := planar.PrecisionModel{}
	if *scale > 0 {
		pm = planar.FixedPrecision(*scale)
	}

	rings := readRings(os.Stdin)
	if len(rings) == 0 {
		fail("no input rings")
	}

	switch *op {
	case "clip":
		polys := groupPolygons(rings)
		if len(polys) != 2 {
			fail("clip needs exactly two polygons, got %d", len(polys))
		}
		result, err := planar.Clip(polys[0], polys[1], pm)
		if err != nil {
			fail("clip: %v", err)
		}
		printPolys("Internal", result.Internal)
		printPolys("ExternalFirst", result.ExternalFirst)
		printPolys("ExternalSecond", result.ExternalSecond)
		if *draw {
			drawPolys(append(append([]planar.Polygon{}, result.Internal...), result.ExternalFirst...))
		}
	case "intersections":
		chains := make([][]planar.Coordinate, len(rings))
		for i, r := range rings {
			chains[i] = r.Closed()
		}
		points, err := planar.Intersections(pm, chains...)
		if err != nil {
			fail("intersections: %v", err)
		}
		fmt.Println(aurora.Bold(fmt.Sprintf("%d intersections", len(points))))
		for _, p := range points {
			fmt.Printf("  %v %v\n", p.X, p.Y)
		}
	case "triangulate":
		polys := groupPolygons(rings)
		var tris []planar.Triangle
		for _, poly := range polys {
			t, err := planar.Triangulate(poly)
			if err != nil {
				fail("triangulate: %v", err)
			}
			tris = append(tris, t...)
		}
		fmt.Println(aurora.Bold(fmt.Sprintf("%d triangles", len(tris))))
		for _, t := range tris {
			fmt.Printf("  (%v %v) (%v %v) (%v %v)\n", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
		}
		if *draw {
			if err := geom.DrawTriangles(tris, 20, *out, true); err != nil {
				fail("draw: %v", err)
			}
		}
	case "buffer":
		polys := groupPolygons(rings)
		var buffered []planar.Polygon
		for _, poly := range polys {
			b, err := planar.Buffer(poly, *radius, 16, pm)
			if err != nil {
				fail("buffer: %v", err)
			}
			buffered = append(buffered, b)
		}
		printPolys("Buffered", buffered)
		if *draw {
			drawPolys(buffered)
		}
	case "hull":
		var points []planar.Coordinate
		for _, r := range rings {
			points = append(points, r...)
		}
		hull, err := planar.ApproximateConvexHull(points, 16)
		if err != nil {
			fail("hull: %v", err)
		}
		printPolys("Hull", []planar.Polygon{{Shell: hull}})
		if *draw {
			drawPolys([]planar.Polygon{{Shell: hull}})
		}
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func printPolys(label string, polys []planar.Polygon) {
	fmt.Println(aurora.Bold(fmt.Sprintf("%s: %d polygons", label, len(polys))))
	for _, poly := range polys {
		for i, ring := range poly.Rings() {
			kind := "shell"
			if i > 0 {
				kind = "hole"
			}
			fmt.Printf("  %s area=%.4f:", kind, ring.Area())
			for _, c := range ring {
				fmt.Printf(" (%v %v)", c.X, c.Y)
			}
			fmt.Println()
		}
	}
}

func drawPolys(polys []planar.Polygon) {
	if err := geom.DrawPolygons(polys, 20, *out, true); err != nil {
		fail("draw: %v", err)
	}
}

func readRings(in *os.File) []planar.Ring {
	rings := []planar.Ring{}
	scanner := bufio.NewScanner(in)
	ring := planar.Ring{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current ring, if any points were collected.
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = planar.Ring{}
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fail("cannot parse point from %q", line)
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			fail("cannot parse point from %q", line)
		}
		ring = append(ring, planar.Coordinate{X: x, Y: y})
	}

	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings
}

// groupPolygons assigns each clockwise ring as a hole of the most recent
// counterclockwise shell, matching the winding convention of the library's
// output.
func groupPolygons(rings []planar.Ring) []planar.Polygon {
	var polys []planar.Polygon
	for _, r := range rings {
		if r.RingOrientation() == geom.Clockwise && len(polys) > 0 {
			last := &polys[len(polys)-1]
			last.Holes = append(last.Holes, r)
			continue
		}
		polys = append(polys, planar.Polygon{Shell: r})
	}
	return polys
}
