package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Drawing helpers for eyeballing clip and triangulation output in a
// terminal that understands iTerm2 inline images.

const drawPadding = 20

// DrawPolygons renders the polygons to a PNG at path and, when cat is set,
// streams it to stdout. Shells and holes render with the even-odd fill rule,
// so holes appear as actual holes.
func DrawPolygons(polys []Polygon, scale float64, path string, cat bool) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, ring := range poly.Rings() {
			for _, p := range ring {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if minX > maxX {
		return nil
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range polys {
		for _, ring := range poly.Rings() {
			pts := ring.vertices()
			if len(pts) == 0 {
				continue
			}
			c.MoveTo(pts[0].X, pts[0].Y)
			for _, p := range pts[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// DrawTriangles renders a triangulation with each triangle outlined, handy
// for spotting overlap or gaps.
func DrawTriangles(tris []Triangle, scale float64, path string, cat bool) error {
	polys := make([]Polygon, len(tris))
	for i, t := range tris {
		polys[i] = Polygon{Shell: Ring{t.A, t.B, t.C}.Closed()}
	}
	return DrawPolygons(polys, scale, path, cat)
}
