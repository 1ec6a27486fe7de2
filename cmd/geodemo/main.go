// Command geodemo renders a small gallery of geomath computations to a PNG:
// two intersecting segments with their computed intersection point, the
// perpendicular from a point to a line, and a great-circle path sampled
// through the geo package.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogeom/geomath"
	"github.com/gogeom/geomath/geo"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "geodemo.png", "output file")
	)
	flag.Parse()

	dc := gg.NewContext(*width, *height)
	dc.SetRGB(0.08, 0.09, 0.12)
	dc.DrawRectangle(0, 0, float64(*width), float64(*height))
	_ = dc.Fill()

	drawIntersection(dc)
	drawPointToLine(dc)
	if err := drawGreatCircle(dc, *width); err != nil {
		log.Printf("great-circle demo skipped: %v", err)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Printf("Failed to save: %v", err)
		os.Exit(1)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)
}

// drawIntersection renders two segments and the intersection point of the
// infinite lines through them.
func drawIntersection(dc *gg.Context) {
	l1 := geomath.NewLine(geomath.PointOf(100.0, 60.0), geomath.PointOf(100.0, 260.0))
	l2 := geomath.NewLine(geomath.PointOf(40.0, 160.0), geomath.PointOf(240.0, 160.0))

	dc.SetRGB(0.55, 0.75, 1)
	dc.SetLineWidth(2)
	for _, l := range []geomath.Line[float64]{l1, l2} {
		dc.DrawLine(l.A().At(0), l.A().At(1), l.B().At(0), l.B().At(1))
		_ = dc.Stroke()
	}

	p, err := geomath.Intersection[float64](l1, l2)
	if err != nil {
		log.Printf("no intersection: %v", err)
		return
	}
	dc.SetRGB(1, 0.45, 0.35)
	dc.DrawCircle(p.At(0), p.At(1), 6)
	_ = dc.Fill()
}

// drawPointToLine renders a segment, a free point, and a tick of length
// equal to the point's distance from the infinite line.
func drawPointToLine(dc *gg.Context) {
	l := geomath.NewLine(geomath.PointOf(340.0, 80.0), geomath.PointOf(560.0, 240.0))
	p := geomath.PointOf(380.0, 230.0)

	dc.SetRGB(0.55, 1, 0.7)
	dc.SetLineWidth(2)
	dc.DrawLine(l.A().At(0), l.A().At(1), l.B().At(0), l.B().At(1))
	_ = dc.Stroke()

	dc.SetRGB(1, 0.85, 0.4)
	dc.DrawCircle(p.At(0), p.At(1), 5)
	_ = dc.Fill()

	d := geomath.DistanceToPoint[float64](l, p)
	dc.SetLineWidth(1)
	dc.DrawCircle(p.At(0), p.At(1), d)
	_ = dc.Stroke()
}

// drawGreatCircle samples intermediate points along a great-circle arc and
// renders the resulting polyline scaled into the lower canvas band.
func drawGreatCircle(dc *gg.Context, width int) error {
	from := geo.MustNew(51.06707497, -1.32007599)
	to := geo.MustNew(51.36283147, -0.4553318)

	const samples = 64
	dc.SetRGB(0.95, 0.6, 1)
	dc.SetLineWidth(2)

	var prevX, prevY float64
	for i := 0; i <= samples; i++ {
		f := float64(i) / samples
		p, err := geo.IntermediatePoint(from, to, f, geo.DefaultEarthDiameter)
		if err != nil {
			return err
		}
		x := 60 + (p.Longitude()-from.Longitude())/(to.Longitude()-from.Longitude())*float64(width-120)
		y := 520 - (p.Latitude()-from.Latitude())*300
		if i > 0 {
			dc.DrawLine(prevX, prevY, x, y)
			_ = dc.Stroke()
		}
		prevX, prevY = x, y
	}
	return nil
}
