package gonumplot

import (
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vectorsolid/threed"
)

func TestGonumPlot(t *testing.T) {
	img := vgimg.New(4*vg.Centimeter, 4*vg.Centimeter)
	dc := draw.New(img)

	c := New(dc)
	surface := threed.DefaultSurfaceStyle
	line := threed.DefaultLineStyle
	c.DrawPath([]threed.Point{{X: 10.0, Y: 10.0}, {X: 90.0, Y: 10.0}, {X: 50.0, Y: 70.0}}, true, threed.Style{
		Surface: &surface,
		Line:    &line,
	}, 0.1)
	c.DrawPath([]threed.Point{{X: 0.0, Y: 0.0}, {X: 100.0, Y: 100.0}}, false, threed.Style{Line: &line}, 0.1)

	// nothing shorter than a segment is drawn
	c.DrawPath([]threed.Point{{X: 1.0, Y: 1.0}}, false, threed.Style{Line: &line}, 0.1)

	bounds := img.Image().Bounds()
	test.That(t, 0 < bounds.Dx() && 0 < bounds.Dy())
}
