package gochart

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/vectorsolid/threed"
)

func TestGoChart(t *testing.T) {
	r, err := chart.PNG(100, 100)
	test.Error(t, err)

	c := New(r)
	fill := threed.Style{Surface: &threed.SurfaceStyle{Color: color.RGBA{255, 0, 0, 255}}}
	c.DrawPath([]threed.Point{{X: 10.0, Y: 10.0}, {X: 90.0, Y: 10.0}, {X: 50.0, Y: 70.0}}, true, fill, 0.1)

	line := threed.DefaultLineStyle
	c.DrawPath([]threed.Point{{X: 0.0, Y: 0.0}, {X: 100.0, Y: 100.0}}, false, threed.Style{Line: &line}, 0.1)

	// a path with no visible style draws nothing
	c.DrawPath([]threed.Point{{X: 0.0, Y: 0.0}, {X: 1.0, Y: 1.0}}, false, threed.Style{}, 0.1)

	buf := &bytes.Buffer{}
	test.Error(t, r.Save(buf))
	test.That(t, 0 < buf.Len())
}

func TestPixel(t *testing.T) {
	test.T(t, pixel(1.4), 1)
	test.T(t, pixel(1.5), 2)
	test.T(t, pixel(-0.4), 0)
}
