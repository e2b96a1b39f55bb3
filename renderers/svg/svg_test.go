package svg

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/vectorsolid/threed"
)

func TestSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, 100.0, 80.0)

	fill := threed.Style{Surface: &threed.SurfaceStyle{Color: color.RGBA{255, 0, 0, 255}}}
	r.DrawPath([]threed.Point{{X: 10.0, Y: 10.0}, {X: 90.0, Y: 10.0}, {X: 50.0, Y: 70.0}}, true, fill, 0.1)

	stroke := threed.Style{Line: &threed.LineStyle{Color: color.RGBA{0, 0, 255, 255}, Width: 2.0}}
	r.DrawPath([]threed.Point{{X: 0.0, Y: 0.0}, {X: 100.0, Y: 80.0}}, false, stroke, 0.1)

	test.Error(t, r.Close())

	out := buf.String()
	test.That(t, strings.HasPrefix(out, `<svg version="1.1" width="100" height="80"`))
	test.That(t, strings.HasSuffix(out, "</svg>"))
	test.That(t, strings.Contains(out, `<path d="M10 10L90 10L50 70z" fill="#ff0000"/>`))
	test.That(t, strings.Contains(out, `<path d="M0 0L100 80" fill="none" stroke="#0000ff" stroke-width=".2"/>`))
}

func TestSVGOpacity(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, 10.0, 10.0)

	fill := threed.Style{Surface: &threed.SurfaceStyle{Color: color.RGBA{0, 128, 0, 128}}}
	r.DrawPath([]threed.Point{{X: 0.0, Y: 0.0}, {X: 10.0, Y: 0.0}, {X: 10.0, Y: 10.0}}, true, fill, 1.0)
	test.Error(t, r.Close())

	test.That(t, strings.Contains(buf.String(), `fill-opacity=".501961"`))
}

func TestSVGSize(t *testing.T) {
	r := New(&bytes.Buffer{}, 640.0, 480.0)
	w, h := r.Size()
	test.T(t, w, 640.0)
	test.T(t, h, 480.0)
}
