// Package gonumplot draws rendered 3D scenes onto a gonum.org/v1/plot drawing canvas, so scenes can be embedded in gonum plots.
package gonumplot

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vectorsolid/threed"
)

// GonumPlot is a threed.Canvas backed by a gonum.org/v1/plot/vg/draw canvas. Coordinates are passed through in points; pick the render viewport to match the drawing area.
type GonumPlot struct {
	dc draw.Canvas
}

// New returns a canvas drawing onto dc.
func New(dc draw.Canvas) *GonumPlot {
	return &GonumPlot{dc: dc}
}

// DrawPath implements the threed.Canvas interface.
func (r *GonumPlot) DrawPath(pts []threed.Point, closed bool, style threed.Style, linescale float64) {
	if len(pts) < 2 {
		return
	}

	var path vg.Path
	path.Move(vg.Point{X: vg.Length(pts[0].X), Y: vg.Length(pts[0].Y)})
	for _, p := range pts[1:] {
		path.Line(vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)})
	}
	if closed {
		path.Close()
	}

	if closed && style.Surface != nil && !style.Surface.Hide {
		r.dc.SetColor(style.Surface.Color)
		r.dc.Fill(path)
	}
	if style.Line != nil && !style.Line.Hide {
		r.dc.SetColor(style.Line.Color)
		r.dc.SetLineWidth(vg.Length(style.Line.Width * linescale))
		r.dc.SetLineDash(nil, 0)
		r.dc.Stroke(path)
	}
}
