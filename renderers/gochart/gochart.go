// Package gochart draws rendered 3D scenes through a github.com/wcharczuk/go-chart renderer, so scenes can be overlaid on charts.
package gochart

import (
	"image/color"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vectorsolid/threed"
)

// GoChart is a threed.Canvas backed by a go-chart renderer. go-chart uses integer pixel coordinates; coordinates are rounded to the nearest pixel.
type GoChart struct {
	r chart.Renderer
}

// New returns a canvas drawing through r.
func New(r chart.Renderer) *GoChart {
	return &GoChart{r: r}
}

// DrawPath implements the threed.Canvas interface.
func (c *GoChart) DrawPath(pts []threed.Point, closed bool, style threed.Style, linescale float64) {
	if len(pts) < 2 {
		return
	}

	fill := closed && style.Surface != nil && !style.Surface.Hide
	stroke := style.Line != nil && !style.Line.Hide
	if !fill && !stroke {
		return
	}

	if fill {
		c.r.SetFillColor(toDrawingColor(style.Surface.Color))
	}
	if stroke {
		c.r.SetStrokeColor(toDrawingColor(style.Line.Color))
		c.r.SetStrokeWidth(style.Line.Width * linescale)
	} else {
		c.r.SetStrokeWidth(0.0)
	}

	c.r.MoveTo(pixel(pts[0].X), pixel(pts[0].Y))
	for _, p := range pts[1:] {
		c.r.LineTo(pixel(p.X), pixel(p.Y))
	}
	if closed {
		c.r.Close()
	}
	switch {
	case fill && stroke:
		c.r.FillStroke()
	case fill:
		c.r.Fill()
	default:
		c.r.Stroke()
	}
}

func pixel(f float64) int {
	return int(math.Round(f))
}

func toDrawingColor(col color.RGBA) drawing.Color {
	return drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}
