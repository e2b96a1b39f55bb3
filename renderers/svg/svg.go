// Package svg writes rendered 3D scenes as scalable vector graphics.
package svg

import (
	"fmt"
	"io"

	"github.com/vectorsolid/threed"
)

// SVG is a scalable vector graphics canvas. Draw calls stream <path> elements to the writer in draw order; Close finishes the document.
type SVG struct {
	w             io.Writer
	width, height float64
	err           error
}

// New returns an SVG canvas of the given size in pixels.
func New(w io.Writer, width, height float64) *SVG {
	_, err := fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(width), num(height), num(width), num(height))
	return &SVG{w: w, width: width, height: height, err: err}
}

// Close finishes and closes the SVG.
func (r *SVG) Close() error {
	if r.err != nil {
		return r.err
	}
	_, err := fmt.Fprintf(r.w, "</svg>")
	return err
}

// Size returns the size of the canvas in pixels.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// DrawPath implements the threed.Canvas interface.
func (r *SVG) DrawPath(pts []threed.Point, closed bool, style threed.Style, linescale float64) {
	if r.err != nil || len(pts) < 2 {
		return
	}

	fmt.Fprintf(r.w, `<path d="M%v %v`, num(pts[0].X), num(pts[0].Y))
	for _, p := range pts[1:] {
		fmt.Fprintf(r.w, "L%v %v", num(p.X), num(p.Y))
	}
	if closed {
		fmt.Fprintf(r.w, "z")
	}

	if closed && style.Surface != nil && !style.Surface.Hide {
		fmt.Fprintf(r.w, `" fill="%s`, toCSSColor(style.Surface.Color))
		if style.Surface.Color.A != 255 {
			fmt.Fprintf(r.w, `" fill-opacity="%v`, num(float64(style.Surface.Color.A)/255.0))
		}
	} else {
		fmt.Fprintf(r.w, `" fill="none`)
	}
	if style.Line != nil && !style.Line.Hide {
		fmt.Fprintf(r.w, `" stroke="%s" stroke-width="%v`, toCSSColor(style.Line.Color), num(style.Line.Width*linescale))
		if style.Line.Color.A != 255 {
			fmt.Fprintf(r.w, `" stroke-opacity="%v`, num(float64(style.Line.Color.A)/255.0))
		}
	}
	if _, err := fmt.Fprintf(r.w, `"/>`); err != nil {
		r.err = err
	}
}
