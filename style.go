package threed

import "image/color"

// LineStyle defines how stroked paths are drawn. The width is in screen units before the line scale of the drawing stage is applied.
type LineStyle struct {
	Color color.RGBA
	Width float64
	Hide  bool
}

// SurfaceStyle defines how filled paths are drawn.
type SurfaceStyle struct {
	Color color.RGBA
	Hide  bool
}

// Style carries the stroke and fill attributes of a fragment. It is opaque to the pipeline and passed through to the canvas unchanged. A nil Line or Surface means the respective operation is skipped.
type Style struct {
	Line    *LineStyle
	Surface *SurfaceStyle
}

// DefaultLineStyle is used by objects constructed without an explicit style.
var DefaultLineStyle = LineStyle{Color: color.RGBA{0, 0, 0, 255}, Width: 1.0}

// DefaultSurfaceStyle is used by objects constructed without an explicit style.
var DefaultSurfaceStyle = SurfaceStyle{Color: color.RGBA{128, 128, 128, 255}}
