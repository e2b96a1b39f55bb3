package threed

// Canvas is the output surface of the drawing stage. DrawPath is called once per fragment in draw order: closed paths are polygons to be filled and stroked, open paths are line segments to be stroked. The line scale multiplies stroke widths so that scenes render consistently across viewport sizes. Implementations must not retain pts.
type Canvas interface {
	DrawPath(pts []Point, closed bool, style Style, linescale float64)
}

// DrawCall is one recorded canvas invocation.
type DrawCall struct {
	Points    []Point
	Closed    bool
	Style     Style
	Linescale float64
}

// Recording is a canvas that captures draw calls in order, for testing and for replaying onto other canvases.
type Recording struct {
	Calls []DrawCall
}

// DrawPath implements the Canvas interface.
func (r *Recording) DrawPath(pts []Point, closed bool, style Style, linescale float64) {
	r.Calls = append(r.Calls, DrawCall{
		Points:    append([]Point{}, pts...),
		Closed:    closed,
		Style:     style,
		Linescale: linescale,
	})
}

// Replay issues the recorded calls onto another canvas in order.
func (r *Recording) Replay(c Canvas) {
	for _, call := range r.Calls {
		c.DrawPath(call.Points, call.Closed, call.Style, call.Linescale)
	}
}
