package threed

import "math"

// signedArea returns the signed area of the 2D polygon pts, positive for counter clockwise winding.
func signedArea(pts []Point) float64 {
	a := 0.0
	for i, p := range pts {
		a += p.PerpDot(pts[(i+1)%len(pts)])
	}
	return a / 2.0
}

// centroid returns the area centroid of the 2D polygon pts, or the vertex mean for degenerate polygons.
func centroid(pts []Point) Point {
	a := 0.0
	var c Point
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross := p.PerpDot(q)
		a += cross
		c = c.Add(p.Add(q).Mul(cross))
	}
	if equal(a, 0.0) {
		for _, p := range pts {
			c = c.Add(p)
		}
		return c.Mul(1.0 / float64(len(pts)))
	}
	return c.Mul(1.0 / (3.0 * a))
}

// interior is true when the point t is strictly inside the polygon pts.
// See https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
func interior(t Point, pts []Point) bool {
	in := false
	prev := pts[len(pts)-1]
	for _, p := range pts {
		if (t.Y < p.Y) != (t.Y < prev.Y) &&
			t.X < (prev.X-p.X)*(t.Y-p.Y)/(prev.Y-p.Y)+p.X {
			in = !in
		}
		prev = p
	}
	return in
}

// ccw returns the polygon pts with counter clockwise winding.
func ccw(pts []Point) []Point {
	if signedArea(pts) < 0.0 {
		q := make([]Point, len(pts))
		for i, p := range pts {
			q[len(pts)-1-i] = p
		}
		return q
	}
	return pts
}

// clipPolygon clips the subject polygon by the convex clip polygon using Sutherland-Hodgman, returning the overlap region or nil. The clip polygon must wind counter clockwise.
func clipPolygon(subject, clip []Point) []Point {
	out := subject
	for i, c0 := range clip {
		c1 := clip[(i+1)%len(clip)]
		edge := c1.Sub(c0)
		in := out
		out = nil
		for j, p0 := range in {
			p1 := in[(j+1)%len(in)]
			d0 := edge.PerpDot(p0.Sub(c0))
			d1 := edge.PerpDot(p1.Sub(c0))
			if -Epsilon <= d0 {
				out = append(out, p0)
			}
			if (d0 < -Epsilon && Epsilon < d1) || (Epsilon < d0 && d1 < -Epsilon) {
				out = append(out, p0.Interpolate(p1, d0/(d0-d1)))
			}
		}
		if len(out) < 3 {
			return nil
		}
	}
	if math.Abs(signedArea(out)) < Epsilon {
		return nil
	}
	return out
}

// clipSegment clips the segment p0-p1 by the convex polygon pts, returning the interior parameter interval [t0,t1] along the segment. ok is false if the segment misses the polygon. The polygon must wind counter clockwise.
func clipSegment(p0, p1 Point, pts []Point) (float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dir := p1.Sub(p0)
	for i, c0 := range pts {
		c1 := pts[(i+1)%len(pts)]
		edge := c1.Sub(c0)
		num := edge.PerpDot(p0.Sub(c0))
		den := -edge.PerpDot(dir)
		if equal(den, 0.0) {
			if num < -Epsilon {
				return 0.0, 0.0, false
			}
			continue
		}
		t := num / den
		if 0.0 < den {
			t1 = math.Min(t1, t)
		} else {
			t0 = math.Max(t0, t)
		}
		if t1 <= t0+Epsilon {
			return 0.0, 0.0, false
		}
	}
	return t0, t1, true
}

// intersectSegments returns the parameters s and t at which the segments p0-p1 and q0-q1 intersect. ok is false for parallel or non-crossing segments.
func intersectSegments(p0, p1, q0, q1 Point) (float64, float64, bool) {
	dp := p1.Sub(p0)
	dq := q1.Sub(q0)
	den := dp.PerpDot(dq)
	if equal(den, 0.0) {
		return 0.0, 0.0, false
	}
	w := q0.Sub(p0)
	s := w.PerpDot(dq) / den
	t := w.PerpDot(dp) / den
	if s < -Epsilon || 1.0+Epsilon < s || t < -Epsilon || 1.0+Epsilon < t {
		return 0.0, 0.0, false
	}
	return s, t, true
}
