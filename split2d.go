package threed

import "math"

// shadowPlanes returns the planes through the eye (the camera-space origin) and each edge of the polygon fragment f. Each normal points to the side of the fragment's interior, so a point is inside the fragment's screen silhouette exactly when it is on the positive side of every plane.
func shadowPlanes(f *Fragment, eps float64) []Vec3 {
	c := f.Centroid()
	var planes []Vec3
	for i, p := range f.Points {
		q := f.Points[(i+1)%len(f.Points)]
		n := p.Cross(q)
		if n.Length() < eps {
			// edge through the eye, no silhouette
			continue
		}
		n = n.Norm(1.0)
		d := n.Dot(c)
		if math.Abs(d) < eps {
			continue
		}
		if d < 0.0 {
			n = n.Neg()
		}
		planes = append(planes, n)
	}
	return planes
}

// splitProjected cuts the fragment at position i along the screen silhouette of the polygon fragment at position j, so that the part of i overlapped by j on screen becomes its own piece. The cut is done with planes through the eye in camera space, so the pieces carry exact 3D geometry. It returns the number of pieces appended for i; 0 means i and j do not genuinely overlap on screen, or i lies entirely within j's silhouette.
func splitProjected(v *FragmentVector, i, j int, eps float64) int {
	fi, fj := v.At(i), v.At(j)
	if fj.Kind != FragmentPolygon {
		return 0
	}
	planes := shadowPlanes(fj, eps)
	if len(planes) < 3 {
		return 0
	}

	inside := fi.Points
	var outside [][]Vec3
	for _, n := range planes {
		var in, out []Vec3
		if fi.Kind == FragmentPolygon {
			in, out = splitPolygonByPlane(inside, n, 0.0, eps)
		} else {
			in, out = splitSegmentByPlane(inside[0], inside[1], n, 0.0, eps)
		}
		if out != nil {
			outside = append(outside, out)
		}
		inside = in
		if inside == nil {
			break
		}
	}
	if inside == nil || len(outside) == 0 {
		return 0
	}
	return v.supersede(i, append(outside, inside))
}
