package threed

import "math"

// polygonArea3 returns the area of the planar 3D polygon pts.
func polygonArea3(pts []Vec3) float64 {
	var n Vec3
	for i, p := range pts {
		n = n.Add(p.Cross(pts[(i+1)%len(pts)]))
	}
	return n.Length() / 2.0
}

// validLoop returns true if pts forms a polygon with genuine area.
func validLoop(pts []Vec3, eps float64) bool {
	return 3 <= len(pts) && eps < polygonArea3(pts)
}

// splitPolygonByPlane cuts the convex polygon pts by the plane dot(n,p)=d, returning the loops on the front (positive) and back side. Vertices within eps of the plane belong to both loops. A nil return for one side means the polygon does not extend beyond eps to that side.
func splitPolygonByPlane(pts []Vec3, n Vec3, d, eps float64) (front, back []Vec3) {
	dist := make([]float64, len(pts))
	for i, p := range pts {
		dist[i] = n.Dot(p) - d
	}
	for i, p := range pts {
		di := dist[i]
		if -eps <= di {
			front = append(front, p)
		}
		if di <= eps {
			back = append(back, p)
		}
		dj := dist[(i+1)%len(pts)]
		if (di < -eps && eps < dj) || (eps < di && dj < -eps) {
			cross := p.Interpolate(pts[(i+1)%len(pts)], di/(di-dj))
			front = append(front, cross)
			back = append(back, cross)
		}
	}
	if !validLoop(front, eps) {
		front = nil
	}
	if !validLoop(back, eps) {
		back = nil
	}
	return front, back
}

// splitSegmentByPlane cuts the segment p0-p1 by the plane dot(n,p)=d. A nil return for one side means the segment does not extend beyond eps to that side.
func splitSegmentByPlane(p0, p1, n Vec3, d, eps float64) (front, back []Vec3) {
	d0 := n.Dot(p0) - d
	d1 := n.Dot(p1) - d
	switch {
	case -eps <= d0 && -eps <= d1:
		return []Vec3{p0, p1}, nil
	case d0 <= eps && d1 <= eps:
		return nil, []Vec3{p0, p1}
	}
	cross := p0.Interpolate(p1, d0/(d0-d1))
	if d0 < 0.0 {
		return []Vec3{cross, p1}, []Vec3{p0, cross}
	}
	return []Vec3{p0, cross}, []Vec3{cross, p1}
}

// pointInPolygon3 is true when the point p, assumed on the polygon's plane, lies strictly inside the planar polygon pts with unit normal n.
func pointInPolygon3(p Vec3, pts []Vec3, n Vec3) bool {
	u := pts[1].Sub(pts[0]).Norm(1.0)
	v := n.Cross(u)
	flat := make([]Point, len(pts))
	for i, q := range pts {
		flat[i] = Point{u.Dot(q), v.Dot(q)}
	}
	return interior(Point{u.Dot(p), v.Dot(p)}, flat)
}

// crossingInterval returns the parameter interval along the direction dir spanned by the points of loop lying within eps of the plane dot(n,p)=d. These are the crossing points introduced by splitPolygonByPlane.
func crossingInterval(loop []Vec3, n Vec3, d float64, dir Vec3, eps float64) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range loop {
		if math.Abs(n.Dot(p)-d) <= eps {
			t := dir.Dot(p)
			lo = math.Min(lo, t)
			hi = math.Max(hi, t)
		}
	}
	return lo, hi, lo <= hi
}

// splitIntersectIn3D tests whether the fragments at positions i and j genuinely intersect in 3D and, if so, cuts both at the intersection, appending the pieces and marking the parents superseded. It returns the number of pieces appended for each fragment; (0,0) means no split, which includes coplanar and near-degenerate contacts.
func splitIntersectIn3D(v *FragmentVector, i, j int, eps float64) (int, int) {
	fi, fj := v.At(i), v.At(j)
	switch {
	case fi.Kind == FragmentPolygon && fj.Kind == FragmentPolygon:
		return splitPolygonPolygon(v, i, j, eps)
	case fi.Kind == FragmentLine && fj.Kind == FragmentPolygon:
		return splitLinePolygon(v, i, j, eps)
	case fi.Kind == FragmentPolygon && fj.Kind == FragmentLine:
		n2, n1 := splitLinePolygon(v, j, i, eps)
		return n1, n2
	}
	return splitLineLine(v, i, j, eps)
}

func splitPolygonPolygon(v *FragmentVector, i, j int, eps float64) (int, int) {
	fi, fj := v.At(i), v.At(j)
	ni, di, oki := fi.Plane()
	nj, dj, okj := fj.Plane()
	if !oki || !okj {
		return 0, 0
	}
	dir := ni.Cross(nj)
	if dir.Length() < eps {
		// coplanar or nearly so, defer to depth resolution
		return 0, 0
	}
	dir = dir.Norm(1.0)

	frontI, backI := splitPolygonByPlane(fi.Points, nj, dj, eps)
	frontJ, backJ := splitPolygonByPlane(fj.Points, ni, di, eps)
	if frontI == nil || backI == nil || frontJ == nil || backJ == nil {
		return 0, 0
	}

	// both straddle; the cut is genuine only if the crossing segments overlap along the plane intersection line
	loI, hiI, okI := crossingInterval(frontI, nj, dj, dir, eps)
	loJ, hiJ, okJ := crossingInterval(frontJ, ni, di, dir, eps)
	if !okI || !okJ || math.Min(hiI, hiJ)-math.Max(loI, loJ) <= eps {
		return 0, 0
	}

	n1 := v.supersede(i, [][]Vec3{frontI, backI})
	n2 := v.supersede(j, [][]Vec3{frontJ, backJ})
	return n1, n2
}

func splitLinePolygon(v *FragmentVector, i, j int, eps float64) (int, int) {
	fi, fj := v.At(i), v.At(j)
	n, d, ok := fj.Plane()
	if !ok {
		return 0, 0
	}
	p0, p1 := fi.Points[0], fi.Points[1]
	d0 := n.Dot(p0) - d
	d1 := n.Dot(p1) - d
	if !(d0 < -eps && eps < d1) && !(eps < d0 && d1 < -eps) {
		return 0, 0
	}
	cross := p0.Interpolate(p1, d0/(d0-d1))
	if !pointInPolygon3(cross, fj.Points, n) {
		return 0, 0
	}
	n1 := v.supersede(i, [][]Vec3{{p0, cross}, {cross, p1}})
	return n1, 0
}

func splitLineLine(v *FragmentVector, i, j int, eps float64) (int, int) {
	fi, fj := v.At(i), v.At(j)
	p0, p1 := fi.Points[0], fi.Points[1]
	q0, q1 := fj.Points[0], fj.Points[1]
	dp := p1.Sub(p0)
	dq := q1.Sub(q0)
	r := p0.Sub(q0)
	a := dp.Dot(dp)
	b := dp.Dot(dq)
	c := dq.Dot(dq)
	e := dp.Dot(r)
	f := dq.Dot(r)
	den := a*c - b*b
	if math.Abs(den) < eps {
		return 0, 0
	}
	s := (b*f - c*e) / den
	t := (a*f - b*e) / den
	if s < eps || 1.0-eps < s || t < eps || 1.0-eps < t {
		return 0, 0
	}
	ps := p0.Add(dp.Mul(s))
	qt := q0.Add(dq.Mul(t))
	if eps < ps.Sub(qt).Length() {
		return 0, 0
	}
	n1 := v.supersede(i, [][]Vec3{{p0, ps}, {ps, p1}})
	n2 := v.supersede(j, [][]Vec3{{q0, qt}, {qt, q1}})
	return n1, n2
}
