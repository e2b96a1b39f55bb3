package threed

import "math"

// overlapSample returns a representative screen point inside the overlap of the two fragments' screen footprints. ok is false when the footprints do not overlap.
func overlapSample(fi, fj *Fragment) (Point, bool) {
	if !pointsRect(fi.Screen).Overlaps(pointsRect(fj.Screen)) {
		return Point{}, false
	}
	switch {
	case fi.Kind == FragmentPolygon && fj.Kind == FragmentPolygon:
		region := clipPolygon(ccw(fi.Screen), ccw(fj.Screen))
		if region == nil {
			return Point{}, false
		}
		return centroid(region), true
	case fi.Kind == FragmentLine && fj.Kind == FragmentPolygon:
		t0, t1, ok := clipSegment(fi.Screen[0], fi.Screen[1], ccw(fj.Screen))
		if !ok {
			return Point{}, false
		}
		return fi.Screen[0].Interpolate(fi.Screen[1], (t0+t1)/2.0), true
	case fi.Kind == FragmentPolygon && fj.Kind == FragmentLine:
		return overlapSample(fj, fi)
	}
	s, _, ok := intersectSegments(fi.Screen[0], fi.Screen[1], fj.Screen[0], fj.Screen[1])
	if !ok {
		return Point{}, false
	}
	return fi.Screen[0].Interpolate(fi.Screen[1], s), true
}

// screenOverlap returns true if the two fragments' screen footprints genuinely overlap.
func screenOverlap(fi, fj *Fragment) bool {
	_, ok := overlapSample(fi, fj)
	return ok
}

// depthAt returns the camera-space depth of the fragment's surface at the screen point p, found by casting a ray from the eye through p. ok is false if the ray misses or grazes the surface.
func (s *Scene) depthAt(f *Fragment, p Point) (float64, bool) {
	ndc := s.invScreenM.Dot(p)
	if f.Kind == FragmentPolygon {
		dir := Vec3{ndc.X / s.cam.focal, ndc.Y / s.cam.focal, 1.0}
		n, d, ok := f.Plane()
		if !ok {
			return 0.0, false
		}
		den := n.Dot(dir)
		if math.Abs(den) < s.PlaneEps {
			return 0.0, false
		}
		t := d / den
		if t <= 0.0 {
			return 0.0, false
		}
		return t, true
	}

	// interpolate the segment perspective-correctly along its screen projection
	sa, sb := f.Screen[0], f.Screen[1]
	dir := sb.Sub(sa)
	den := dir.Dot(dir)
	if equal(den, 0.0) {
		return f.Points[0][2], true
	}
	u := p.Sub(sa).Dot(dir) / den
	u = math.Max(0.0, math.Min(1.0, u))
	za, zb := f.Points[0][2], f.Points[1][2]
	if za <= 0.0 || zb <= 0.0 {
		return 0.0, false
	}
	return 1.0 / ((1.0-u)/za + u/zb), true
}

// fineZCompare decides the draw order of two overlapping fragments by sampling depth at a point inside their screen overlap. It returns a negative value if the fragment at position i must be drawn before j (i is farther), positive for the reverse, and 0 when the footprints do not overlap. Ties within DepthEps fall back to creation order so the ordering is deterministic and total.
func (s *Scene) fineZCompare(i, j int) int {
	fi, fj := s.fragments.At(i), s.fragments.At(j)
	p, ok := overlapSample(fi, fj)
	if !ok {
		return 0
	}
	di, oki := s.depthAt(fi, p)
	dj, okj := s.depthAt(fj, p)
	if !oki || !okj || math.Abs(di-dj) < s.DepthEps {
		if fi.index < fj.index {
			return -1
		}
		return 1
	}
	if dj < di {
		return -1
	}
	return 1
}
