package threed

import "math"

// FragmentKind discriminates the geometric payload of a fragment.
type FragmentKind int

const (
	// FragmentLine is a straight segment between two points.
	FragmentLine FragmentKind = iota
	// FragmentPolygon is a planar convex polygon of three or more points.
	FragmentPolygon
)

// Fragment is a single drawable primitive carried through projection and splitting. Points hold the camera-space coordinates, where the eye is at the origin looking along +z. Screen holds the projected 2D coordinates and is valid after projection. Splitting never mutates Points in place; it appends new fragments and marks the parent superseded.
type Fragment struct {
	Kind   FragmentKind
	Points []Vec3
	Screen []Point
	Style  Style

	index              int
	gen                int
	superseded         bool
	clipped            bool
	minDepth, maxDepth float64
}

// live returns true if the fragment takes part in drawing, ie. it has not been superseded by split pieces nor clipped away.
func (f *Fragment) live() bool {
	return !f.superseded && !f.clipped
}

// Index returns the creation order of the fragment, used as the deterministic tie break in depth comparisons.
func (f *Fragment) Index() int {
	return f.index
}

// Superseded returns true if the fragment has been replaced by split pieces.
func (f *Fragment) Superseded() bool {
	return f.superseded
}

// MinDepth returns the smallest camera-space depth spanned by the fragment.
func (f *Fragment) MinDepth() float64 {
	return f.minDepth
}

// MaxDepth returns the largest camera-space depth spanned by the fragment.
func (f *Fragment) MaxDepth() float64 {
	return f.maxDepth
}

func (f *Fragment) updateDepth() {
	f.minDepth = math.Inf(1)
	f.maxDepth = math.Inf(-1)
	for _, p := range f.Points {
		f.minDepth = math.Min(f.minDepth, p[2])
		f.maxDepth = math.Max(f.maxDepth, p[2])
	}
}

// Plane returns the fragment's supporting plane as a unit normal n and offset d with dot(n,p)=d for all points p. ok is false for line fragments and degenerate polygons.
func (f *Fragment) Plane() (Vec3, float64, bool) {
	if f.Kind != FragmentPolygon || len(f.Points) < 3 {
		return Vec3{}, 0.0, false
	}
	n := planeNormal(f.Points)
	if n.IsZero() {
		return Vec3{}, 0.0, false
	}
	return n, n.Dot(f.Points[0]), true
}

// Centroid returns the camera-space centroid of the fragment's points.
func (f *Fragment) Centroid() Vec3 {
	var c Vec3
	for _, p := range f.Points {
		c = c.Add(p)
	}
	return c.Mul(1.0 / float64(len(f.Points)))
}

// planeNormal returns the unit normal of the polygon pts, or zero if degenerate. Newell's method keeps near-collinear leading vertices from dominating.
func planeNormal(pts []Vec3) Vec3 {
	var n Vec3
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		n[0] += (p[1] - q[1]) * (p[2] + q[2])
		n[1] += (p[2] - q[2]) * (p[0] + q[0])
		n[2] += (p[0] - q[0]) * (p[1] + q[1])
	}
	return n.Norm(1.0)
}

////////////////////////////////////////////////////////////////

// FragmentVector is an append-only arena of fragments. Fragments are referenced by their position, and splitting marks a slot superseded rather than removing it, so indices already placed in a draw order stay valid.
type FragmentVector struct {
	frags []*Fragment
}

// Len returns the number of slots, including superseded ones.
func (v *FragmentVector) Len() int {
	return len(v.frags)
}

// At returns the fragment at position i.
func (v *FragmentVector) At(i int) *Fragment {
	return v.frags[i]
}

// Append adds a fragment and returns its position.
func (v *FragmentVector) Append(f *Fragment) int {
	f.index = len(v.frags)
	v.frags = append(v.frags, f)
	return f.index
}

// AddLine appends a line fragment between camera-space points p0 and p1.
func (v *FragmentVector) AddLine(p0, p1 Vec3, style Style) int {
	f := &Fragment{Kind: FragmentLine, Points: []Vec3{p0, p1}, Style: style}
	f.updateDepth()
	return v.Append(f)
}

// AddPolygon appends a polygon fragment with the given camera-space points.
func (v *FragmentVector) AddPolygon(pts []Vec3, style Style) int {
	f := &Fragment{Kind: FragmentPolygon, Points: pts, Style: style}
	f.updateDepth()
	return v.Append(f)
}

// supersede replaces the fragment at position i by the given camera-space point sets, each inheriting the parent's kind and style. It returns the number of pieces appended.
func (v *FragmentVector) supersede(i int, pieces [][]Vec3) int {
	parent := v.frags[i]
	n := 0
	for _, pts := range pieces {
		if len(pts) == 0 {
			continue
		}
		f := &Fragment{
			Kind:   parent.Kind,
			Points: pts,
			Style:  parent.Style,
			gen:    parent.gen + 1,
		}
		f.updateDepth()
		v.Append(f)
		n++
	}
	if 0 < n {
		parent.superseded = true
	}
	return n
}
