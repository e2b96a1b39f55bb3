package threed

// Object is a node of the 3D scene graph. AddFragments flattens the node into fragments, transforming its points by viewM into camera space and appending to out.
type Object interface {
	AddFragments(viewM Mat4, out *FragmentVector)
}

// ObjectContainer groups child objects under a local transformation.
type ObjectContainer struct {
	Transform Mat4
	Children  []Object
}

// NewObjectContainer returns an empty container with the identity transformation.
func NewObjectContainer() *ObjectContainer {
	return &ObjectContainer{Transform: Identity4}
}

// Add appends child objects to the container.
func (c *ObjectContainer) Add(objs ...Object) {
	c.Children = append(c.Children, objs...)
}

// AddFragments implements the Object interface.
func (c *ObjectContainer) AddFragments(viewM Mat4, out *FragmentVector) {
	m := viewM.Mul(c.Transform)
	for _, child := range c.Children {
		child.AddFragments(m, out)
	}
}

////////////////////////////////////////////////////////////////

// Triangle is a single filled triangle.
type Triangle struct {
	P     [3]Vec3
	Style Style
}

// AddFragments implements the Object interface.
func (t *Triangle) AddFragments(viewM Mat4, out *FragmentVector) {
	out.AddPolygon([]Vec3{viewM.Dot(t.P[0]), viewM.Dot(t.P[1]), viewM.Dot(t.P[2])}, t.Style)
}

// Polygon is a planar filled polygon. Convex polygons become a single fragment; concave ones are triangulated first, since the splitting stages require convex footprints.
type Polygon struct {
	Points []Vec3
	Style  Style
}

// AddFragments implements the Object interface.
func (p *Polygon) AddFragments(viewM Mat4, out *FragmentVector) {
	if len(p.Points) < 3 {
		return
	}
	pts := make([]Vec3, len(p.Points))
	for i, q := range p.Points {
		pts[i] = viewM.Dot(q)
	}
	if isConvex3(pts) {
		out.AddPolygon(pts, p.Style)
		return
	}
	for _, tri := range triangulatePolygon(pts) {
		out.AddPolygon(tri, p.Style)
	}
}

// PolyLine is a connected sequence of line segments.
type PolyLine struct {
	Points []Vec3
	Style  Style
}

// AddFragments implements the Object interface.
func (p *PolyLine) AddFragments(viewM Mat4, out *FragmentVector) {
	for i := 1; i < len(p.Points); i++ {
		out.AddLine(viewM.Dot(p.Points[i-1]), viewM.Dot(p.Points[i]), p.Style)
	}
}

// LineSegments is a set of independent line segments given as point pairs.
type LineSegments struct {
	Points []Vec3
	Style  Style
}

// AddFragments implements the Object interface.
func (l *LineSegments) AddFragments(viewM Mat4, out *FragmentVector) {
	for i := 1; i < len(l.Points); i += 2 {
		out.AddLine(viewM.Dot(l.Points[i-1]), viewM.Dot(l.Points[i]), l.Style)
	}
}

// Mesh is a surface given as a rectangular grid of points, rendered as two triangles per grid cell.
type Mesh struct {
	Grid  [][]Vec3
	Style Style
}

// AddFragments implements the Object interface.
func (m *Mesh) AddFragments(viewM Mat4, out *FragmentVector) {
	for i := 1; i < len(m.Grid); i++ {
		row0, row1 := m.Grid[i-1], m.Grid[i]
		for j := 1; j < len(row0) && j < len(row1); j++ {
			p00 := viewM.Dot(row0[j-1])
			p01 := viewM.Dot(row0[j])
			p10 := viewM.Dot(row1[j-1])
			p11 := viewM.Dot(row1[j])
			out.AddPolygon([]Vec3{p00, p01, p11}, m.Style)
			out.AddPolygon([]Vec3{p00, p11, p10}, m.Style)
		}
	}
}

// isConvex3 returns true if the planar polygon pts is convex.
func isConvex3(pts []Vec3) bool {
	n := planeNormal(pts)
	if n.IsZero() {
		return false
	}
	for i := range pts {
		e0 := pts[(i+1)%len(pts)].Sub(pts[i])
		e1 := pts[(i+2)%len(pts)].Sub(pts[(i+1)%len(pts)])
		if e0.Cross(e1).Dot(n) < -Epsilon {
			return false
		}
	}
	return true
}
