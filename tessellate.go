package threed

import (
	"github.com/ByteArena/poly2tri-go"
)

// triangulatePolygon splits a planar, possibly concave polygon into triangles. The polygon is flattened onto its supporting plane, triangulated there and the triangles lifted back to 3D.
func triangulatePolygon(pts []Vec3) [][]Vec3 {
	n := planeNormal(pts)
	if n.IsZero() {
		return nil
	}
	origin := pts[0]
	u := pts[1].Sub(origin).Norm(1.0)
	v := n.Cross(u)

	contour := []*poly2tri.Point{}
	for _, p := range pts {
		q := p.Sub(origin)
		contour = append(contour, poly2tri.NewPoint(u.Dot(q), v.Dot(q)))
	}

	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	triangles := [][]Vec3{}
	for _, tr := range swctx.GetTriangles() {
		tri := make([]Vec3, 3)
		for i := 0; i < 3; i++ {
			tri[i] = origin.Add(u.Mul(tr.Points[i].X)).Add(v.Mul(tr.Points[i].Y))
		}
		triangles = append(triangles, tri)
	}
	return triangles
}
