package threed

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTriangulatePolygon(t *testing.T) {
	tris := triangulatePolygon(lShape)
	test.T(t, len(tris), 4)

	area := 0.0
	for _, tri := range tris {
		test.T(t, len(tri), 3)
		area += polygonArea3(tri)

		// every triangle stays in the polygon's plane
		n := planeNormal(lShape)
		d := n.Dot(lShape[0])
		for _, p := range tri {
			test.Float(t, n.Dot(p), d)
		}
	}
	test.Float(t, area, polygonArea3(lShape))
}

func TestTriangulateDegenerate(t *testing.T) {
	test.That(t, triangulatePolygon([]Vec3{{0, 0, 5}, {1, 0, 5}, {2, 0, 5}}) == nil)
}
