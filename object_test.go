package threed

import (
	"testing"

	"github.com/tdewolff/test"
)

// lShape is a planar concave hexagon in the tilted plane z = 5 + x.
var lShape = []Vec3{
	{0, 0, 5}, {2, 0, 7}, {2, 1, 7}, {1, 1, 6}, {1, 2, 6}, {0, 2, 5},
}

func TestTriangle(t *testing.T) {
	var v FragmentVector
	obj := &Triangle{P: [3]Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Style: fillStyle()}
	obj.AddFragments(Identity4.Translate(0.0, 0.0, 5.0), &v)

	test.T(t, v.Len(), 1)
	test.T(t, v.At(0).Kind, FragmentPolygon)
	test.T(t, v.At(0).Points[0], Vec3{-1, 0, 5})
}

func TestPolygonConvex(t *testing.T) {
	var v FragmentVector
	obj := &Polygon{Points: []Vec3{{-1, -1, 5}, {1, -1, 5}, {1, 1, 5}, {-1, 1, 5}}, Style: fillStyle()}
	obj.AddFragments(Identity4, &v)

	test.T(t, v.Len(), 1)
	test.T(t, len(v.At(0).Points), 4)
}

func TestPolygonConcave(t *testing.T) {
	var v FragmentVector
	obj := &Polygon{Points: lShape, Style: fillStyle()}
	obj.AddFragments(Identity4, &v)

	// triangulated so that every fragment in the pipeline is convex
	test.That(t, 1 < v.Len())
	area := 0.0
	for i := 0; i < v.Len(); i++ {
		test.T(t, len(v.At(i).Points), 3)
		area += polygonArea3(v.At(i).Points)
	}
	test.Float(t, area, polygonArea3(lShape))
}

func TestPolyLine(t *testing.T) {
	var v FragmentVector
	obj := &PolyLine{Points: []Vec3{{0, 0, 4}, {1, 0, 4}, {1, 1, 4}}, Style: strokeStyle()}
	obj.AddFragments(Identity4, &v)

	test.T(t, v.Len(), 2)
	test.T(t, v.At(0).Points[1], v.At(1).Points[0])
}

func TestLineSegments(t *testing.T) {
	var v FragmentVector
	obj := &LineSegments{Points: []Vec3{{0, 0, 4}, {1, 0, 4}, {5, 5, 6}, {6, 5, 6}}, Style: strokeStyle()}
	obj.AddFragments(Identity4, &v)

	test.T(t, v.Len(), 2)
	test.T(t, v.At(1).Points[0], Vec3{5, 5, 6})
}

func TestMesh(t *testing.T) {
	grid := make([][]Vec3, 3)
	for i := range grid {
		grid[i] = make([]Vec3, 3)
		for j := range grid[i] {
			grid[i][j] = Vec3{float64(j), float64(i), 5.0}
		}
	}

	var v FragmentVector
	obj := &Mesh{Grid: grid, Style: fillStyle()}
	obj.AddFragments(Identity4, &v)

	// two triangles per grid cell
	test.T(t, v.Len(), 8)
	area := 0.0
	for i := 0; i < v.Len(); i++ {
		area += polygonArea3(v.At(i).Points)
	}
	test.Float(t, area, 4.0)
}

func TestIsConvex3(t *testing.T) {
	test.That(t, isConvex3([]Vec3{{-1, -1, 5}, {1, -1, 5}, {1, 1, 5}, {-1, 1, 5}}))
	test.That(t, !isConvex3(lShape))
	test.That(t, !isConvex3([]Vec3{{0, 0, 5}, {1, 0, 5}, {2, 0, 5}}))
}
