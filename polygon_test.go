package threed

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

var unitSquare = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestSignedArea(t *testing.T) {
	test.Float(t, signedArea(unitSquare), 1.0)
	test.Float(t, signedArea([]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}), -1.0)
	test.Float(t, signedArea([]Point{{0, 0}, {2, 0}, {0, 2}}), 2.0)
}

func TestCentroid(t *testing.T) {
	c := centroid(unitSquare)
	test.Float(t, c.X, 0.5)
	test.Float(t, c.Y, 0.5)

	c = centroid([]Point{{0, 0}, {3, 0}, {0, 3}})
	test.Float(t, c.X, 1.0)
	test.Float(t, c.Y, 1.0)
}

func TestInterior(t *testing.T) {
	test.That(t, interior(Point{0.5, 0.5}, unitSquare))
	test.That(t, !interior(Point{1.5, 0.5}, unitSquare))
	test.That(t, !interior(Point{-0.5, 0.5}, unitSquare))
}

func TestCCW(t *testing.T) {
	cw := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	test.That(t, 0.0 < signedArea(ccw(cw)))
	test.That(t, 0.0 < signedArea(ccw(unitSquare)))
}

func TestClipPolygon(t *testing.T) {
	subject := []Point{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}}
	region := clipPolygon(subject, unitSquare)
	test.That(t, region != nil)
	test.Float(t, math.Abs(signedArea(region)), 0.25)

	// disjoint
	test.That(t, clipPolygon([]Point{{2, 2}, {3, 2}, {3, 3}, {2, 3}}, unitSquare) == nil)

	// touching edge has no area
	test.That(t, clipPolygon([]Point{{1, 0}, {2, 0}, {2, 1}, {1, 1}}, unitSquare) == nil)

	// contained
	inner := []Point{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	region = clipPolygon(inner, unitSquare)
	test.Float(t, math.Abs(signedArea(region)), 0.25)
}

func TestClipSegment(t *testing.T) {
	t0, t1, ok := clipSegment(Point{-1, 0.5}, Point{2, 0.5}, unitSquare)
	test.That(t, ok)
	test.Float(t, t0, 1.0/3.0)
	test.Float(t, t1, 2.0/3.0)

	t0, t1, ok = clipSegment(Point{0.25, 0.25}, Point{0.75, 0.75}, unitSquare)
	test.That(t, ok)
	test.Float(t, t0, 0.0)
	test.Float(t, t1, 1.0)

	_, _, ok = clipSegment(Point{-1, 2}, Point{2, 2}, unitSquare)
	test.That(t, !ok)
}

func TestIntersectSegments(t *testing.T) {
	s, u, ok := intersectSegments(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0})
	test.That(t, ok)
	test.Float(t, s, 0.5)
	test.Float(t, u, 0.5)

	_, _, ok = intersectSegments(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1})
	test.That(t, !ok)

	_, _, ok = intersectSegments(Point{0, 0}, Point{1, 0}, Point{2, -1}, Point{2, 1})
	test.That(t, !ok)
}
