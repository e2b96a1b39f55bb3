package threed

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which two coordinates are considered equal.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D screen space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle in 2D screen space.
type Rect struct {
	X, Y, W, H float64
}

// Add returns the smallest rectangle containing both R and Q.
func (r Rect) Add(q Rect) Rect {
	if q.W == 0.0 || q.H == 0.0 {
		return r
	} else if r.W == 0.0 || r.H == 0.0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Overlaps returns true if R and Q overlap with tolerance Epsilon.
func (r Rect) Overlaps(q Rect) bool {
	return r.X < q.X+q.W+Epsilon && q.X < r.X+r.W+Epsilon &&
		r.Y < q.Y+q.H+Epsilon && q.Y < r.Y+r.H+Epsilon
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// pointsRect returns the bounding rectangle of pts.
func pointsRect(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	x0, y0 := pts[0].X, pts[0].Y
	x1, y1 := x0, y0
	for _, p := range pts[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations in 2D screen space. Concatenating transformation functions will be evaluated right-to-left.
type Matrix [2][3]float64

// Identity is the identity transformation.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul multiplies M by Q, ie. applying Q first and M second.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms the point P by M.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Translate adds a translation by (x,y).
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Scale adds a scale by (x,y).
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// Inv returns the inverse of M, which must not be singular.
func (m Matrix) Inv() Matrix {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	if equal(det, 0.0) {
		panic("cannot invert singular affine transformation matrix")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		(m[0][1]*m[1][2] - m[1][1]*m[0][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		(m[1][0]*m[0][2] - m[0][0]*m[1][2]) / det,
	}}
}
