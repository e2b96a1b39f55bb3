package threed

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a coordinate or direction in 3D space.
type Vec3 f64.Vec3

// IsZero returns true if V is exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0.0 && v[1] == 0.0 && v[2] == 0.0
}

// Equals returns true if V and W are equal with tolerance Epsilon.
func (v Vec3) Equals(w Vec3) bool {
	return equal(v[0], w[0]) && equal(v[1], w[1]) && equal(v[2], w[2])
}

// Neg negates x, y and z.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Add adds W to V.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub subtracts W from V.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul multiplies x, y and z by f.
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{f * v[0], f * v[1], f * v[2]}
}

// Dot returns the dot product between V and W.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product between V and W.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns the length of V.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm normalizes V to be of certain length.
func (v Vec3) Norm(length float64) Vec3 {
	d := v.Length()
	if equal(d, 0.0) {
		return Vec3{}
	}
	return v.Mul(length / d)
}

// Interpolate returns a point on VW that is linearly interpolated by t, ie. t=0 returns V and t=1 returns W.
func (v Vec3) Interpolate(w Vec3, t float64) Vec3 {
	return Vec3{
		(1-t)*v[0] + t*w[0],
		(1-t)*v[1] + t*w[1],
		(1-t)*v[2] + t*w[2],
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%g; %g; %g]", v[0], v[1], v[2])
}

// sincosDeg returns the sine and cosine of an angle in degrees.
func sincosDeg(deg float64) (float64, float64) {
	return math.Sincos(deg * math.Pi / 180.0)
}

////////////////////////////////////////////////////////////////

// Mat4 is a row-major 4x4 matrix used for 3D affine and projective transformations. Concatenating transformations evaluates right-to-left, as with the 2D Matrix.
type Mat4 f64.Mat4

// Identity4 is the identity transformation.
var Identity4 = Mat4{
	1.0, 0.0, 0.0, 0.0,
	0.0, 1.0, 0.0, 0.0,
	0.0, 0.0, 1.0, 0.0,
	0.0, 0.0, 0.0, 1.0,
}

// Mul multiplies M by Q, ie. applying Q first and M second.
func (m Mat4) Mul(q Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[4*i+j] = m[4*i]*q[j] + m[4*i+1]*q[4+j] + m[4*i+2]*q[8+j] + m[4*i+3]*q[12+j]
		}
	}
	return r
}

// Dot transforms the point V by M, ignoring the projective row.
func (m Mat4) Dot(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// DotVec transforms the direction V by M, ignoring translation.
func (m Mat4) DotVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// Project transforms the point V by M and applies the homogeneous divide.
func (m Mat4) Project(v Vec3) Vec3 {
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	p := m.Dot(v)
	if equal(w, 0.0) {
		return p
	}
	return p.Mul(1.0 / w)
}

// Translate adds a translation by (x,y,z).
func (m Mat4) Translate(x, y, z float64) Mat4 {
	return m.Mul(Mat4{
		1.0, 0.0, 0.0, x,
		0.0, 1.0, 0.0, y,
		0.0, 0.0, 1.0, z,
		0.0, 0.0, 0.0, 1.0,
	})
}

// Scale adds a scale by (x,y,z).
func (m Mat4) Scale(x, y, z float64) Mat4 {
	return m.Mul(Mat4{
		x, 0.0, 0.0, 0.0,
		0.0, y, 0.0, 0.0,
		0.0, 0.0, z, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// RotateX adds a rotation about the x-axis by rot degrees CCW.
func (m Mat4) RotateX(rot float64) Mat4 {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Mat4{
		1.0, 0.0, 0.0, 0.0,
		0.0, costheta, -sintheta, 0.0,
		0.0, sintheta, costheta, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// RotateY adds a rotation about the y-axis by rot degrees CCW.
func (m Mat4) RotateY(rot float64) Mat4 {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Mat4{
		costheta, 0.0, sintheta, 0.0,
		0.0, 1.0, 0.0, 0.0,
		-sintheta, 0.0, costheta, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

// RotateZ adds a rotation about the z-axis by rot degrees CCW.
func (m Mat4) RotateZ(rot float64) Mat4 {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Mat4{
		costheta, -sintheta, 0.0, 0.0,
		sintheta, costheta, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	})
}

func (m Mat4) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}
