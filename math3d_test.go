package threed

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestVec3Ops(t *testing.T) {
	test.T(t, Vec3{1, 2, 3}.Add(Vec3{4, 5, 6}), Vec3{5, 7, 9})
	test.T(t, Vec3{4, 5, 6}.Sub(Vec3{1, 2, 3}), Vec3{3, 3, 3})
	test.T(t, Vec3{1, 2, 3}.Mul(2.0), Vec3{2, 4, 6})
	test.T(t, Vec3{1, 2, 3}.Neg(), Vec3{-1, -2, -3})
	test.Float(t, Vec3{1, 2, 3}.Dot(Vec3{4, 5, 6}), 32.0)
	test.T(t, Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1})
	test.Float(t, Vec3{3, 4, 0}.Length(), 5.0)
	test.T(t, Vec3{3, 4, 0}.Norm(10.0), Vec3{6, 8, 0})
	test.T(t, Vec3{}.Norm(1.0), Vec3{})
	test.T(t, Vec3{0, 0, 0}.Interpolate(Vec3{2, 4, 6}, 0.5), Vec3{1, 2, 3})
	test.That(t, Vec3{1, 2, 3}.Equals(Vec3{1, 2, 3}))
	test.That(t, !Vec3{1, 2, 3}.Equals(Vec3{1, 2, 4}))
}

func TestMat4Dot(t *testing.T) {
	m := Identity4.Translate(1.0, 2.0, 3.0)
	test.T(t, m.Dot(Vec3{1, 1, 1}), Vec3{2, 3, 4})
	test.T(t, m.DotVec(Vec3{1, 1, 1}), Vec3{1, 1, 1})

	m = Identity4.Scale(2.0, 3.0, 4.0)
	test.T(t, m.Dot(Vec3{1, 1, 1}), Vec3{2, 3, 4})
}

func TestMat4Mul(t *testing.T) {
	m := Identity4.Translate(1.0, 0.0, 0.0).Scale(2.0, 2.0, 2.0)
	// scale first, then translate
	test.T(t, m.Dot(Vec3{1, 1, 1}), Vec3{3, 2, 2})
}

func TestMat4Rotate(t *testing.T) {
	p := Identity4.RotateZ(90.0).Dot(Vec3{1, 0, 0})
	test.Float(t, p[0], 0.0)
	test.Float(t, p[1], 1.0)

	p = Identity4.RotateX(90.0).Dot(Vec3{0, 1, 0})
	test.Float(t, p[1], 0.0)
	test.Float(t, p[2], 1.0)

	p = Identity4.RotateY(90.0).Dot(Vec3{0, 0, 1})
	test.Float(t, p[0], 1.0)
	test.Float(t, p[2], 0.0)
}

func TestMat4Project(t *testing.T) {
	persp := Mat4{
		2.0, 0.0, 0.0, 0.0,
		0.0, 2.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
	}
	p := persp.Project(Vec3{1, 2, 4})
	test.Float(t, p[0], 0.5)
	test.Float(t, p[1], 1.0)
	test.Float(t, p[2], 1.0)
}
