package threed

import "fmt"

// Camera defines the eye position, viewing direction and perspective projection used to map world coordinates onto the screen. The camera space has the eye at the origin with x to the right, y up and z pointing into the scene, so a point's camera-space z is its depth.
type Camera struct {
	// ViewM transforms world coordinates to camera space.
	ViewM Mat4

	eye    Vec3
	focal  float64
	near   float64
	perspM Mat4
}

// NewCamera returns a camera at the origin looking along +z with a 45 degree field of view.
func NewCamera() *Camera {
	c := &Camera{ViewM: Identity4, near: 0.01}
	c.SetPerspective(45.0)
	return c
}

// SetPointing places the eye position looking at the target, with up fixing the camera's roll.
func (c *Camera) SetPointing(eye, target, up Vec3) {
	forward := target.Sub(eye).Norm(1.0)
	right := up.Cross(forward).Norm(1.0)
	newUp := forward.Cross(right)
	c.eye = eye
	c.ViewM = Mat4{
		right[0], right[1], right[2], -right.Dot(eye),
		newUp[0], newUp[1], newUp[2], -newUp.Dot(eye),
		forward[0], forward[1], forward[2], -forward.Dot(eye),
		0.0, 0.0, 0.0, 1.0,
	}
}

// SetPerspective sets the vertical field of view in degrees.
func (c *Camera) SetPerspective(fov float64) {
	c.focal = 1.0 / tanDeg(fov/2.0)
	c.perspM = Mat4{
		c.focal, 0.0, 0.0, 0.0,
		0.0, c.focal, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
	}
}

// SetNear sets the near clipping distance. Geometry at or before this depth is cut away before drawing.
func (c *Camera) SetNear(near float64) {
	c.near = near
}

// Eye returns the world-space eye position.
func (c *Camera) Eye() Vec3 {
	return c.eye
}

// Depth returns the camera-space depth of the world point p.
func (c *Camera) Depth(p Vec3) float64 {
	return c.ViewM.Dot(p)[2]
}

// projectPoint maps a camera-space point to normalized device coordinates in [-1,1].
func (c *Camera) projectPoint(p Vec3) Point {
	q := c.perspM.Project(p)
	return Point{q[0], q[1]}
}

func (c *Camera) check() error {
	if c.focal <= 0.0 {
		return fmt.Errorf("camera field of view must be in (0,180) degrees")
	} else if c.near <= 0.0 {
		return fmt.Errorf("camera near distance must be positive")
	}
	return nil
}

func tanDeg(deg float64) float64 {
	s, c := sincosDeg(deg)
	return s / c
}
