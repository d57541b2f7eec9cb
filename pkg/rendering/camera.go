package rendering

import "math"

// DefaultCameraDistance is the distance in pixels from the eye to the z=0
// plane (8 inches at 72 dpi).
const DefaultCameraDistance = 576.0

// Camera builds a perspective transform for content drawn on the z=0 plane.
//
// Operations compose like canvas transforms: each call is applied to the
// content before the ones made earlier. Translate then RotateX therefore
// rotates the content about its origin first and moves it second. Matrix
// projects the result onto the screen plane as seen from Distance pixels in
// front of it.
type Camera struct {
	Distance float64

	// 3x4 affine transform in 3D, row-major.
	m [12]float64
}

// NewCamera returns a camera at DefaultCameraDistance with no transform.
func NewCamera() *Camera {
	c := &Camera{Distance: DefaultCameraDistance}
	c.Reset()
	return c
}

// Reset clears the 3D transform.
func (c *Camera) Reset() {
	c.m = [12]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// Translate moves content by (x, y, z). Positive z pushes it away from the eye.
func (c *Camera) Translate(x, y, z float64) {
	c.concat([12]float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
	})
}

// RotateX tips content about the horizontal axis. Positive degrees move the
// top edge away from the eye and the bottom edge toward it.
func (c *Camera) RotateX(degrees float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	c.concat([12]float64{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
	})
}

// concat sets c.m = c.m * op.
func (c *Camera) concat(op [12]float64) {
	var out [12]float64
	for row := range 3 {
		for col := range 4 {
			v := c.m[row*4]*op[col] + c.m[row*4+1]*op[4+col] + c.m[row*4+2]*op[8+col]
			if col == 3 {
				v += c.m[row*4+3]
			}
			out[row*4+col] = v
		}
	}
	c.m = out
}

// Matrix returns the 2D projective transform for points on the z=0 plane.
// The identity camera yields the identity matrix.
func (c *Camera) Matrix() Matrix {
	d := c.Distance
	if d <= 0 {
		d = DefaultCameraDistance
	}
	m := c.m
	// A plane point (x, y) lands at x*col0 + y*col1 + col3 in 3D and is then
	// projected by d / (d + z). Dividing through by d keeps w == 1 at z == 0.
	return Matrix{
		m[0], m[1], m[3],
		m[4], m[5], m[7],
		m[8] / d, m[9] / d, 1 + m[11]/d,
	}
}
