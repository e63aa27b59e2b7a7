package camera

import (
	"github.com/chewxy/math32"

	"rain-scene/internal/vecmath"
)

// Perspective describes the viewing frustum. FovY is the vertical field of view in degrees.
type Perspective struct {
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultPerspective: 45° vertical FOV, 4:3 aspect, near 0.1, far 100.
func DefaultPerspective() Perspective {
	return Perspective{FovY: 45, Aspect: 800.0 / 600.0, Near: 0.1, Far: 100}
}

// Bounds returns the near-plane extents of the symmetric frustum.
func (p Perspective) Bounds() (left, right, bottom, top float32) {
	top = p.Near * math32.Tan(vecmath.Radians(p.FovY)/2)
	right = top * p.Aspect
	return -right, right, -top, top
}

// Matrix returns the column-major OpenGL frustum matrix for p.
func (p Perspective) Matrix() [16]float32 {
	l, r, b, t := p.Bounds()
	n, f := p.Near, p.Far
	return [16]float32{
		2 * n / (r - l), 0, 0, 0,
		0, 2 * n / (t - b), 0, 0,
		(r + l) / (r - l), (t + b) / (t - b), -(f + n) / (f - n), -1,
		0, 0, -2 * f * n / (f - n), 0,
	}
}
