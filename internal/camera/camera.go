package camera

import (
	"github.com/chewxy/math32"

	"rain-scene/internal/vecmath"
)

// Limits bounds the orbit parameters and sets the per-input step sizes. Angles are degrees.
type Limits struct {
	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32
	ZoomStep                 float32
	AngleStep                float32
}

// DefaultLimits: distance in [2, 20] with 0.1 zoom steps, pitch in [10°, 80°], 2° per turn.
func DefaultLimits() Limits {
	return Limits{
		MinDistance: 2,
		MaxDistance: 20,
		MinPitch:    10,
		MaxPitch:    80,
		ZoomStep:    0.1,
		AngleStep:   2,
	}
}

// Basis is the camera's orthonormal view triad.
type Basis struct {
	Right, Up, Forward vecmath.Vec3
}

// Orbit is a camera that circles a fixed target. Yaw is unbounded; distance and pitch are
// clamped whenever they are changed through Zoom or Tilt. Rebuild must run every frame: it
// is the only producer of Eye, Basis and View.
type Orbit struct {
	Distance float32 // world units from Target
	Yaw      float32 // degrees around +Y, 0 looks from +Z
	Pitch    float32 // degrees above the horizon

	Target  vecmath.Vec3
	WorldUp vecmath.Vec3
	Limits  Limits

	eye   vecmath.Vec3
	basis Basis
	view  [16]float32
}

// New returns an orbit camera around target with the given distance and angles (degrees).
// The initial values are taken as given; limits apply to subsequent input.
func New(target vecmath.Vec3, distance, yaw, pitch float32, limits Limits) *Orbit {
	o := &Orbit{
		Distance: distance,
		Yaw:      yaw,
		Pitch:    pitch,
		Target:   target,
		WorldUp:  vecmath.V3(0, 1, 0),
		Limits:   limits,
	}
	o.Rebuild()
	return o
}

// Zoom moves the eye toward (steps > 0) or away from (steps < 0) the target by ZoomStep per
// step, clamped to [MinDistance, MaxDistance].
func (o *Orbit) Zoom(steps float32) {
	o.Distance = vecmath.Clamp(o.Distance-steps*o.Limits.ZoomStep, o.Limits.MinDistance, o.Limits.MaxDistance)
}

// Rotate turns the eye around the target by AngleStep per step. Positive steps rotate left.
func (o *Orbit) Rotate(steps float32) {
	o.Yaw += steps * o.Limits.AngleStep
}

// Tilt raises (steps > 0) or lowers the eye by AngleStep per step, clamped to [MinPitch, MaxPitch].
func (o *Orbit) Tilt(steps float32) {
	o.Pitch = vecmath.Clamp(o.Pitch+steps*o.Limits.AngleStep, o.Limits.MinPitch, o.Limits.MaxPitch)
}

// Set assigns the orbit parameters directly, clamping distance and pitch.
func (o *Orbit) Set(distance, yaw, pitch float32) {
	o.Distance = vecmath.Clamp(distance, o.Limits.MinDistance, o.Limits.MaxDistance)
	o.Yaw = yaw
	o.Pitch = vecmath.Clamp(pitch, o.Limits.MinPitch, o.Limits.MaxPitch)
}

// Rebuild recomputes the eye position, view basis and view matrix from the current
// distance, yaw and pitch.
func (o *Orbit) Rebuild() {
	yaw := vecmath.Radians(o.Yaw)
	pitch := vecmath.Radians(o.Pitch)
	cosPitch := math32.Cos(pitch)

	o.eye = o.Target.Add(vecmath.V3(
		cosPitch*math32.Sin(yaw),
		math32.Sin(pitch),
		cosPitch*math32.Cos(yaw),
	).Scale(o.Distance))

	f := o.Target.Sub(o.eye).Normalize()
	r := o.WorldUp.Cross(f).Normalize()
	u := f.Cross(r)
	o.basis = Basis{Right: r, Up: u, Forward: f}
	o.view = LookAt(o.eye, o.basis)
}

// Eye returns the eye position computed by the last Rebuild.
func (o *Orbit) Eye() vecmath.Vec3 {
	return o.eye
}

// Basis returns the view basis computed by the last Rebuild.
func (o *Orbit) Basis() Basis {
	return o.basis
}

// View returns the column-major view matrix computed by the last Rebuild.
func (o *Orbit) View() [16]float32 {
	return o.view
}

// LookAt assembles a column-major view matrix from an eye position and view basis. The
// camera looks down -Forward: rows are Right, Up and -Forward, each with the eye
// translation expressed in that axis.
func LookAt(eye vecmath.Vec3, b Basis) [16]float32 {
	r, u, f := b.Right, b.Up, b.Forward
	return [16]float32{
		r.X, u.X, -f.X, 0,
		r.Y, u.Y, -f.Y, 0,
		r.Z, u.Z, -f.Z, 0,
		-r.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
