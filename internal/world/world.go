package world

import (
	"fmt"

	"rain-scene/internal/camera"
	"rain-scene/internal/clouds"
	"rain-scene/internal/input"
	"rain-scene/internal/layout"
	"rain-scene/internal/physics"
	"rain-scene/internal/rain"
	"rain-scene/internal/random"
	"rain-scene/internal/ripples"
	"rain-scene/internal/vecmath"
)

// Logger receives one line per applied intent.
type Logger interface {
	Log(line string)
}

// World is the whole simulation state: the animated populations, the sphere and its
// obstacles, the orbit camera and the door. It is owned by the frame loop and mutated
// only from that goroutine.
type World struct {
	Layout   layout.Layout
	Rain     *rain.System
	Clouds   *clouds.System
	Ripples  *ripples.System
	Physics  *physics.World
	Camera   *camera.Orbit
	DoorOpen bool
	Frame    uint64

	rnd *random.Field
	log Logger
}

// New builds the scene described by l. Seed 0 picks a time-based seed. log may be nil.
func New(l layout.Layout, seed int64, log Logger) *World {
	rnd := random.New(seed)
	cl := l.Camera
	w := &World{
		Layout:  l,
		Rain:    rain.New(l.Rain.Drops, rnd),
		Clouds:  clouds.New(l.Clouds.Count, l.Clouds.PuffsPerCloud, rnd),
		Ripples: ripples.New(l.Ripples.Count, rnd),
		Physics: l.Obstacles(),
		Camera: camera.New(toVec(l.House.Position), cl.Distance, cl.Yaw, cl.Pitch, camera.Limits{
			MinDistance: cl.MinDistance,
			MaxDistance: cl.MaxDistance,
			MinPitch:    cl.MinPitch,
			MaxPitch:    cl.MaxPitch,
			ZoomStep:    cl.ZoomStep,
			AngleStep:   cl.AngleStep,
		}),
		rnd: rnd,
		log: log,
	}
	return w
}

// Seed returns the seed the populations were generated from.
func (w *World) Seed() int64 {
	return w.rnd.Seed()
}

// Advance runs one frame of simulation: every population is stepped exactly once, then the
// camera view is rebuilt. Nothing is drawn until Advance returns.
func (w *World) Advance() {
	w.Rain.Update()
	w.Clouds.Update()
	w.Ripples.Update()
	w.Camera.Rebuild()
	w.Frame++
}

// Apply performs one intent immediately. Sphere moves that would collide are dropped silently.
func (w *World) Apply(in input.Intent) {
	switch in.Kind {
	case input.KindDoor:
		w.DoorOpen = in.Open
		w.logf("%s", in.Label)
	case input.KindZoom:
		w.Camera.Zoom(in.Steps)
		w.logf("%s", in.Label)
	case input.KindRotate:
		w.Camera.Rotate(in.Steps)
		w.logf("%s", in.Label)
	case input.KindTilt:
		w.Camera.Tilt(in.Steps)
		w.logf("%s", in.Label)
	case input.KindMove:
		if w.Physics.Move(in.Move) {
			pos := w.Physics.Sphere.Position
			w.logf("%s: Sphere moved to (%g, %g)", in.Label, pos[0], pos[2])
		}
	}
}

// Reset regenerates every population from seed (0 = time-based) and returns the sphere
// and camera to their layout defaults.
func (w *World) Reset(seed int64) {
	fresh := New(w.Layout, seed, w.log)
	fresh.Frame = w.Frame
	*w = *fresh
}

// House returns the house position, which is also the camera target.
func (w *World) House() vecmath.Vec3 {
	return toVec(w.Layout.House.Position)
}

// Pond returns the pond center. Ripple coordinates are relative to it.
func (w *World) Pond() vecmath.Vec3 {
	return toVec(w.Layout.Pond.Position)
}

func (w *World) logf(format string, args ...any) {
	if w.log == nil {
		return
	}
	w.log.Log(fmt.Sprintf(format, args...))
}

func toVec(a [3]float32) vecmath.Vec3 {
	return vecmath.V3(a[0], a[1], a[2])
}

// Status is a one-line readout of the camera, the sphere and the door for the debug overlay.
func (w *World) Status() string {
	door := "closed"
	if w.DoorOpen {
		door = "open"
	}
	c, p := w.Camera, w.Physics.Sphere.Position
	return fmt.Sprintf("cam d=%.1f yaw=%.0f pitch=%.0f  sphere (%.1f, %.1f)  door %s",
		c.Distance, c.Yaw, c.Pitch, p[0], p[2], door)
}

// Snapshot returns the layout with the camera and sphere start replaced by their current
// values, so saving it restarts the scene from this view.
func (w *World) Snapshot() layout.Layout {
	l := w.Layout
	l.Camera.Distance, l.Camera.Yaw, l.Camera.Pitch = w.Camera.Distance, w.Camera.Yaw, w.Camera.Pitch
	l.Sphere.Start = w.Physics.Sphere.Position
	return l
}
