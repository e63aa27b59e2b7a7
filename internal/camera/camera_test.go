package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"rain-scene/internal/vecmath"
)

var house = vecmath.V3(0, 0.75, 0)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestEyeAtZeroAngles(t *testing.T) {
	o := New(house, 15, 0, 0, DefaultLimits())
	e := o.Eye()
	if !near(e.X, 0) || !near(e.Y, 0.75) || !near(e.Z, 15) {
		t.Fatalf("eye = %+v, want (0, 0.75, 15)", e)
	}
}

func TestPitchRaisesEyeUntilClamp(t *testing.T) {
	o := New(house, 15, 45, 10, DefaultLimits())
	prev := o.Eye().Y
	for i := 0; i < 60; i++ {
		o.Tilt(1)
		o.Rebuild()
		y := o.Eye().Y
		if o.Pitch < 80 && y <= prev {
			t.Fatalf("step %d: eye y %v did not rise above %v", i, y, prev)
		}
		if y < prev {
			t.Fatalf("step %d: eye y decreased", i)
		}
		prev = y
	}
	if o.Pitch != 80 {
		t.Fatalf("pitch = %v, want clamp at 80", o.Pitch)
	}
	for i := 0; i < 100; i++ {
		o.Tilt(-1)
	}
	if o.Pitch != 10 {
		t.Fatalf("pitch = %v, want clamp at 10", o.Pitch)
	}
}

func TestDistanceClamped(t *testing.T) {
	o := New(house, 15, 45, 18, DefaultLimits())
	for i := 0; i < 1000; i++ {
		o.Zoom(-1)
		if o.Distance > 20 {
			t.Fatalf("distance %v above max", o.Distance)
		}
	}
	if o.Distance != 20 {
		t.Fatalf("distance = %v, want 20", o.Distance)
	}
	for i := 0; i < 1000; i++ {
		o.Zoom(1)
	}
	if o.Distance != 2 {
		t.Fatalf("distance = %v, want 2", o.Distance)
	}
}

func TestYawUnbounded(t *testing.T) {
	o := New(house, 15, 45, 18, DefaultLimits())
	for i := 0; i < 400; i++ {
		o.Rotate(1)
	}
	if o.Yaw != 45+800 {
		t.Fatalf("yaw = %v, want 845", o.Yaw)
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	o := New(house, 12, 30, 40, DefaultLimits())
	b := o.Basis()
	for name, v := range map[string]vecmath.Vec3{"right": b.Right, "up": b.Up, "forward": b.Forward} {
		if !near(v.Length(), 1) {
			t.Fatalf("%s not unit: %v", name, v.Length())
		}
	}
	if !near(b.Right.Dot(b.Up), 0) || !near(b.Right.Dot(b.Forward), 0) || !near(b.Up.Dot(b.Forward), 0) {
		t.Fatalf("basis not orthogonal: %+v", b)
	}
	if b.Up.Y <= 0 {
		t.Fatalf("up should point skyward, got %+v", b.Up)
	}
	toTarget := house.Sub(o.Eye()).Normalize()
	if !near(toTarget.Dot(b.Forward), 1) {
		t.Fatalf("forward does not point at target")
	}
}

func TestViewMapsEyeToOriginAndTargetDownNegativeZ(t *testing.T) {
	o := New(house, 15, 45, 18, DefaultLimits())
	m := o.View()
	apply := func(p vecmath.Vec3) vecmath.Vec3 {
		return vecmath.V3(
			m[0]*p.X+m[4]*p.Y+m[8]*p.Z+m[12],
			m[1]*p.X+m[5]*p.Y+m[9]*p.Z+m[13],
			m[2]*p.X+m[6]*p.Y+m[10]*p.Z+m[14],
		)
	}
	e := apply(o.Eye())
	if !near(e.X, 0) || !near(e.Y, 0) || !near(e.Z, 0) {
		t.Fatalf("eye maps to %+v, want origin", e)
	}
	tg := apply(house)
	if !near(tg.X, 0) || !near(tg.Y, 0) || !near(tg.Z, -15) {
		t.Fatalf("target maps to %+v, want (0,0,-15)", tg)
	}
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
		t.Fatalf("bottom row = %v %v %v %v", m[3], m[7], m[11], m[15])
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	o := New(house, 9.3, 117, 33, DefaultLimits())
	o.Rebuild()
	first, eye := o.View(), o.Eye()
	o.Rebuild()
	if o.View() != first || o.Eye() != eye {
		t.Fatalf("rebuild without input changed the view")
	}
}

func TestSetClamps(t *testing.T) {
	o := New(house, 15, 45, 18, DefaultLimits())
	o.Set(100, -30, 5)
	if o.Distance != 20 || o.Yaw != -30 || o.Pitch != 10 {
		t.Fatalf("set gave %v %v %v", o.Distance, o.Yaw, o.Pitch)
	}
}

func TestPerspectiveMatrix(t *testing.T) {
	p := DefaultPerspective()
	l, r, b, tp := p.Bounds()
	if !near(l, -r) || !near(b, -tp) {
		t.Fatalf("frustum not symmetric")
	}
	if !near(r/tp, p.Aspect) {
		t.Fatalf("aspect = %v, want %v", r/tp, p.Aspect)
	}
	m := p.Matrix()
	if m[11] != -1 || m[15] != 0 {
		t.Fatalf("not a perspective matrix: %v", m)
	}
	if !near(m[5], 1/math32.Tan(vecmath.Radians(22.5))) {
		t.Fatalf("m[5] = %v", m[5])
	}
}
