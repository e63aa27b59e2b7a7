package vecmath

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestCrossFollowsRightHandRule(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if got := x.Cross(y); got != V3(0, 0, 1) {
		t.Fatalf("x × y = %+v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != V3(0, 0, -1) {
		t.Fatalf("y × x = %+v, want (0,0,-1)", got)
	}
}

func TestNormalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math32.Abs(n.Length()-1) > 1e-6 {
		t.Fatalf("length %v, want 1", n.Length())
	}
	if n.X != 0.6 || n.Z != 0.8 {
		t.Fatalf("unexpected normalized vector %+v", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Fatalf("zero vector changed to %+v", z)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{-1, 2}, {2, 2}, {7, 7}, {20, 20}, {25, 20},
	}
	for _, c := range cases {
		if got := Clamp(c.in, 2, 20); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if math32.Abs(Radians(180)-math32.Pi) > 1e-6 {
		t.Fatalf("Radians(180) = %v", Radians(180))
	}
}
