package shapes

import (
	"testing"

	"github.com/chewxy/math32"

	"rain-scene/internal/vecmath"
)

const eps = 1e-5

func near(a, b float32) bool { return math32.Abs(a-b) < eps }

func TestUnitRing(t *testing.T) {
	pts := UnitRing(RingSegments)
	if len(pts) != RingSegments {
		t.Fatalf("len = %d", len(pts))
	}
	if !near(pts[0].X, 1) || !near(pts[0].Z, 0) {
		t.Fatalf("first point = %+v", pts[0])
	}
	if q := pts[RingSegments/4]; !near(q.X, 0) || !near(q.Z, 1) {
		t.Fatalf("quarter point = %+v, want +Z", q)
	}
	for i, p := range pts {
		if !near(p.Length(), 1) || p.Y != 0 {
			t.Fatalf("point %d = %+v not on unit circle", i, p)
		}
	}
	if n := len(UnitRing(1)); n != 3 {
		t.Fatalf("degenerate ring has %d points", n)
	}
}

func TestRingReusesBuffer(t *testing.T) {
	unit := UnitRing(8)
	buf := make([]vecmath.Vec3, 0, 8)
	got := Ring(buf, unit, 3, 0.02, 3, 2)
	if &got[0] != &buf[:1][0] {
		t.Fatalf("Ring did not reuse dst")
	}
	if !near(got[0].X, 5) || !near(got[0].Z, 3) || got[0].Y != 0.02 {
		t.Fatalf("first point = %+v", got[0])
	}
}

func TestSkyConeCloses(t *testing.T) {
	apex, rim := SkyCone()
	if apex != vecmath.V3(0, SkyRadius, 0) {
		t.Fatalf("apex = %+v", apex)
	}
	if len(rim) != 2*SkySegments+1 || rim[0] != rim[len(rim)-1] {
		t.Fatalf("rim of %d points does not close", len(rim))
	}
}

func TestGrassMarksSkipHouseAndPond(t *testing.T) {
	house, pond := vecmath.V3(0, 0.75, 0), vecmath.V3(3, 0.01, 3)
	segs := GrassMarks(house, pond)
	// 21x21 grid, minus 9 points around the house and 13 within 2.2 of the pond.
	if want := 2 * (441 - 9 - 13); len(segs) != want {
		t.Fatalf("got %d segments, want %d", len(segs), want)
	}
	for _, s := range segs {
		mid := s.A.Add(s.B).Scale(0.5)
		if math32.Abs(mid.X) < 1.5 && math32.Abs(mid.Z) < 1.5 {
			t.Fatalf("grass mark inside the house clearance at %+v", mid)
		}
		if d := mid.Sub(pond); math32.Sqrt(d.X*d.X+d.Z*d.Z) < 2.2 {
			t.Fatalf("grass mark in the pond at %+v", mid)
		}
	}
}

func TestDoorSwingsOpen(t *testing.T) {
	closedAt, closedYaw := Door(false)
	openAt, openYaw := Door(true)
	if closedYaw != 0 || openYaw != -90 {
		t.Fatalf("yaw closed=%v open=%v", closedYaw, openYaw)
	}
	if closedAt != openAt {
		t.Fatalf("door must turn in place: %+v vs %+v", closedAt, openAt)
	}
	if !near(closedAt.Y, -0.125) || !near(closedAt.Z, 1.01) || closedAt.X != 0 {
		t.Fatalf("door center = %+v", closedAt)
	}
	if DoorSize.X != 0.5 || DoorSize.Y != 0.75 {
		t.Fatalf("door size = %+v", DoorSize)
	}
}

func TestRoofAndWindowCross(t *testing.T) {
	if n := len(Roof()); n != 6 {
		t.Fatalf("roof has %d triangles", n)
	}
	cross := WindowCross(Windows[0])
	if cross[0].A.Z != cross[0].B.Z || !near(cross[0].A.Z, 1.02) {
		t.Fatalf("mullion not in front of glass: %+v", cross[0])
	}
}
