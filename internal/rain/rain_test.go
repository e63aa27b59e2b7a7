package rain

import (
	"testing"

	"rain-scene/internal/random"
)

func TestInitBounds(t *testing.T) {
	s := New(3500, random.New(1))
	if len(s.Drops) != 3500 {
		t.Fatalf("drop count = %d", len(s.Drops))
	}
	for i, d := range s.Drops {
		if d.X < -2 || d.X >= 2 || d.Z < -2 || d.Z >= 2 {
			t.Fatalf("drop %d outside spawn square: %+v", i, d)
		}
		if d.Y < 2 || d.Y >= 12 {
			t.Fatalf("drop %d height %v outside [2,12)", i, d.Y)
		}
		if d.Speed < 0.02 || d.Speed > 0.0381 {
			t.Fatalf("drop %d speed %v outside band", i, d.Speed)
		}
	}
}

func TestUpdateKeepsDropsAboveGround(t *testing.T) {
	s := New(500, random.New(2))
	for frame := 0; frame < 2000; frame++ {
		s.Update()
		for i, d := range s.Drops {
			if d.Y < 0 {
				t.Fatalf("frame %d drop %d below ground: %v", frame, i, d.Y)
			}
		}
	}
	if len(s.Drops) != 500 {
		t.Fatalf("pool size changed to %d", len(s.Drops))
	}
}

func TestRecycleUsesWiderSquare(t *testing.T) {
	s := New(1, random.New(3))
	outside := false
	for i := 0; i < 500; i++ {
		s.Drops[0].Y = 0.001
		s.Drops[0].Speed = 0.01
		s.Update()
		d := s.Drops[0]
		if d.Y != SpawnHeight {
			t.Fatalf("recycled drop at height %v, want %v", d.Y, SpawnHeight)
		}
		if d.X < -4 || d.X >= 8 || d.Z < -4 || d.Z >= 8 {
			t.Fatalf("recycled drop outside recycle square: %+v", d)
		}
		if d.X >= 2 || d.Z >= 2 {
			outside = true
		}
	}
	if !outside {
		t.Fatalf("recycle never left the spawn square; expected the wider recycle range")
	}
}

func TestUpdateFallsBySpeed(t *testing.T) {
	s := New(1, random.New(4))
	s.Drops[0] = Drop{X: 1, Y: 3, Z: 1, Speed: 0.5}
	s.Update()
	if got := s.Drops[0]; got != (Drop{X: 1, Y: 2.5, Z: 1, Speed: 0.5}) {
		t.Fatalf("after one step got %+v", got)
	}
}
