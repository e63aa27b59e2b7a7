package rain

import "rain-scene/internal/random"

// SpawnHeight is the height a drop restarts from after hitting the ground.
const SpawnHeight = 5.0

// StreakLength is the length of the line drawn for one drop.
const StreakLength = 0.1

// Drop is one rain particle.
type Drop struct {
	X, Y, Z float32
	Speed   float32
}

// System is a fixed-size pool of drops. Drops are recycled in place, never removed.
type System struct {
	Drops []Drop
	rnd   *random.Field
}

// New returns a system with n drops seeded from rnd.
func New(n int, rnd *random.Field) *System {
	s := &System{Drops: make([]Drop, n), rnd: rnd}
	s.Init()
	return s
}

// Init places every drop at a fresh random position in the spawn square
// [-2, 2) x [-2, 2), at a height in [2, 12), with a speed in [0.02, 0.038].
func (s *System) Init() {
	for i := range s.Drops {
		d := &s.Drops[i]
		d.X = s.rnd.Step(200, -100, 50)
		d.Y = s.rnd.Span(2, 100, 10)
		d.Z = s.rnd.Step(200, -100, 50)
		d.Speed = s.rnd.Span(0.02, 10, 500)
	}
}

// Update advances every drop by one frame. A drop that falls below the ground restarts at
// SpawnHeight over the recycle square [-4, 8) x [-4, 8), which is wider than the spawn square.
func (s *System) Update() {
	for i := range s.Drops {
		d := &s.Drops[i]
		d.Y -= d.Speed
		if d.Y < 0 {
			d.Y = SpawnHeight
			d.X = s.rnd.Step(600, -200, 50)
			d.Z = s.rnd.Step(600, -200, 50)
		}
	}
}
