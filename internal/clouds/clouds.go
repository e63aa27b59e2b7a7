package clouds

import "rain-scene/internal/random"

const (
	// WrapX is the drift boundary; a cloud past it re-enters at -WrapX.
	WrapX = 15.0
	// PuffSegments is the sphere resolution used when drawing a puff.
	PuffSegments = 12
)

// Puff is one sphere of a cloud, positioned relative to the cloud center.
// Puffs are fixed once the cloud is created.
type Puff struct {
	X, Y, Z float32
	Size    float32
	Alpha   float32
}

// Cloud is a drifting group of puffs.
type Cloud struct {
	X, Y, Z float32
	Speed   float32
	Width   float32
	Puffs   []Puff
}

// System owns every cloud. The slice never changes length after New.
type System struct {
	Clouds []Cloud
	rnd    *random.Field
}

// New returns count clouds with puffsPerCloud puffs each. count must be at least 2.
func New(count, puffsPerCloud int, rnd *random.Field) *System {
	s := &System{Clouds: make([]Cloud, count), rnd: rnd}
	for i := range s.Clouds {
		s.Clouds[i].Puffs = make([]Puff, puffsPerCloud)
	}
	s.Init()
	return s
}

// Init sets the two scripted clouds, randomizes the rest, then scatters each cloud's
// puffs in proportion to its width.
func (s *System) Init() {
	s.Clouds[0].X, s.Clouds[0].Y, s.Clouds[0].Z = -5, 4, 2
	s.Clouds[0].Speed, s.Clouds[0].Width = 0.002, 2.0

	s.Clouds[1].X, s.Clouds[1].Y, s.Clouds[1].Z = -4, 7, -3
	s.Clouds[1].Speed, s.Clouds[1].Width = 0.001, 1.5

	for i := 2; i < len(s.Clouds); i++ {
		c := &s.Clouds[i]
		c.X = s.rnd.Span(-15, 300, 10)
		c.Y = s.rnd.Span(4, 40, 10)
		c.Z = s.rnd.Span(-15, 300, 10)
		c.Speed = s.rnd.Span(0, 8, 2000)
		c.Width = s.rnd.Span(1.5, 10, 10)
	}

	for i := range s.Clouds {
		c := &s.Clouds[i]
		for j := range c.Puffs {
			p := &c.Puffs[j]
			p.X = s.rnd.Step(100, -50, 100) * c.Width * 0.5
			p.Y = s.rnd.Step(50, -25, 100) * 0.5
			p.Z = s.rnd.Step(100, -50, 100) * c.Width * 0.5
			p.Size = s.rnd.Span(0.5, 10, 20)
			p.Alpha = s.rnd.Span(0.8, 20, 100)
		}
	}
}

// Update drifts every cloud along +X. A cloud strictly past WrapX re-enters at -WrapX
// with a new height and depth; speed, width and puffs are kept.
func (s *System) Update() {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X += c.Speed
		if c.X > WrapX {
			c.X = -WrapX
			c.Y = s.rnd.Span(8, 40, 10)
			c.Z = s.rnd.Step(500, -250, 50)
		}
	}
}
