package ripples

import "rain-scene/internal/random"

const (
	// StartAlpha is the alpha of a fresh ripple and the scale of the fade.
	StartAlpha = 0.8
	// FadeFloor recycles a ripple once its alpha fades to this value.
	FadeFloor = 0.1
	// VisibleRadius is the radius a ripple must exceed before it is drawn.
	VisibleRadius = 0.01
)

// Ripple is one expanding ring on the pond. X and Z are relative to the pond center.
type Ripple struct {
	X, Z      float32
	Radius    float32
	MaxRadius float32
	Speed     float32
	Alpha     float32
}

// System owns a fixed set of ripples.
type System struct {
	Ripples []Ripple
	rnd     *random.Field
}

// New returns n ripples seeded from rnd.
func New(n int, rnd *random.Field) *System {
	s := &System{Ripples: make([]Ripple, n), rnd: rnd}
	s.Init()
	return s
}

// Init seeds every ripple with a random center, a small starting radius, a max radius in
// [0.5, 1.0) and a growth speed in [0.01, 0.018].
func (s *System) Init() {
	for i := range s.Ripples {
		r := &s.Ripples[i]
		s.recenter(r)
		r.Radius = 0.1 * float32(s.rnd.Intn(10)) / 10
		r.MaxRadius = s.rnd.Span(0.5, 100, 200)
		r.Speed = s.rnd.Span(0.01, 5, 500)
		r.Alpha = StartAlpha
	}
}

// Update grows every ripple and fades its alpha linearly toward maxRadius. A ripple is
// recycled when it reaches maxRadius or its alpha falls to FadeFloor, whichever comes first.
func (s *System) Update() {
	for i := range s.Ripples {
		r := &s.Ripples[i]
		r.Radius += r.Speed
		r.Alpha = Fade(r.Radius, r.MaxRadius)
		if r.Radius >= r.MaxRadius || r.Alpha <= FadeFloor {
			s.reset(r)
		}
	}
}

// Visible returns the ripples large enough to draw. The returned slice is appended to dst.
func (s *System) Visible(dst []Ripple) []Ripple {
	for _, r := range s.Ripples {
		if r.Radius > VisibleRadius {
			dst = append(dst, r)
		}
	}
	return dst
}

// Fade is the alpha of a ripple of the given radius: StartAlpha * (1 - radius/maxRadius).
func Fade(radius, maxRadius float32) float32 {
	return StartAlpha * (1 - radius/maxRadius)
}

func (s *System) reset(r *Ripple) {
	r.Radius = 0
	s.recenter(r)
	r.Alpha = StartAlpha
}

func (s *System) recenter(r *Ripple) {
	r.X = s.rnd.Step(100, -50, 100) * 1.5
	r.Z = s.rnd.Step(100, -50, 100) * 1.5
}
