package physics

// Sphere is the player-controlled ball. It rolls on the ground: Position[1] is the ground
// contact height and never changes; the renderer lifts the ball by Radius.
// Step is how far one key event moves it along X or Z.
type Sphere struct {
	Position [3]float32
	Radius   float32
	Step     float32
}

// NewSphere returns a sphere at position. A non-positive step defaults to 0.1.
func NewSphere(position [3]float32, radius, step float32) *Sphere {
	if step <= 0 {
		step = 0.1
	}
	return &Sphere{
		Position: position,
		Radius:   radius,
		Step:     step,
	}
}

// Center returns the point the sphere is drawn around (ground contact lifted by Radius).
func (s *Sphere) Center() [3]float32 {
	return [3]float32{s.Position[0], s.Position[1] + s.Radius, s.Position[2]}
}
