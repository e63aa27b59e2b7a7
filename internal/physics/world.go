package physics

import (
	"github.com/chewxy/math32"
)

// Direction is one of the four discrete sphere moves.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return "Unknown"
}

// Footprint is a square obstacle on the XZ plane (the house).
type Footprint struct {
	CenterX, CenterZ float32
	HalfExtent       float32
}

// Disk is a round obstacle on the XZ plane (the pond).
type Disk struct {
	CenterX, CenterZ float32
	Radius           float32
}

// World holds the static obstacles and the sphere that moves between them.
type World struct {
	House  Footprint
	Pond   Disk
	Sphere *Sphere
}

// NewWorld returns a world with the given obstacles and sphere.
func NewWorld(house Footprint, pond Disk, sphere *Sphere) *World {
	return &World{House: house, Pond: pond, Sphere: sphere}
}

// IsValidPosition reports whether the sphere may stand at (x, z). Both obstacles are
// inflated by the sphere radius: the house square becomes a square of half side
// HalfExtent+Radius (bounds inclusive) and the pond becomes a disk of radius Radius+pond.Radius.
func (w *World) IsValidPosition(x, z float32) bool {
	r := w.Sphere.Radius
	h := w.House
	if x >= h.CenterX-h.HalfExtent-r && x <= h.CenterX+h.HalfExtent+r &&
		z >= h.CenterZ-h.HalfExtent-r && z <= h.CenterZ+h.HalfExtent+r {
		return false
	}
	dx := x - w.Pond.CenterX
	dz := z - w.Pond.CenterZ
	if math32.Sqrt(dx*dx+dz*dz) <= w.Pond.Radius+r {
		return false
	}
	return true
}

// Move steps the sphere one Step along a single axis. The step is committed only when the
// candidate position is valid; otherwise the sphere stays put. Left/Right change X,
// Up/Down change Z (Up is -Z).
func (w *World) Move(d Direction) bool {
	s := w.Sphere
	x, z := s.Position[0], s.Position[2]
	switch d {
	case Left:
		x -= s.Step
	case Right:
		x += s.Step
	case Up:
		z -= s.Step
	case Down:
		z += s.Step
	default:
		return false
	}
	if !w.IsValidPosition(x, z) {
		return false
	}
	s.Position[0], s.Position[2] = x, z
	return true
}

// Teleport places the sphere at (x, z) if that position is valid.
func (w *World) Teleport(x, z float32) bool {
	if !w.IsValidPosition(x, z) {
		return false
	}
	w.Sphere.Position[0], w.Sphere.Position[2] = x, z
	return true
}
