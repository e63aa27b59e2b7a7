package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rain-scene/internal/physics"
)

// LayoutPath is the scene layout file, relative to the process working directory.
const LayoutPath = "config/scene.yaml"

// Layout is the static description of the scene: population sizes, obstacle geometry,
// the controllable sphere and the orbit camera. It is read once at startup.
type Layout struct {
	Rain    RainLayout   `yaml:"rain"`
	Clouds  CloudLayout  `yaml:"clouds"`
	Ripples RippleLayout `yaml:"ripples"`
	House   HouseLayout  `yaml:"house"`
	Pond    PondLayout   `yaml:"pond"`
	Sphere  SphereLayout `yaml:"sphere"`
	Camera  CameraLayout `yaml:"camera"`
}

// RainLayout sizes the rain drop pool.
type RainLayout struct {
	Drops int `yaml:"drops"`
}

// CloudLayout sets the number of clouds and the puffs in each.
type CloudLayout struct {
	Count         int `yaml:"count"`
	PuffsPerCloud int `yaml:"puffs_per_cloud"`
}

// RippleLayout sizes the pond ripple pool.
type RippleLayout struct {
	Count int `yaml:"count"`
}

// HouseLayout places the house. HalfExtent is the half side of its square footprint on XZ.
type HouseLayout struct {
	Position   [3]float32 `yaml:"position"`
	HalfExtent float32    `yaml:"half_extent"`
}

// PondLayout places the pond. Ripples are positioned relative to its center.
type PondLayout struct {
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
}

// SphereLayout is the controllable sphere's start position, radius and per-key step.
type SphereLayout struct {
	Start  [3]float32 `yaml:"start"`
	Radius float32    `yaml:"radius"`
	Step   float32    `yaml:"step"`
}

// CameraLayout holds orbit defaults and limits. Angles are in degrees.
type CameraLayout struct {
	Distance    float32 `yaml:"distance"`
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	MinPitch    float32 `yaml:"min_pitch"`
	MaxPitch    float32 `yaml:"max_pitch"`
	ZoomStep    float32 `yaml:"zoom_step"`
	AngleStep   float32 `yaml:"angle_step"`
}

// Default returns the stock scene: 3500 drops, 10 clouds of 6 puffs, 10 ripples,
// the house at (0, 0.75, 0), a radius-2 pond at (3, 0.01, 3) and the sphere at (-2, 0, -2).
func Default() Layout {
	return Layout{
		Rain:    RainLayout{Drops: 3500},
		Clouds:  CloudLayout{Count: 10, PuffsPerCloud: 6},
		Ripples: RippleLayout{Count: 10},
		House:   HouseLayout{Position: [3]float32{0, 0.75, 0}, HalfExtent: 1},
		Pond:    PondLayout{Position: [3]float32{3, 0.01, 3}, Radius: 2},
		Sphere:  SphereLayout{Start: [3]float32{-2, 0, -2}, Radius: 0.3, Step: 0.1},
		Camera: CameraLayout{
			Distance:    15,
			Yaw:         45,
			Pitch:       18,
			MinDistance: 2,
			MaxDistance: 20,
			MinPitch:    10,
			MaxPitch:    80,
			ZoomStep:    0.1,
			AngleStep:   2,
		},
	}
}

// Load reads the layout at path on top of Default(), so a file may override only some fields.
// A missing file is not an error and yields Default().
func Load(path string) (Layout, error) {
	l := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return l, fmt.Errorf("read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Default(), fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Default(), fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Validate rejects layouts the simulation cannot run with.
func (l Layout) Validate() error {
	switch {
	case l.Rain.Drops < 0:
		return fmt.Errorf("rain.drops must be >= 0, got %d", l.Rain.Drops)
	case l.Clouds.Count < 2:
		return fmt.Errorf("clouds.count must be >= 2, got %d", l.Clouds.Count)
	case l.Clouds.PuffsPerCloud < 1:
		return fmt.Errorf("clouds.puffs_per_cloud must be >= 1, got %d", l.Clouds.PuffsPerCloud)
	case l.Ripples.Count < 0:
		return fmt.Errorf("ripples.count must be >= 0, got %d", l.Ripples.Count)
	case l.House.HalfExtent <= 0:
		return fmt.Errorf("house.half_extent must be > 0")
	case l.Pond.Radius <= 0:
		return fmt.Errorf("pond.radius must be > 0")
	case l.Sphere.Radius < 0 || l.Sphere.Step <= 0:
		return fmt.Errorf("sphere radius must be >= 0 and step > 0")
	}
	c := l.Camera
	switch {
	case c.MinDistance <= 0 || c.MinDistance > c.MaxDistance:
		return fmt.Errorf("camera distance range [%v, %v] is invalid", c.MinDistance, c.MaxDistance)
	case c.MinPitch <= -90 || c.MaxPitch >= 90 || c.MinPitch > c.MaxPitch:
		return fmt.Errorf("camera pitch range [%v, %v] must lie inside (-90, 90)", c.MinPitch, c.MaxPitch)
	case c.Distance < c.MinDistance || c.Distance > c.MaxDistance:
		return fmt.Errorf("camera.distance %v outside [%v, %v]", c.Distance, c.MinDistance, c.MaxDistance)
	case c.Pitch < c.MinPitch || c.Pitch > c.MaxPitch:
		return fmt.Errorf("camera.pitch %v outside [%v, %v]", c.Pitch, c.MinPitch, c.MaxPitch)
	}
	if !l.Obstacles().IsValidPosition(l.Sphere.Start[0], l.Sphere.Start[2]) {
		return fmt.Errorf("sphere.start (%v, %v) overlaps the house or the pond", l.Sphere.Start[0], l.Sphere.Start[2])
	}
	return nil
}

// Obstacles returns the collision world described by the layout, with the sphere at its start.
func (l Layout) Obstacles() *physics.World {
	h, p := l.House, l.Pond
	return physics.NewWorld(
		physics.Footprint{CenterX: h.Position[0], CenterZ: h.Position[2], HalfExtent: h.HalfExtent},
		physics.Disk{CenterX: p.Position[0], CenterZ: p.Position[2], Radius: p.Radius},
		physics.NewSphere(l.Sphere.Start, l.Sphere.Radius, l.Sphere.Step),
	)
}

// Save writes the layout as YAML to path, creating the parent directory if needed.
func Save(path string, l Layout) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
