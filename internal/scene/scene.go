package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rain-scene/internal/camera"
	"rain-scene/internal/clouds"
	"rain-scene/internal/primitives"
	"rain-scene/internal/rain"
	"rain-scene/internal/ripples"
	"rain-scene/internal/shapes"
	"rain-scene/internal/vecmath"
	"rain-scene/internal/world"
)

// ClearColor is the pale sky behind everything.
var ClearColor = rgb(0.6, 0.8, 1.0)

var (
	skyColor     = rgb(0.4, 0.6, 0.9)
	groundColor  = rgb(0.3, 0.6, 0.3)
	grassColor   = rgb(0.2, 0.5, 0.2)
	wallColor    = rgb(0.8, 0.8, 0.8)
	roofColor    = rgb(0.6, 0.3, 0.1)
	doorColor    = rgb(0.4, 0.2, 0.0)
	glassColor   = rgb(0.9, 0.9, 1.0)
	chimneyColor = rgb(0.5, 0.3, 0.3)
	trunkColor   = rgb(0.5, 0.3, 0.1)
	leafColor    = rgb(0.1, 0.5, 0.1)
	waterColor   = rgba(0.2, 0.4, 0.8, 0.8)
	shoreColor   = rgb(0.6, 0.5, 0.3)
	rainColor    = rgb(0.7, 0.7, 1.0)
	sphereColor  = rgb(1.0, 0.5, 0.0)

	// lightDir points from the scene toward the light.
	lightDir = vecmath.V3(0.4, 1, 0.3)
)

const (
	shoreScale    = 1.1
	shoreLift     = 0.05
	rippleLift    = 0.02
	rippleOpacity = 0.3
	trunkSides    = 12
)

// Scene draws a world.World with a fixed perspective projection. Static geometry (sky, grass,
// rings) is built once in New; everything that moves is read from the world every frame.
type Scene struct {
	Projection camera.Perspective

	prims   *primitives.Registry
	skyApex vecmath.Vec3
	skyRim  []vecmath.Vec3
	grass   []shapes.Segment
	roof    [][3]vecmath.Vec3
	unit    []vecmath.Vec3
	ring    []vecmath.Vec3
	shore   []vecmath.Vec3
	visible []ripples.Ripple
}

// New prepares the renderer for w's layout. GPU resources are created lazily on first Draw.
func New(proj camera.Perspective, w *world.World) *Scene {
	s := &Scene{
		Projection: proj,
		prims:      primitives.NewRegistry(),
		grass:      shapes.GrassMarks(w.House(), w.Pond()),
		roof:       shapes.Roof(),
		unit:       shapes.UnitRing(shapes.RingSegments),
	}
	s.skyApex, s.skyRim = shapes.SkyCone()
	return s
}

// Draw renders one frame of w. Call after ClearBackground and before 2D overlays. The
// world must already be advanced for this frame; Draw never mutates it.
func (s *Scene) Draw(w *world.World) {
	eye := w.Camera.Eye()
	rl.BeginMode3D(rl.Camera3D{
		Position:   vec(eye),
		Target:     vec(w.Camera.Target),
		Up:         vec(w.Camera.WorldUp),
		Fovy:       s.Projection.FovY,
		Projection: rl.CameraPerspective,
	})
	// Replace raylib's camera matrices with the orbit camera's own.
	rl.SetMatrixProjection(matrix(s.Projection.Matrix()))
	rl.SetMatrixModelview(matrix(w.Camera.View()))
	// The orbit view basis is left-handed, which flips triangle winding.
	rl.DisableBackfaceCulling()
	s.prims.SetView(eye, lightDir)

	s.drawSky()
	s.drawGround()
	drawClouds(w.Clouds)
	s.drawHouse(w.House(), w.DoorOpen)
	s.drawTree()
	s.drawPond(w.Pond(), w.Layout.Pond.Radius, w.Ripples)
	drawRain(w.Rain)
	c := w.Physics.Sphere.Center()
	d := 2 * w.Physics.Sphere.Radius
	s.prims.Draw(primitives.Sphere, vecmath.V3(c[0], c[1], c[2]), vecmath.V3(d, d, d), 0, sphereColor)

	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// Unload releases GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.prims.Unload()
}

func (s *Scene) drawSky() {
	for i := 0; i+1 < len(s.skyRim); i++ {
		rl.DrawTriangle3D(vec(s.skyApex), vec(s.skyRim[i]), vec(s.skyRim[i+1]), skyColor)
	}
}

// drawGround draws the ground plane and the grass marks on it.
func (s *Scene) drawGround() {
	size := float32(2 * shapes.GroundHalfSize)
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(size, size), groundColor)
	for _, g := range s.grass {
		rl.DrawLine3D(vec(g.A), vec(g.B), grassColor)
	}
}

func drawClouds(sys *clouds.System) {
	for i := range sys.Clouds {
		c := &sys.Clouds[i]
		for _, p := range c.Puffs {
			center := rl.NewVector3(c.X+p.X, c.Y+p.Y, c.Z+p.Z)
			rl.DrawSphereEx(center, p.Size, clouds.PuffSegments, clouds.PuffSegments, rl.ColorAlpha(rl.White, p.Alpha))
		}
	}
}

func (s *Scene) drawHouse(h vecmath.Vec3, doorOpen bool) {
	s.prims.Draw(primitives.Cube, h, shapes.BodySize, 0, wallColor)

	for _, t := range s.roof {
		rl.DrawTriangle3D(vec(h.Add(t[0])), vec(h.Add(t[1])), vec(h.Add(t[2])), roofColor)
	}

	doorAt, doorYaw := shapes.Door(doorOpen)
	s.prims.Draw(primitives.Cube, h.Add(doorAt), shapes.DoorSize, doorYaw, doorColor)

	for _, wc := range shapes.Windows {
		c := h.Add(wc)
		r := shapes.WindowHalf
		drawQuad(c, [4]vecmath.Vec3{
			vecmath.V3(-r, -r, 0), vecmath.V3(r, -r, 0), vecmath.V3(r, r, 0), vecmath.V3(-r, r, 0),
		}, glassColor)
		for _, seg := range shapes.WindowCross(c) {
			rl.DrawLine3D(vec(seg.A), vec(seg.B), rl.Black)
		}
	}

	s.prims.Draw(primitives.Cube, h.Add(shapes.ChimneyCenter), shapes.ChimneySize, 0, chimneyColor)
}

func (s *Scene) drawTree() {
	base := shapes.TreeBase
	top := base.Add(vecmath.V3(0, shapes.TrunkHeight, 0))
	rl.DrawCylinderEx(vec(base), vec(top), shapes.TrunkBaseRadius, shapes.TrunkTopRadius, trunkSides, trunkColor)
	for _, f := range shapes.Foliage {
		d := 2 * f.Radius
		s.prims.Draw(primitives.Sphere, base.Add(vecmath.V3(0, f.Y, 0)), vecmath.V3(d, d, d), 0, leafColor)
	}
}

// drawPond draws the water disk, the raised shoreline strip and the visible ripple rings.
// Ripples are only read here; they advance with the rest of the world.
func (s *Scene) drawPond(p vecmath.Vec3, radius float32, rip *ripples.System) {
	s.ring = shapes.Ring(s.ring, s.unit, p.X, p.Y, p.Z, radius)
	s.shore = shapes.Ring(s.shore, s.unit, p.X, p.Y+shoreLift, p.Z, radius*shoreScale)
	n := len(s.ring)
	center := vec(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		rl.DrawTriangle3D(center, vec(s.ring[i]), vec(s.ring[j]), waterColor)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		inner0 := s.ring[i].Add(vecmath.V3(0, 0.01, 0))
		inner1 := s.ring[j].Add(vecmath.V3(0, 0.01, 0))
		rl.DrawTriangle3D(vec(s.shore[i]), vec(inner0), vec(s.shore[j]), shoreColor)
		rl.DrawTriangle3D(vec(s.shore[j]), vec(inner0), vec(inner1), shoreColor)
	}

	s.visible = rip.Visible(s.visible[:0])
	for _, r := range s.visible {
		s.ring = shapes.Ring(s.ring, s.unit, p.X+r.X, p.Y+rippleLift, p.Z+r.Z, r.Radius)
		col := rl.ColorAlpha(rl.White, r.Alpha*rippleOpacity)
		for i := range s.ring {
			rl.DrawLine3D(vec(s.ring[i]), vec(s.ring[(i+1)%len(s.ring)]), col)
		}
	}
}

func drawRain(sys *rain.System) {
	for _, d := range sys.Drops {
		rl.DrawLine3D(
			rl.NewVector3(d.X, d.Y, d.Z),
			rl.NewVector3(d.X+rain.StreakLength, d.Y-rain.StreakLength*0.5, d.Z),
			rainColor,
		)
	}
}

// drawQuad draws the quad q, offset by origin, as two triangles.
func drawQuad(origin vecmath.Vec3, q [4]vecmath.Vec3, c rl.Color) {
	a, b, cc, d := vec(origin.Add(q[0])), vec(origin.Add(q[1])), vec(origin.Add(q[2])), vec(origin.Add(q[3]))
	rl.DrawTriangle3D(a, b, cc, c)
	rl.DrawTriangle3D(a, cc, d, c)
}

func vec(v vecmath.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// matrix converts a column-major [16]float32 into a raylib matrix.
func matrix(m [16]float32) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func rgb(r, g, b float32) rl.Color {
	return rgba(r, g, b, 1)
}

func rgba(r, g, b, a float32) rl.Color {
	return rl.ColorFromNormalized(rl.NewVector4(r, g, b, a))
}
