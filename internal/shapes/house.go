package shapes

import "rain-scene/internal/vecmath"

// House geometry, relative to the house center.
var (
	BodySize = vecmath.V3(2, 1.5, 2)

	ChimneyCenter = vecmath.V3(0.6, 1.2, -0.3)
	ChimneySize   = vecmath.V3(0.3, 0.6, 0.3)

	// Window centers on the front wall.
	Windows = [2]vecmath.Vec3{
		vecmath.V3(-0.6, 0, 1.01),
		vecmath.V3(0.6, 0, 1.01),
	}
	WindowHalf = float32(0.25)

	// DoorSize is the door panel: 0.5 wide, 0.75 tall, a thin slab on the front wall.
	DoorSize = vecmath.V3(2*doorHalfW, doorHeight, 0.02)

	doorHinge = vecmath.V3(0, -0.5, 1.01)
)

const (
	eaveY        = 0.75
	ridgeY       = 1.75
	doorHalfW    = 0.25
	doorHeight   = 0.75
	doorOpenTurn = -90
)

// Roof returns the two gable triangles and the two roof slopes, each slope as two triangles.
func Roof() [][3]vecmath.Vec3 {
	v := vecmath.V3
	tris := [][3]vecmath.Vec3{
		{v(-1, eaveY, 1), v(1, eaveY, 1), v(0, ridgeY, 1)},
		{v(-1, eaveY, -1), v(1, eaveY, -1), v(0, ridgeY, -1)},
	}
	for _, sx := range []float32{-1, 1} {
		a, b := v(sx, eaveY, 1), v(sx, eaveY, -1)
		c, d := v(0, ridgeY, -1), v(0, ridgeY, 1)
		tris = append(tris, [3]vecmath.Vec3{a, b, c}, [3]vecmath.Vec3{a, c, d})
	}
	return tris
}

// Door returns the center of the door panel and its yaw in degrees. An open door is swung
// -90° about its vertical center line.
func Door(open bool) (center vecmath.Vec3, yaw float32) {
	center = doorHinge.Add(vecmath.V3(0, doorHeight/2, 0))
	if open {
		yaw = doorOpenTurn
	}
	return center, yaw
}

// WindowCross returns the two mullion lines of a window centered at c, drawn just in front
// of the glass.
func WindowCross(c vecmath.Vec3) [2]Segment {
	z := c.Z + 0.01
	h := WindowHalf
	return [2]Segment{
		{vecmath.V3(c.X-h, c.Y, z), vecmath.V3(c.X+h, c.Y, z)},
		{vecmath.V3(c.X, c.Y-h, z), vecmath.V3(c.X, c.Y+h, z)},
	}
}

// Tree layout relative to the tree base on the ground: a tapered trunk and three stacked
// foliage spheres.
var (
	TreeBase        = vecmath.V3(2.5, 0, -0.5)
	TrunkHeight     = float32(1)
	TrunkBaseRadius = float32(0.15)
	TrunkTopRadius  = float32(0.1)
	Foliage         = [3]struct {
		Y, Radius float32
	}{{1.0, 0.5}, {1.3, 0.4}, {1.6, 0.3}}
)
