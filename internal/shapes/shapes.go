// Package shapes builds the fixed geometry of the scene (rings, the sky cone, grass marks,
// house details) as plain points, so the renderer only has to submit them.
package shapes

import (
	"github.com/chewxy/math32"

	"rain-scene/internal/vecmath"
)

const (
	// RingSegments is the segment count of the pond, shore and ripple circles.
	RingSegments = 36
	// SkySegments is half the segment count of the sky cone base.
	SkySegments = 20
	SkyRadius   = 50.0

	GroundHalfSize = 50.0
	grassExtent    = 10
	grassHalf      = 0.1
	grassY         = 0.01
	houseClear     = 1.5
	pondClear      = 2.2
)

// Segment is a line from A to B.
type Segment struct {
	A, B vecmath.Vec3
}

// UnitRing returns n points on the unit circle in the XZ plane, starting at +X and turning
// toward +Z.
func UnitRing(n int) []vecmath.Vec3 {
	if n < 3 {
		n = 3
	}
	pts := make([]vecmath.Vec3, n)
	for i := range pts {
		a := float32(i) * 2 * math32.Pi / float32(n)
		pts[i] = vecmath.V3(math32.Cos(a), 0, math32.Sin(a))
	}
	return pts
}

// Ring scales unit onto a circle of radius r around (cx, cz) at height y, writing into dst.
func Ring(dst, unit []vecmath.Vec3, cx, y, cz, r float32) []vecmath.Vec3 {
	dst = dst[:0]
	for _, u := range unit {
		dst = append(dst, vecmath.V3(cx+u.X*r, y, cz+u.Z*r))
	}
	return dst
}

// SkyCone returns the apex and base rim of the sky cone around the origin. The rim closes
// on itself: the last point equals the first.
func SkyCone() (apex vecmath.Vec3, rim []vecmath.Vec3) {
	apex = vecmath.V3(0, SkyRadius, 0)
	n := SkySegments * 2
	rim = make([]vecmath.Vec3, n+1)
	for i := 0; i <= n; i++ {
		a := float32(i) * math32.Pi / SkySegments
		rim[i] = vecmath.V3(SkyRadius*math32.Cos(a), 0, SkyRadius*math32.Sin(a))
	}
	rim[n] = rim[0]
	return apex, rim
}

// GrassMarks returns the crossed grass strokes on the integer grid [-10, 10]², skipping
// points inside the house clearance square and within 2.2 of the pond center.
func GrassMarks(house, pond vecmath.Vec3) []Segment {
	var out []Segment
	for ix := -grassExtent; ix <= grassExtent; ix++ {
		for iz := -grassExtent; iz <= grassExtent; iz++ {
			x, z := float32(ix), float32(iz)
			if x > house.X-houseClear && x < house.X+houseClear &&
				z > house.Z-houseClear && z < house.Z+houseClear {
				continue
			}
			dx, dz := x-pond.X, z-pond.Z
			if math32.Sqrt(dx*dx+dz*dz) < pondClear {
				continue
			}
			out = append(out,
				Segment{vecmath.V3(x-grassHalf, grassY, z-grassHalf), vecmath.V3(x+grassHalf, grassY, z+grassHalf)},
				Segment{vecmath.V3(x-grassHalf, grassY, z+grassHalf), vecmath.V3(x+grassHalf, grassY, z-grassHalf)},
			)
		}
	}
	return out
}
