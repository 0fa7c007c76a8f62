package trek

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceID names a pickable surface.
type SurfaceID string

// NoSurface is the SurfaceID of a pick that struck nothing.
const NoSurface SurfaceID = ""

// RayHit represents the result of a raycast test.
type RayHit struct {
	Surface  SurfaceID  // The surface that was struck.
	Position mgl32.Vec3 // Position is the world position that the surface was struck.
	Normal   mgl32.Vec3 // Normal is the normal of the triangle the ray struck.
	from     mgl32.Vec3 // The starting position of the ray
}

// Distance returns the distance from the ray's starting point to the struck position.
func (r RayHit) Distance() float32 {
	return r.Position.Sub(r.from).Len()
}

// Slope returns the slope of the struck triangle, in radians. This ranges from 0 (flat, facing up) to pi (facing straight down).
func (r RayHit) Slope() float32 {
	return math32.Acos(mgl32.Clamp(WorldUp.Dot(r.Normal), -1, 1))
}

type triangle struct {
	v0, v1, v2 mgl32.Vec3
	normal     mgl32.Vec3
}

func newTriangle(v0, v1, v2 mgl32.Vec3) triangle {
	return triangle{
		v0:     v0,
		v1:     v1,
		v2:     v2,
		normal: v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
	}
}

// degenerate returns true if at least two of the triangle's vertices share a location, which means no plane can be built from it.
func (tri triangle) degenerate() bool {
	return tri.v0.ApproxEqual(tri.v1) || tri.v1.ApproxEqual(tri.v2) || tri.v2.ApproxEqual(tri.v0)
}

// rayTest tests the segment running from -> to against the triangle, returning the struck position.
// Unless doublesided is true, only the front face (the side the normal points out of) can be struck.
func (tri triangle) rayTest(from, to mgl32.Vec3, doublesided bool) (mgl32.Vec3, bool) {

	if tri.degenerate() {
		return mgl32.Vec3{}, false
	}

	fs := tri.normal.Dot(from.Sub(tri.v0))
	ts := tri.normal.Dot(to.Sub(tri.v0))

	// If the start and end points of the ray lie on the same side of the triangle,
	// then we know the triangle can't be struck and we can bail early
	if (fs > 0 && ts > 0) || (fs < 0 && ts < 0) || fs == ts {
		return mgl32.Vec3{}, false
	}

	if !doublesided && fs < 0 {
		return mgl32.Vec3{}, false
	}

	point := from.Add(to.Sub(from).Mul(fs / (fs - ts)))

	if !tri.contains(point) {
		return mgl32.Vec3{}, false
	}

	return point, true

}

// contains returns whether a point lying on the triangle's plane is inside of the triangle.
func (tri triangle) contains(point mgl32.Vec3) bool {
	const tolerance = -1e-5
	edges := [3][2]mgl32.Vec3{{tri.v0, tri.v1}, {tri.v1, tri.v2}, {tri.v2, tri.v0}}
	for _, e := range edges {
		if e[1].Sub(e[0]).Cross(point.Sub(e[0])).Dot(tri.normal) < tolerance {
			return false
		}
	}
	return true
}

type aabb struct {
	min, max mgl32.Vec3
}

func (box aabb) pointInside(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < box.min[i] || point[i] > box.max[i] {
			return false
		}
	}
	return true
}

// segmentHits returns whether the segment running from -> to passes through the box at all.
func (box aabb) segmentHits(from, to mgl32.Vec3) bool {

	if box.pointInside(from) || box.pointInside(to) {
		return true
	}

	dir := to.Sub(from)
	tMin, tMax := float32(0), float32(1)

	for i := 0; i < 3; i++ {

		if math32.Abs(dir[i]) < 1e-8 {
			if from[i] < box.min[i] || from[i] > box.max[i] {
				return false
			}
			continue
		}

		t1 := (box.min[i] - from[i]) / dir[i]
		t2 := (box.max[i] - from[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)

		if tMin > tMax {
			return false
		}

	}

	return true

}
