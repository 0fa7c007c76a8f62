package trek

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera is a camera that orbits a target point from a given distance, like a turntable. Alpha is the horizontal
// angle around the target (measured from +X towards +Z), and Beta is the angle down from straight overhead.
type OrbitCamera struct {
	Alpha  float32
	Beta   float32
	Radius float32

	MinRadius, MaxRadius float32
	MinBeta, MaxBeta     float32

	Target       mgl32.Vec3 // The point the camera looks at.
	TargetHeight float32    // How far above a followed point the camera's target sits.

	FieldOfView float32 // Vertical field of view, in radians.
	Near, Far   float32

	width, height int
}

// NewOrbitCamera creates a new OrbitCamera rendering to a view of the given size, looking down at the origin from
// 25 units away.
func NewOrbitCamera(width, height int) *OrbitCamera {
	return &OrbitCamera{
		Alpha:        math32.Pi * 0.25,
		Beta:         math32.Pi * 0.3,
		Radius:       25,
		MinRadius:    2,
		MaxRadius:    150,
		MinBeta:      0.05,
		MaxBeta:      math32.Pi/2 - 0.05,
		TargetHeight: 2,
		Target:       mgl32.Vec3{0, 2, 0},
		FieldOfView:  0.8,
		Near:         0.01,
		Far:          1000,
		width:        width,
		height:       height,
	}
}

// Resize sets the size of the view the camera renders to.
func (camera *OrbitCamera) Resize(width, height int) {
	camera.width = width
	camera.height = height
}

// Size returns the size of the view the camera renders to.
func (camera *OrbitCamera) Size() (width, height int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *OrbitCamera) AspectRatio() float32 {
	if camera.height == 0 {
		return 1
	}
	return float32(camera.width) / float32(camera.height)
}

// Position returns the camera's world position.
func (camera *OrbitCamera) Position() mgl32.Vec3 {
	sinBeta := math32.Sin(camera.Beta)
	return camera.Target.Add(mgl32.Vec3{
		camera.Radius * math32.Cos(camera.Alpha) * sinBeta,
		camera.Radius * math32.Cos(camera.Beta),
		camera.Radius * math32.Sin(camera.Alpha) * sinBeta,
	})
}

// Follow moves the camera's target to sit TargetHeight units above the given point.
func (camera *OrbitCamera) Follow(point mgl32.Vec3) {
	camera.Target = point.Add(mgl32.Vec3{0, camera.TargetHeight, 0})
}

// Orbit turns the camera around its target. Beta is kept between MinBeta and MaxBeta.
func (camera *OrbitCamera) Orbit(alpha, beta float32) {
	camera.Alpha += alpha
	camera.Beta = mgl32.Clamp(camera.Beta+beta, camera.MinBeta, camera.MaxBeta)
}

// Zoom moves the camera towards its target by delta units (or away, for negative values), keeping it between MinRadius and MaxRadius.
func (camera *OrbitCamera) Zoom(delta float32) {
	camera.Radius = mgl32.Clamp(camera.Radius-delta, camera.MinRadius, camera.MaxRadius)
}

// ViewMatrix returns the camera's view matrix.
func (camera *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(camera.Position(), camera.Target, WorldUp)
}

// Projection returns the camera's perspective projection matrix.
func (camera *OrbitCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(camera.FieldOfView, camera.AspectRatio(), camera.Near, camera.Far)
}

// WorldToScreen returns where a world position lands on the view, in pixels from the top-left.
// The boolean is false if the point is behind the camera or outside of its depth range.
func (camera *OrbitCamera) WorldToScreen(point mgl32.Vec3) (float32, float32, bool) {

	clip := camera.Projection().Mul4(camera.ViewMatrix()).Mul4x1(point.Vec4(1))

	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())

	x := (ndc.X() + 1) / 2 * float32(camera.width)
	y := (1 - ndc.Y()) / 2 * float32(camera.height)

	return x, y, ndc.Z() >= -1 && ndc.Z() <= 1

}

// ScreenRay returns the segment running from the near plane to the far plane through the given pixel of the view
// (from the top-left). Casting it against the scene picks whatever is under that pixel.
func (camera *OrbitCamera) ScreenRay(x, y float32) (from, to mgl32.Vec3) {

	ndcX := 2*x/float32(camera.width) - 1
	ndcY := 1 - 2*y/float32(camera.height)

	inverted := camera.Projection().Mul4(camera.ViewMatrix()).Inv()

	unproject := func(depth float32) mgl32.Vec3 {
		v := inverted.Mul4x1(mgl32.Vec4{ndcX, ndcY, depth, 1})
		return v.Vec3().Mul(1 / v.W())
	}

	return unproject(-1), unproject(1)

}
