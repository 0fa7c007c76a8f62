package trek

import "github.com/go-gl/mathgl/mgl32"

// Actor is anything a Controller can steer: a transform that can be read and set, and a set of named
// animation clips that can be played or stopped.
type Actor interface {
	Position() mgl32.Vec3
	SetPosition(position mgl32.Vec3)

	Rotation() mgl32.Quat
	SetRotation(rotation mgl32.Quat)

	// Forward returns the direction the actor faces, in world space.
	Forward() mgl32.Vec3
	// Up returns the actor's up direction, in world space.
	Up() mgl32.Vec3

	PlayClip(name string, loop bool)
	StopClip(name string)
}

// GroundQuery answers the height of the ground at a horizontal position.
// The boolean is false if nothing was struck there.
type GroundQuery interface {
	GroundHeight(x, z float32) (float32, bool)
}

// GroundQueryFunc adapts a plain function to GroundQuery.
type GroundQueryFunc func(x, z float32) (float32, bool)

func (f GroundQueryFunc) GroundHeight(x, z float32) (float32, bool) {
	return f(x, z)
}
