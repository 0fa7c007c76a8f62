package trek

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Slerp spherically interpolates from one rotation to another along the shortest arc. percent is clamped to [0, 1];
// a percent of 0 returns from and a percent of 1 returns to, unchanged.
func Slerp(from, to mgl32.Quat, percent float32) mgl32.Quat {

	if percent <= 0 {
		return from
	} else if percent >= 1 {
		return to
	}

	from = from.Normalize()
	to = to.Normalize()

	// q and -q are the same rotation; flip one so we take the short way around
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}

	if from.Dot(to) > 0.9995 {
		return mgl32.QuatNlerp(from, to, percent)
	}

	return mgl32.QuatSlerp(from, to, percent).Normalize()

}

// Yaw returns a rotation of angle radians around WorldUp.
func Yaw(angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, WorldUp)
}

// YawTowards returns the rotation that turns WorldForward to face the horizontal part of dir.
// The boolean is false, and the identity rotation returned, if dir has no horizontal length to speak of.
func YawTowards(dir mgl32.Vec3) (mgl32.Quat, bool) {
	dir[1] = 0
	if dir.Len() < epsilon {
		return mgl32.QuatIdent(), false
	}
	dir = dir.Normalize()
	return Yaw(math32.Atan2(dir.X(), dir.Z())), true
}
