package trek

import "github.com/go-gl/mathgl/mgl32"

// Rig is a bare-bones Actor: a named transform, plus a ClipPlayer standing in for the animations of a model.
type Rig struct {
	name     string
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
	player   *ClipPlayer
}

// NewRig creates a new Rig at the origin, facing +Z, able to play the given Clips.
func NewRig(name string, clips ...Clip) *Rig {
	return &Rig{
		name:     name,
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		player:   NewClipPlayer(clips...),
	}
}

// Name returns the Rig's name.
func (rig *Rig) Name() string { return rig.name }

func (rig *Rig) Position() mgl32.Vec3 { return rig.position }

func (rig *Rig) SetPosition(position mgl32.Vec3) { rig.position = position }

// Move moves the Rig by the given amount.
func (rig *Rig) Move(x, y, z float32) {
	rig.position = rig.position.Add(mgl32.Vec3{x, y, z})
}

func (rig *Rig) Rotation() mgl32.Quat { return rig.rotation }

// SetRotation sets the Rig's rotation; it's normalized on the way in.
func (rig *Rig) SetRotation(rotation mgl32.Quat) { rig.rotation = rotation.Normalize() }

func (rig *Rig) Scale() mgl32.Vec3 { return rig.scale }

func (rig *Rig) SetScale(x, y, z float32) { rig.scale = mgl32.Vec3{x, y, z} }

// Forward returns the direction the Rig faces; for an unrotated Rig, this is +Z.
func (rig *Rig) Forward() mgl32.Vec3 { return rig.rotation.Rotate(WorldForward).Normalize() }

// Up returns the Rig's up direction; for an unrotated Rig, this is +Y.
func (rig *Rig) Up() mgl32.Vec3 { return rig.rotation.Rotate(WorldUp).Normalize() }

// Right returns the Rig's right direction; for an unrotated Rig (facing +Z in a right-handed world), this is -X.
func (rig *Rig) Right() mgl32.Vec3 { return rig.rotation.Rotate(mgl32.Vec3{-1, 0, 0}).Normalize() }

// Transform returns the Rig's world transform, composed as translation * rotation * scale.
func (rig *Rig) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(rig.position.Elem()).
		Mul4(rig.rotation.Mat4()).
		Mul4(mgl32.Scale3D(rig.scale.Elem()))
}

func (rig *Rig) PlayClip(name string, loop bool) { rig.player.Play(name, loop) }

func (rig *Rig) StopClip(name string) { rig.player.Stop(name) }

// ClipPlayer returns the Rig's ClipPlayer.
func (rig *Rig) ClipPlayer() *ClipPlayer { return rig.player }

// Update advances the Rig's animations by dt seconds.
func (rig *Rig) Update(dt float32) { rig.player.Update(dt) }
