// Package trek is a small point-and-click locomotion kit for 3D scenes.
//
// The heart of it is the Controller, which turns held keys and ground picks into a target point and orientation,
// and then steers an Actor toward them once per frame, switching between idle and run animations as it goes.
// The rest of the package holds thin collaborators that let a Controller run in an actual game: a heightmap Terrain
// to answer ground queries and picks, a Rig to stand in for an animated model, an OrbitCamera that follows the actor,
// and Scatter to place props across the ground.
//
// trek uses mathgl's mgl32 types throughout. The world is Y-up, and an actor with an identity rotation faces +Z.
package trek

import "github.com/go-gl/mathgl/mgl32"

// WorldUp is the world's up axis (+Y).
var WorldUp = mgl32.Vec3{0, 1, 0}

// WorldForward is the direction an actor with an identity rotation faces (+Z).
var WorldForward = mgl32.Vec3{0, 0, 1}

// epsilon is the magnitude below which axis values and direction vectors are treated as zero.
const epsilon = 0.001
