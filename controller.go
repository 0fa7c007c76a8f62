package trek

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AnimState is the animation state a Controller puts its Actor in.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun

	animNone AnimState = -1
)

// animStates lists every AnimState, in the order their clips are stopped on a transition.
var animStates = []AnimState{AnimIdle, AnimRun}

func (state AnimState) String() string {
	switch state {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	}
	return "none"
}

// ControllerSettings controls how a Controller moves its Actor.
type ControllerSettings struct {
	ForwardSpeed         float32 // How fast the actor runs, in units per second.
	TurnRate             float32 // How fast the turn keys yaw the target orientation, in radians per second.
	OrientationLerpSpeed float32 // How quickly the actor's rotation catches up to the target; multiplied by delta time to get the slerp percentage.

	// StopFraction, multiplied by ForwardSpeed, gives the distance under which the actor counts as having arrived.
	StopFraction float32

	// Lookahead is how far ahead of the actor, in seconds of running, the target point is placed while a forward key is held.
	Lookahead float32

	FallbackHeight float32   // The height used for the target point when the ground query misses.
	GroundSurface  SurfaceID // Pointer picks are only followed if they strike this surface.

	Bindings KeyBindings
	Clips    map[AnimState]string // The clip played by the actor for each AnimState.
}

// DefaultControllerSettings returns the default settings for a Controller.
func DefaultControllerSettings() *ControllerSettings {
	return &ControllerSettings{
		ForwardSpeed:         4,
		TurnRate:             5,
		OrientationLerpSpeed: 16,
		StopFraction:         0.01,
		Lookahead:            0.075,
		GroundSurface:        "ground",
		Bindings:             DefaultKeyBindings(),
		Clips: map[AnimState]string{
			AnimIdle: "Idle",
			AnimRun:  "Run",
		},
	}
}

// StopThreshold returns the distance under which an actor counts as having reached its target point.
func (settings *ControllerSettings) StopThreshold() float32 {
	return settings.ForwardSpeed * settings.StopFraction
}

// Controller steers an Actor towards a target point and orientation. The target is set by picking a point on the ground,
// or by holding the movement keys, and the actor is moved once per frame by calling Tick().
// A Controller is meant to be driven from a single goroutine: OnKeyEvent, OnPointerPick, and Tick should all be
// called from the game's update loop.
type Controller struct {
	actor    Actor
	ground   GroundQuery
	settings ControllerSettings

	held heldKeys
	axes Axes

	targetPoint    mgl32.Vec3
	targetRotation mgl32.Quat

	state AnimState

	// OnStateChange is called whenever the Controller switches the actor's AnimState.
	OnStateChange func(from, to AnimState)
}

// NewController creates a new Controller for the given Actor. ground is used to keep the target point on the ground
// while moving with the keys; it can be nil, in which case the settings' FallbackHeight is always used.
// Passing nil for settings uses DefaultControllerSettings().
// The Controller starts targeting the actor's current transform, in the idle state.
func NewController(actor Actor, ground GroundQuery, settings *ControllerSettings) *Controller {

	if settings == nil {
		settings = DefaultControllerSettings()
	}

	c := &Controller{
		actor:          actor,
		ground:         ground,
		settings:       *settings,
		held:           heldKeys{},
		targetPoint:    actor.Position(),
		targetRotation: actor.Rotation(),
		state:          animNone,
	}

	c.setState(AnimIdle)

	return c

}

// OnKeyEvent registers a key being pressed or released, and recomputes the input axes from the keys held.
func (c *Controller) OnKeyEvent(key Key, down bool) {
	c.held.set(key, down)
	c.axes = c.held.axes(c.settings.Bindings)
}

// OnPointerPick handles a pick that struck surface at point. Picks that missed (surface is NoSurface), or struck something
// other than the ground surface, are ignored. Otherwise, the point becomes the new target, and the target orientation
// turns to face it horizontally.
func (c *Controller) OnPointerPick(point mgl32.Vec3, surface SurfaceID) {

	if surface == NoSurface || surface != c.settings.GroundSurface {
		return
	}

	c.targetPoint = point

	if rot, ok := YawTowards(point.Sub(c.actor.Position())); ok {
		c.targetRotation = rot
	}

}

// Tick moves the actor along for a frame lasting dt seconds. A non-positive or non-finite dt skips the frame.
func (c *Controller) Tick(dt float32) {

	if !(dt > 0) || math32.IsInf(dt, 0) {
		return
	}

	position := c.actor.Position()

	// Moving forward drags the target point along in front of the actor; it's placed relative to where the actor is
	// facing right now, not to the target orientation.
	if math32.Abs(c.axes.Forward) > epsilon {
		next := position.Add(c.actor.Forward().Mul(c.axes.Forward * c.settings.ForwardSpeed * c.settings.Lookahead))
		next[1] = c.groundHeight(next.X(), next.Z())
		c.targetPoint = next
	}

	if math32.Abs(c.axes.Turn) > epsilon {
		c.targetRotation = c.targetRotation.Mul(Yaw(c.axes.Turn * c.settings.TurnRate * dt)).Normalize()
	}

	c.actor.SetRotation(Slerp(c.actor.Rotation(), c.targetRotation, math32.Min(1, c.settings.OrientationLerpSpeed*dt)))

	diff := c.targetPoint.Sub(position)
	dist := diff.Len()

	if dist < c.settings.StopThreshold() || dist == 0 {
		c.setState(AnimIdle)
		return
	}

	c.setState(AnimRun)

	step := math32.Min(c.settings.ForwardSpeed*dt, dist)
	c.actor.SetPosition(position.Add(diff.Mul(step / dist)))

}

func (c *Controller) groundHeight(x, z float32) float32 {
	if c.ground != nil {
		if y, ok := c.ground.GroundHeight(x, z); ok {
			return y
		}
	}
	return c.settings.FallbackHeight
}

// setState switches the actor to the given AnimState, stopping the clips of every other state and looping the new one.
// Nothing happens if the actor is already in that state.
func (c *Controller) setState(state AnimState) {

	if state == c.state {
		return
	}

	c.playState(state)

	prev := c.state
	c.state = state

	if c.OnStateChange != nil {
		c.OnStateChange(prev, state)
	}

}

func (c *Controller) playState(state AnimState) {

	for _, s := range animStates {
		if s != state {
			if clip := c.settings.Clips[s]; clip != "" {
				c.actor.StopClip(clip)
			}
		}
	}

	if clip := c.settings.Clips[state]; clip != "" {
		c.actor.PlayClip(clip, true)
	}

}

// Axes returns the current input axes.
func (c *Controller) Axes() Axes {
	return c.axes
}

// State returns the AnimState the actor is currently in.
func (c *Controller) State() AnimState {
	return c.state
}

// TargetPoint returns the point the actor is heading towards.
func (c *Controller) TargetPoint() mgl32.Vec3 {
	return c.targetPoint
}

// SetTargetPoint sets the point the actor heads towards, without changing the target orientation.
func (c *Controller) SetTargetPoint(point mgl32.Vec3) {
	c.targetPoint = point
}

// TargetRotation returns the orientation the actor is turning towards.
func (c *Controller) TargetRotation() mgl32.Quat {
	return c.targetRotation
}

// StopThreshold returns the distance under which the actor counts as having arrived at its target point.
func (c *Controller) StopThreshold() float32 {
	return c.settings.StopThreshold()
}

// Settings returns a copy of the Controller's settings.
func (c *Controller) Settings() ControllerSettings {
	return c.settings
}

// SetSettings replaces the Controller's settings. If the clips change, the old ones are stopped and the clip for the
// current state is started again. The input axes are recomputed with the new bindings.
func (c *Controller) SetSettings(settings ControllerSettings) {

	for _, s := range animStates {
		if clip := c.settings.Clips[s]; clip != "" && clip != settings.Clips[s] {
			c.actor.StopClip(clip)
		}
	}

	c.settings = settings
	c.axes = c.held.axes(c.settings.Bindings)

	c.playState(c.state)

}

// Reset releases all held keys and makes the actor's current transform the target again.
func (c *Controller) Reset() {
	clear(c.held)
	c.axes = Axes{}
	c.targetPoint = c.actor.Position()
	c.targetRotation = c.actor.Rotation()
}
