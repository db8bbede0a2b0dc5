package cardtilt

import (
	"math"

	"github.com/tanema/gween/ease"
)

// gestureSession is the ephemeral state of one live drag. It exists only
// between GestureBegan and GestureEnded/GestureCancelled; release hands the
// pointer velocity to an inertia session and destroys this one.
type gestureSession struct {
	originYaw   float64
	originPitch float64
	// hasBrokenFriction latches once cumulative drag distance crosses the
	// friction threshold. It never resets within a session.
	hasBrokenFriction bool
}

// frictionMultiplier shapes the card's break-away resistance. Below the
// threshold the rotation multiplier eases from the floor toward 1.0 with an
// ease-out-cubic curve of distance/threshold; at or past the threshold it is
// exactly 1.0. The card resists a grazing touch but follows a committed drag
// at full sensitivity.
func frictionMultiplier(distance, threshold float64, broken bool) float64 {
	if broken || distance >= threshold {
		return 1.0
	}
	if threshold <= 0 {
		return 1.0
	}
	f := float64(ease.OutCubic(float32(distance/threshold), 0, 1, 1))
	return frictionFloor + (1.0-frictionFloor)*f
}

// HandleGesture feeds one drag sample into the controller. Events are
// dropped while no renderer is attached, while the mode excludes dragging,
// or when a Changed/Ended arrives without a session (an ordering race, not
// an error).
func (c *Controller) HandleGesture(ev GestureEvent) {
	if c.renderer == nil {
		return
	}
	switch c.mode {
	case ModeTapOnly, ModeDisabled:
		return
	}

	switch ev.Phase {
	case GestureBegan:
		c.beginGesture()
	case GestureChanged:
		c.changeGesture(ev.Translation)
	case GestureEnded, GestureCancelled:
		c.endGesture(ev.Velocity)
	}
}

// beginGesture snapshots the orientation and takes over from any running
// inertia, settle, or auto-return — the finger always wins.
func (c *Controller) beginGesture() {
	c.cancelEphemeral()
	c.gesture = &gestureSession{
		originYaw:   c.state.Yaw(),
		originPitch: c.state.Pitch(),
	}
	c.cue(CueGestureStart)
}

func (c *Controller) changeGesture(translation Vec2) {
	g := c.gesture
	if g == nil {
		return
	}
	if !isFinite(translation.X) || !isFinite(translation.Y) {
		return
	}

	d := math.Hypot(translation.X, translation.Y)
	if !g.hasBrokenFriction && d >= c.FrictionThreshold {
		g.hasBrokenFriction = true
		c.cue(CueFrictionBreak)
	}
	mult := frictionMultiplier(d, c.FrictionThreshold, g.hasBrokenFriction)

	c.state.setYaw(g.originYaw + translation.X*c.RotationSpeed*mult)
	c.state.setPitch(g.originPitch - translation.Y*c.RotationSpeed*c.VerticalDamping*mult)

	// Short smoothing hint so the renderer glides between pointer samples.
	c.commit(Hint{Duration: dragHintDuration, Ease: ease.OutQuad})
}

// endGesture destroys the session and converts the release velocity into an
// inertia session. A release too slow to glide goes straight to the idle
// auto-return path.
func (c *Controller) endGesture(velocity Vec2) {
	if c.gesture == nil {
		return
	}
	c.gesture = nil

	vYaw := 0.0
	vPitch := 0.0
	if isFinite(velocity.X) && isFinite(velocity.Y) {
		vYaw = velocity.X * c.VelocityScale
		vPitch = -velocity.Y * c.VelocityScale * c.VerticalDamping
	}

	if math.Abs(vYaw) >= c.MinVelocity || math.Abs(vPitch) >= c.MinVelocity {
		c.inertia = &inertiaSession{
			velocityYaw:   vYaw,
			velocityPitch: vPitch,
		}
		return
	}
	c.scheduleAutoReturn()
}
