package cardtilt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleAnim drives the orientation toward a target pose over a fixed
// duration. One animation serves three callers — the tap flip, the idle
// auto-return, and the external re-pose — differing only in targets, easing,
// and duration. The tweens run in float32 (gween's working type); exact
// float64 targets are written on completion so settled poses are precise.
type settleAnim struct {
	yawTween   *gween.Tween
	pitchTween *gween.Tween
	scaleTween *gween.Tween // nil when scale is not animated

	targetYaw   float64
	targetPitch float64
	targetScale float64

	onDone func()
}

func newSettleAnim(state *Orientation, toYaw, toPitch float64, duration float32, fn ease.TweenFunc) *settleAnim {
	return &settleAnim{
		yawTween:    gween.New(float32(state.Yaw()), float32(toYaw), duration, fn),
		pitchTween:  gween.New(float32(state.Pitch()), float32(toPitch), duration, fn),
		targetYaw:   toYaw,
		targetPitch: toPitch,
	}
}

// withScale adds a scale track to the animation.
func (a *settleAnim) withScale(state *Orientation, toScale float64, duration float32, fn ease.TweenFunc) *settleAnim {
	a.scaleTween = gween.New(float32(state.Scale()), float32(toScale), duration, fn)
	a.targetScale = toScale
	return a
}

// advance steps the animation by dt seconds, writing interpolated values into
// the orientation. Returns false when the animation has finished, after
// snapping the state to the exact targets and firing onDone.
func (a *settleAnim) advance(state *Orientation, dt float32) bool {
	yv, yDone := a.yawTween.Update(dt)
	pv, pDone := a.pitchTween.Update(dt)
	state.setYaw(float64(yv))
	state.setPitch(float64(pv))

	sDone := true
	if a.scaleTween != nil {
		sv, done := a.scaleTween.Update(dt)
		state.setScale(float64(sv))
		sDone = done
	}

	if yDone && pDone && sDone {
		state.setYaw(a.targetYaw)
		state.setPitch(a.targetPitch)
		if a.scaleTween != nil {
			state.setScale(a.targetScale)
		}
		if a.onDone != nil {
			a.onDone()
		}
		return false
	}
	return true
}

// HandleTap toggles the card between its front and back faces. The flip
// always targets the canonical rest yaw of the new face (0 or π, never a
// further winding) and resets pitch, settling over FlipDuration with an
// overshoot easing so the motion reads as a physical snap. Any live gesture,
// inertia, or pending auto-return is cancelled first.
//
// Taps are dropped while no renderer is attached and in ModeDisabled.
func (c *Controller) HandleTap() {
	if c.renderer == nil || c.mode == ModeDisabled {
		return
	}

	c.cancelEphemeral()
	c.state.toggleBack()
	c.cue(CueFlip)

	c.settle = newSettleAnim(&c.state,
		restYaw(c.state.ShowingBack()), 0,
		float32(c.FlipDuration), ease.OutBack)
	c.settle.onDone = func() {
		c.cue(CueSettle)
	}
}

// scheduleAutoReturn arms the idle timer that springs the card back to its
// rest pose. Only the free-rotation mode auto-returns; in tap-only mode the
// card cannot leave its rest pose in the first place.
func (c *Controller) scheduleAutoReturn() {
	if c.mode != ModeFreeRotation || c.ReturnDelay < 0 {
		return
	}
	c.sched.cancel(c.autoReturn)
	c.autoReturn = c.sched.after(c.ReturnDelay, c.startAutoReturn)
}

// startAutoReturn animates yaw to the nearest winding of the current face's
// rest pose and pitch to zero. Animating to the nearest winding keeps the
// travel short after a momentum spin; the state is normalized to the
// canonical rest yaw once the animation completes, so repeated flips and
// returns never accumulate whole turns.
func (c *Controller) startAutoReturn() {
	c.autoReturn = 0
	target := nearestRestYaw(c.state.Yaw(), c.state.ShowingBack())

	c.settle = newSettleAnim(&c.state, target, 0,
		float32(c.FlipDuration), ease.OutBack)
	c.settle.onDone = func() {
		c.state.setYaw(restYaw(c.state.ShowingBack()))
		c.cue(CueSettle)
	}
}
