package cardtilt

import "math"

// inertiaSession carries the post-release angular velocity. It is stepped
// once per frame from Controller.Update and self-destructs when both
// components decay below the minimum — a finite starting velocity always
// terminates in a bounded number of ticks.
//
// Velocities are in radians per tick, not per second: the original feel was
// tuned against a display-frame callback, and keeping tick semantics makes
// the decay behavior independent of dt jitter.
type inertiaSession struct {
	velocityYaw   float64
	velocityPitch float64
}

// step applies one tick of glide to the orientation and decays the velocity.
// Pitch is re-clamped every tick: decaying velocity can still push it against
// the tilt limit before damping catches up. Returns false when the session
// has terminated.
func (s *inertiaSession) step(state *Orientation, decayRate, minVelocity float64) bool {
	state.setYaw(state.Yaw() + s.velocityYaw)
	state.addPitch(s.velocityPitch)

	s.velocityYaw *= decayRate
	s.velocityPitch *= decayRate

	return math.Abs(s.velocityYaw) >= minVelocity ||
		math.Abs(s.velocityPitch) >= minVelocity
}
