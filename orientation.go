package cardtilt

import "math"

// Orientation is the authoritative mutable record of one card's rotation
// state. Exactly one instance exists per Controller; it is mutated only by
// the controller's own subsystems (gesture, inertia, settle, arbiter), never
// by rendering code.
//
// Yaw is unbounded: momentum may spin the card past a full turn, so it is
// never wrapped to ±π. Pitch is always clamped to ±maxTilt. Non-finite
// writes are rejected silently, keeping the prior value — a bad external
// push must never corrupt the card's pose.
type Orientation struct {
	yaw, pitch  float64
	scale       float64
	showingBack bool
	maxTilt     float64
}

func newOrientation(maxTilt float64) Orientation {
	return Orientation{scale: 1.0, maxTilt: maxTilt}
}

// Yaw returns the horizontal rotation in radians, unbounded.
func (o *Orientation) Yaw() float64 { return o.yaw }

// Pitch returns the vertical tilt in radians, within ±maxTilt.
func (o *Orientation) Pitch() float64 { return o.pitch }

// Scale returns the card's scale factor, always positive.
func (o *Orientation) Scale() float64 { return o.scale }

// ShowingBack reports whether the card's back face is the logical front.
func (o *Orientation) ShowingBack() bool { return o.showingBack }

// Pose returns the full orientation tuple as committed to renderers.
func (o *Orientation) Pose() Pose {
	return Pose{Yaw: o.yaw, Pitch: o.pitch, Scale: o.scale, ShowingBack: o.showingBack}
}

func (o *Orientation) setYaw(v float64) {
	if !isFinite(v) {
		return
	}
	o.yaw = v
}

func (o *Orientation) setPitch(v float64) {
	if !isFinite(v) {
		return
	}
	o.pitch = clamp(v, -o.maxTilt, o.maxTilt)
}

func (o *Orientation) addPitch(dv float64) {
	o.setPitch(o.pitch + dv)
}

func (o *Orientation) setScale(v float64) {
	if !isFinite(v) || v <= 0 {
		return
	}
	o.scale = v
}

func (o *Orientation) toggleBack() {
	o.showingBack = !o.showingBack
}

// restYaw returns the canonical rest yaw for a face: 0 for the front, π for
// the back.
func restYaw(showingBack bool) float64 {
	if showingBack {
		return math.Pi
	}
	return 0
}

// nearestRestYaw returns the winding of the face's rest yaw closest to the
// current yaw, so an auto-return after a momentum spin travels the short way
// round instead of unwinding whole turns.
func nearestRestYaw(yaw float64, showingBack bool) float64 {
	base := restYaw(showingBack)
	turns := math.Round((yaw - base) / (2 * math.Pi))
	return base + turns*2*math.Pi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
