package cardtilt

import "github.com/tanema/gween/ease"

// Vec2 is a 2D vector used for gesture translations and velocities.
// Units are view-local (pixels for the shipped PointerTracker).
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Pose is the externally observable orientation tuple the controller commits
// to its renderer on every change.
type Pose struct {
	Yaw, Pitch, Scale float64
	ShowingBack       bool
}

// Hint is an optional rendering interpolation hint attached to a pose commit.
// A zero Duration means "apply immediately". The hint never blocks the
// controller; it only tells the renderer how to smooth the visual transition.
type Hint struct {
	Duration float32
	Ease     ease.TweenFunc
}

// Renderer is the visual collaborator. Commit applies a pose to the displayed
// card; Rebuild reconstructs the card faces after an identity, style, or
// field-visibility change. Implementations must tolerate being called every
// frame.
type Renderer interface {
	Commit(pose Pose, hint Hint)
	Rebuild(data CardData, style Style, fields FieldSet)
}

// GesturePhase tags a GestureEvent with its position in the drag lifecycle.
type GesturePhase uint8

const (
	GestureBegan     GesturePhase = iota // drag recognized, session starts
	GestureChanged                       // pointer moved while dragging
	GestureEnded                         // pointer released after dragging
	GestureCancelled                     // drag aborted (tap won, focus lost)
)

// GestureEvent is one sample of a continuous drag gesture. Translation is
// cumulative from the gesture origin; Velocity is the instantaneous pointer
// velocity in units per second. Both are zero for GestureBegan.
type GestureEvent struct {
	Phase       GesturePhase
	Translation Vec2
	Velocity    Vec2
}

// HapticCue identifies a fire-and-forget tactile event. Delivery is advisory:
// a lost or ignored cue never affects orientation state.
type HapticCue uint8

const (
	CueGestureStart  HapticCue = iota // finger down, session started
	CueFrictionBreak                  // drag crossed the break-away threshold
	CueRotateTick                     // throttled tick per rotation increment
	CueFlip                           // tap accepted, flip started
	CueSettle                         // settle/auto-return animation finished
)

// Haptics is the tactile-feedback sink. A nil sink is valid and means no
// haptics.
type Haptics interface {
	Cue(cue HapticCue)
}

// InteractionMode selects which inputs the controller consumes. It is a
// closed set dispatched by a switch at event entry, not an interface
// hierarchy: the simpler modes are a restricted configuration of the same
// controller, not separate implementations.
type InteractionMode uint8

const (
	ModeFreeRotation InteractionMode = iota // drag, inertia, tap, auto-return
	ModeTapOnly                             // tap flips; drags are ignored
	ModeDisabled                            // all input dropped
)

// Tuning defaults. All are overridable per Controller.
const (
	DefaultMaxTilt           = 0.15    // radians, pitch clamp
	DefaultRotationSpeed     = 0.012   // radians of yaw per translation unit
	DefaultVerticalDamping   = 0.4     // pitch sensitivity relative to yaw
	DefaultFrictionThreshold = 8.0     // drag units to break away
	DefaultVelocityScale     = 0.00002 // pointer velocity to radians/tick
	DefaultDecayRate         = 0.95    // inertia decay per tick
	DefaultMinVelocity       = 0.001   // radians/tick; below this inertia stops
	DefaultFlipDuration      = 0.5     // seconds, flip settle
	DefaultReturnDelay       = 2.0     // seconds idle before auto-return
	DefaultReposeDuration    = 0.15    // seconds, external re-pose animation
	DefaultPoseEpsilon       = 0.001   // external values closer than this are noise
)

const (
	frictionFloor    = 0.4  // rotation multiplier before any break-away
	dragHintDuration = 0.08 // seconds, renderer smoothing during a live drag
	rotationCueStep  = 0.35 // radians of yaw between CueRotateTick cues
	rotationCueGap   = 0.08 // seconds minimum between CueRotateTick cues
)
