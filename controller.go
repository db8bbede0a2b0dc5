package cardtilt

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Controller owns one card's orientation and every source that can move it.
// All methods must be called from the same goroutine — the model is a
// single-threaded game loop: gesture callbacks, the per-frame tick,
// and host configuration pushes are serialized by the caller, and starting
// any session first invalidates the previous one, so no two control sources
// ever write the orientation in the same tick.
//
// The controller is inert until a Renderer is attached: gesture and tap
// events arriving before attachment are dropped. That is an ordering race,
// not an error.
type Controller struct {
	// Tuning. Overridable between NewController and first use; the defaults
	// are the tuned feel.
	MaxTilt           float64
	RotationSpeed     float64
	VerticalDamping   float64
	FrictionThreshold float64
	VelocityScale     float64
	DecayRate         float64
	MinVelocity       float64
	FlipDuration      float64
	ReturnDelay       float64
	ReposeDuration    float64
	PoseEpsilon       float64

	state Orientation
	mode  InteractionMode

	renderer Renderer
	haptics  Haptics

	// Ephemeral sessions. At most one of gesture/inertia is non-nil; settle
	// may coexist with neither (it is cancelled by both).
	gesture    *gestureSession
	inertia    *inertiaSession
	settle     *settleAnim
	sched      taskScheduler
	autoReturn taskHandle

	config    Config
	hasConfig bool

	handlers poseHandlerRegistry

	// Rotation haptic throttle.
	lastCueYaw  float64
	lastCueTime float64
}

// NewController creates a controller at the front-face rest pose with
// default tuning.
func NewController() *Controller {
	c := &Controller{
		MaxTilt:           DefaultMaxTilt,
		RotationSpeed:     DefaultRotationSpeed,
		VerticalDamping:   DefaultVerticalDamping,
		FrictionThreshold: DefaultFrictionThreshold,
		VelocityScale:     DefaultVelocityScale,
		DecayRate:         DefaultDecayRate,
		MinVelocity:       DefaultMinVelocity,
		FlipDuration:      DefaultFlipDuration,
		ReturnDelay:       DefaultReturnDelay,
		ReposeDuration:    DefaultReposeDuration,
		PoseEpsilon:       DefaultPoseEpsilon,
	}
	c.state = newOrientation(c.MaxTilt)
	c.lastCueTime = -rotationCueGap
	return c
}

// AttachRenderer wires the visual collaborator and commits the current pose
// to it. Passing nil detaches and makes the controller inert again.
func (c *Controller) AttachRenderer(r Renderer) {
	c.renderer = r
	if r != nil && c.hasConfig {
		r.Rebuild(c.config.Data, c.config.Style, c.config.Fields)
		c.commit(Hint{})
	}
}

// AttachHaptics wires the tactile sink. Nil is valid and disables cues.
func (c *Controller) AttachHaptics(h Haptics) {
	c.haptics = h
}

// Pose returns the current orientation tuple.
func (c *Controller) Pose() Pose { return c.state.Pose() }

// Mode returns the active interaction mode.
func (c *Controller) Mode() InteractionMode { return c.mode }

// Dragging reports whether a drag session is live.
func (c *Controller) Dragging() bool { return c.gesture != nil }

// Gliding reports whether a post-release inertia session is live.
func (c *Controller) Gliding() bool { return c.inertia != nil }

// Settling reports whether a flip, auto-return, or re-pose animation is
// running.
func (c *Controller) Settling() bool { return c.settle != nil }

// Update advances the controller by one frame. dt is the frame duration in
// seconds; it drives the scheduler and settle animations, while inertia
// steps once per call regardless of dt (tick semantics). Call every frame
// from the game loop.
func (c *Controller) Update(dt float64) {
	c.sched.advance(dt)

	if c.inertia != nil {
		if !c.inertia.step(&c.state, c.DecayRate, c.MinVelocity) {
			c.inertia = nil
			c.scheduleAutoReturn()
		}
		c.commit(Hint{})
	}

	if c.settle != nil {
		if !c.settle.advance(&c.state, float32(dt)) {
			c.settle = nil
		}
		c.commit(Hint{})
	}
}

// cancelEphemeral atomically invalidates whatever session is running —
// gesture, inertia, settle, and the pending auto-return timer — leaving no
// residual velocity or queued callbacks behind.
func (c *Controller) cancelEphemeral() {
	c.gesture = nil
	c.inertia = nil
	c.settle = nil
	c.sched.cancel(c.autoReturn)
	c.autoReturn = 0
}

// startRepose animates the orientation toward an externally supplied pose.
// Non-finite or non-positive components keep their current values.
func (c *Controller) startRepose(cfg Config) {
	toYaw := c.state.Yaw()
	if isFinite(cfg.Yaw) {
		toYaw = cfg.Yaw
	}
	toPitch := c.state.Pitch()
	if isFinite(cfg.Pitch) {
		toPitch = clamp(cfg.Pitch, -c.MaxTilt, c.MaxTilt)
	}
	toScale := c.state.Scale()
	if isFinite(cfg.Scale) && cfg.Scale > 0 {
		toScale = cfg.Scale
	}

	dur := float32(c.ReposeDuration)
	c.settle = newSettleAnim(&c.state, toYaw, toPitch, dur, ease.OutQuad).
		withScale(&c.state, toScale, dur, ease.OutQuad)
}

// commit pushes the current pose to the renderer and notifies orientation
// listeners, firing the throttled rotation haptic along the way.
func (c *Controller) commit(hint Hint) {
	if c.renderer != nil {
		c.renderer.Commit(c.state.Pose(), hint)
	}
	c.handlers.fire(c.state.Pose())

	if math.Abs(c.state.Yaw()-c.lastCueYaw) >= rotationCueStep &&
		c.sched.now-c.lastCueTime >= rotationCueGap {
		c.lastCueYaw = c.state.Yaw()
		c.lastCueTime = c.sched.now
		c.cue(CueRotateTick)
	}
}

// cue delivers a haptic event. Fire-and-forget: a nil sink drops it.
func (c *Controller) cue(cue HapticCue) {
	if c.haptics != nil {
		c.haptics.Cue(cue)
	}
}

// --- Orientation change listeners ---

// PoseHandler receives every committed orientation change.
type PoseHandler func(Pose)

type poseHandlerEntry struct {
	id uint32
	fn PoseHandler
}

type poseHandlerRegistry struct {
	entries []poseHandlerEntry
	nextID  uint32
}

func (r *poseHandlerRegistry) fire(pose Pose) {
	for _, h := range r.entries {
		h.fn(pose)
	}
}

// CallbackHandle allows removing a registered pose callback.
type CallbackHandle struct {
	id  uint32
	reg *poseHandlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.entries
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = poseHandlerEntry{}
			h.reg.entries = s[:len(s)-1]
			return
		}
	}
}

// OnPoseChanged registers a callback fired on every committed orientation
// change. This is the controller's half of the two-way channel with the
// host: the host pushes desired poses through Apply, the controller reports
// committed ones here — never a shared mutable cell.
func (c *Controller) OnPoseChanged(fn PoseHandler) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.entries = append(c.handlers.entries, poseHandlerEntry{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers}
}
