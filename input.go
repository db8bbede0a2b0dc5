package cardtilt

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone   = 4.0 // pixels of travel before a drag starts
	defaultMaxTapDuration = 0.3 // seconds; longer presses are not taps
	velocityWindow        = 0.1 // seconds of samples for the velocity estimate
	maxVelocitySamples    = 16
)

// velocitySample is one pointer position with the tracker time it was seen.
type velocitySample struct {
	t, x, y float64
}

// syntheticPointerEvent is a single injected pointer event, consumed one per
// Update in place of real input. Injection makes drag and tap sequences
// deterministic in tests and demos.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// PointerTracker converts Ebitengine mouse/touch input into the controller's
// gesture stream. It tracks a single pointer (the mouse, or the first touch):
// multi-finger gestures are out of scope for a card.
//
// Movement within DeadZone of the press point is not a drag; releasing there
// within MaxTapDuration is a tap. This ordering is what guarantees a tap is
// only consumed when no meaningful drag occurred — once the dead zone is
// crossed the press can never become a tap again.
type PointerTracker struct {
	// Region is the hit area in screen pixels. A zero-size region accepts
	// presses anywhere.
	Region Rect
	// DeadZone is the travel in pixels before a press becomes a drag.
	DeadZone float64
	// MaxTapDuration is the longest press, in seconds, still counted as a tap.
	MaxTapDuration float64

	controller *Controller

	now       float64
	down      bool
	dragging  bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	pressTime float64

	samples []velocitySample

	injectQueue  []syntheticPointerEvent
	prevTouchIDs []ebiten.TouchID
	touchID      ebiten.TouchID
	touchActive  bool
}

// NewPointerTracker creates a tracker feeding the given controller,
// accepting presses inside region.
func NewPointerTracker(c *Controller, region Rect) *PointerTracker {
	return &PointerTracker{
		Region:         region,
		DeadZone:       defaultDragDeadZone,
		MaxTapDuration: defaultMaxTapDuration,
		controller:     c,
	}
}

// Update samples input for one frame. dt is the frame duration in seconds.
// Injected events take priority over real input, one per frame.
func (t *PointerTracker) Update(dt float64) {
	t.now += dt

	if len(t.injectQueue) > 0 {
		ev := t.injectQueue[0]
		copy(t.injectQueue, t.injectQueue[1:])
		t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]
		t.process(ev.x, ev.y, ev.pressed)
		return
	}

	x, y, pressed := t.readPointer()
	t.process(x, y, pressed)
}

// readPointer returns the active pointer position and pressed state,
// preferring an in-progress touch over the mouse.
func (t *PointerTracker) readPointer() (float64, float64, bool) {
	touchIDs := ebiten.AppendTouchIDs(t.prevTouchIDs[:0])
	t.prevTouchIDs = touchIDs

	if t.touchActive {
		for _, id := range touchIDs {
			if id == t.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		// Tracked touch lifted.
		t.touchActive = false
		return t.lastX, t.lastY, false
	}

	if len(touchIDs) > 0 {
		t.touchActive = true
		t.touchID = touchIDs[0]
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// process runs the tracker state machine for one pointer sample.
func (t *PointerTracker) process(x, y float64, pressed bool) {
	switch {
	case pressed && !t.down:
		if t.Region.Width > 0 && t.Region.Height > 0 && !t.Region.Contains(x, y) {
			return
		}
		t.down = true
		t.dragging = false
		t.startX, t.startY = x, y
		t.lastX, t.lastY = x, y
		t.pressTime = t.now
		t.samples = append(t.samples[:0], velocitySample{t: t.now, x: x, y: y})

	case pressed && t.down:
		t.pushSample(x, y)
		if !t.dragging {
			dx := x - t.startX
			dy := y - t.startY
			if math.Hypot(dx, dy) > t.DeadZone {
				t.dragging = true
				t.controller.HandleGesture(GestureEvent{Phase: GestureBegan})
			}
		}
		if t.dragging && (x != t.lastX || y != t.lastY) {
			t.controller.HandleGesture(GestureEvent{
				Phase:       GestureChanged,
				Translation: Vec2{X: x - t.startX, Y: y - t.startY},
				Velocity:    t.estimateVelocity(),
			})
		}
		t.lastX, t.lastY = x, y

	case !pressed && t.down:
		if t.dragging {
			// Deliver the release position as a final change so the card
			// ends at the full drag translation, then hand off velocity.
			if x != t.lastX || y != t.lastY {
				t.pushSample(x, y)
				t.controller.HandleGesture(GestureEvent{
					Phase:       GestureChanged,
					Translation: Vec2{X: x - t.startX, Y: y - t.startY},
					Velocity:    t.estimateVelocity(),
				})
			}
			t.controller.HandleGesture(GestureEvent{
				Phase:       GestureEnded,
				Translation: Vec2{X: x - t.startX, Y: y - t.startY},
				Velocity:    t.estimateVelocity(),
			})
		} else if t.now-t.pressTime <= t.MaxTapDuration {
			t.controller.HandleTap()
		}
		t.down = false
		t.dragging = false
	}
}

// Cancel aborts any in-progress press or drag, for example on focus loss.
// A cancelled drag carries no velocity, so the card stays where it is.
func (t *PointerTracker) Cancel() {
	if t.down && t.dragging {
		t.controller.HandleGesture(GestureEvent{
			Phase:       GestureCancelled,
			Translation: Vec2{X: t.lastX - t.startX, Y: t.lastY - t.startY},
		})
	}
	t.down = false
	t.dragging = false
}

func (t *PointerTracker) pushSample(x, y float64) {
	if len(t.samples) >= maxVelocitySamples {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:len(t.samples)-1]
	}
	t.samples = append(t.samples, velocitySample{t: t.now, x: x, y: y})
}

// estimateVelocity returns the pointer velocity in units per second from the
// samples inside the velocity window. A single sample means zero velocity:
// a pointer held still then released should not fling the card.
func (t *PointerTracker) estimateVelocity() Vec2 {
	newest := t.samples[len(t.samples)-1]
	oldest := newest
	for i := len(t.samples) - 2; i >= 0; i-- {
		if newest.t-t.samples[i].t > velocityWindow {
			break
		}
		oldest = t.samples[i]
	}
	span := newest.t - oldest.t
	if span <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (newest.x - oldest.x) / span,
		Y: (newest.y - oldest.y) / span,
	}
}

// --- Synthetic input injection ---

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next Update call.
func (t *PointerTracker) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (t *PointerTracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (t *PointerTracker) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (t *PointerTracker) InjectTap(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames. Minimum is 2.
func (t *PointerTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	t.InjectRelease(toX, toY)
}
