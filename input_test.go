package cardtilt

import (
	"math"
	"testing"
)

const frame = 1.0 / 60.0

// pump consumes every queued injected event, one per frame.
func pump(t *PointerTracker) {
	for len(t.injectQueue) > 0 {
		t.Update(frame)
	}
}

func TestInjectedDragRotatesCard(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectDrag(100, 100, 300, 100, 12)
	pump(tracker)

	// Translation 200 at full sensitivity: 2.4 rad, then release velocity
	// starts a glide.
	if got := c.Pose().Yaw; got < 2.4-1e-9 {
		t.Errorf("yaw = %f, want >= 2.4", got)
	}
	if !c.Gliding() {
		t.Error("fast injected drag should hand off to inertia")
	}
}

func TestDragStartsOnlyBeyondDeadZone(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectPress(0, 0)
	tracker.InjectMove(3, 0)
	pump(tracker)
	if c.Dragging() {
		t.Fatal("drag started inside the dead zone")
	}

	tracker.InjectMove(10, 0)
	pump(tracker)
	if !c.Dragging() {
		t.Fatal("drag did not start past the dead zone")
	}
	if got := c.Pose().Yaw; math.Abs(got-10*DefaultRotationSpeed) > 1e-9 {
		t.Errorf("yaw = %f, want %f", got, 10*DefaultRotationSpeed)
	}
}

func TestInjectedTapFlips(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectTap(100, 100)
	pump(tracker)

	if !c.Pose().ShowingBack {
		t.Error("tap did not flip the card")
	}
}

func TestSubDeadZoneWiggleStillTaps(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectPress(100, 100)
	tracker.InjectMove(102, 101)
	tracker.InjectRelease(102, 101)
	pump(tracker)

	if !c.Pose().ShowingBack {
		t.Error("small wiggle should still count as a tap")
	}
	if c.Dragging() || c.Gliding() {
		t.Error("wiggle must not leave a session behind")
	}
}

func TestRealDragSuppressesTap(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectDrag(100, 100, 200, 100, 8)
	pump(tracker)

	if c.Pose().ShowingBack {
		t.Error("a real drag must not be consumed as a tap")
	}
}

func TestLongPressIsNotATap(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectPress(100, 100)
	// Hold for half a second without moving.
	for i := 0; i < 30; i++ {
		tracker.InjectMove(100, 100)
	}
	tracker.InjectRelease(100, 100)
	pump(tracker)

	if c.Pose().ShowingBack {
		t.Error("long press flipped the card")
	}
}

func TestPressOutsideRegionIgnored(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{X: 200, Y: 200, Width: 100, Height: 100})

	tracker.InjectPress(50, 50)
	tracker.InjectMove(90, 50)
	tracker.InjectRelease(90, 50)
	pump(tracker)

	if c.Dragging() || c.Gliding() || c.Pose().Yaw != 0 {
		t.Error("press outside the hit region moved the card")
	}
	if c.Pose().ShowingBack {
		t.Error("release outside the hit region tapped the card")
	}
}

func TestPressInsideRegionWorks(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{X: 200, Y: 200, Width: 100, Height: 100})

	tracker.InjectTap(250, 250)
	pump(tracker)
	if !c.Pose().ShowingBack {
		t.Error("tap inside the hit region was dropped")
	}
}

func TestCancelAbortsDragWithoutVelocity(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	tracker.InjectPress(0, 0)
	tracker.InjectMove(50, 0)
	pump(tracker)
	if !c.Dragging() {
		t.Fatal("setup: expected live drag")
	}

	tracker.Cancel()
	if c.Dragging() {
		t.Error("cancel left the gesture session alive")
	}
	if c.Gliding() {
		t.Error("cancelled drag must carry no velocity")
	}

	yaw := c.Pose().Yaw
	c.Update(frame)
	if c.Pose().Yaw != yaw {
		t.Error("card kept moving after cancel")
	}
}

func TestVelocityEstimateFromSteadyDrag(t *testing.T) {
	c, _ := newTestController()
	tracker := NewPointerTracker(c, Rect{})

	// 10 px per frame at 60 fps = 600 px/s.
	tracker.InjectPress(0, 0)
	for x := 10.0; x <= 120; x += 10 {
		tracker.InjectMove(x, 0)
	}
	pump(tracker)

	v := tracker.estimateVelocity()
	if math.Abs(v.X-600) > 60 {
		t.Errorf("velocity = %f px/s, want ~600", v.X)
	}
	if v.Y != 0 {
		t.Errorf("vertical velocity = %f, want 0", v.Y)
	}
}
