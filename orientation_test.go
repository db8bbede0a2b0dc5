package cardtilt

import (
	"math"
	"testing"
)

func TestOrientationRejectsNonFinite(t *testing.T) {
	o := newOrientation(DefaultMaxTilt)
	o.setYaw(1.5)

	o.setYaw(math.NaN())
	if o.Yaw() != 1.5 {
		t.Errorf("yaw = %f after NaN write, want 1.5", o.Yaw())
	}
	o.setYaw(math.Inf(1))
	if o.Yaw() != 1.5 {
		t.Errorf("yaw = %f after Inf write, want 1.5", o.Yaw())
	}

	o.setPitch(math.NaN())
	if o.Pitch() != 0 {
		t.Errorf("pitch = %f after NaN write, want 0", o.Pitch())
	}

	o.setScale(math.NaN())
	if o.Scale() != 1.0 {
		t.Errorf("scale = %f after NaN write, want 1.0", o.Scale())
	}
	o.setScale(-2)
	if o.Scale() != 1.0 {
		t.Errorf("scale = %f after negative write, want 1.0", o.Scale())
	}
}

func TestOrientationPitchClamped(t *testing.T) {
	o := newOrientation(DefaultMaxTilt)

	o.setPitch(3.0)
	if o.Pitch() != DefaultMaxTilt {
		t.Errorf("pitch = %f, want %f", o.Pitch(), DefaultMaxTilt)
	}
	o.setPitch(-3.0)
	if o.Pitch() != -DefaultMaxTilt {
		t.Errorf("pitch = %f, want %f", o.Pitch(), -DefaultMaxTilt)
	}
}

func TestOrientationYawUnbounded(t *testing.T) {
	o := newOrientation(DefaultMaxTilt)
	o.setYaw(4 * math.Pi)
	if o.Yaw() != 4*math.Pi {
		t.Errorf("yaw = %f, want %f (no wrapping)", o.Yaw(), 4*math.Pi)
	}
}

func TestRestYaw(t *testing.T) {
	if got := restYaw(false); got != 0 {
		t.Errorf("restYaw(front) = %f, want 0", got)
	}
	if got := restYaw(true); got != math.Pi {
		t.Errorf("restYaw(back) = %f, want π", got)
	}
}

func TestNearestRestYaw(t *testing.T) {
	// A small offset returns to the base winding.
	if got := nearestRestYaw(0.4, false); got != 0 {
		t.Errorf("nearestRestYaw(0.4, front) = %f, want 0", got)
	}
	// Just past half a turn snaps forward to the next winding.
	if got := nearestRestYaw(5.8, false); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("nearestRestYaw(5.8, front) = %f, want 2π", got)
	}
	// Back face rests at π plus whole turns.
	if got := nearestRestYaw(3.0, true); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("nearestRestYaw(3.0, back) = %f, want π", got)
	}
	if got := nearestRestYaw(-math.Pi-0.2, true); math.Abs(got+math.Pi) > 1e-12 {
		t.Errorf("nearestRestYaw(-π-0.2, back) = %f, want -π", got)
	}
}
