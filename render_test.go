package cardtilt

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestProjectPointIdentityAtRest(t *testing.T) {
	sx, sy := projectPoint(100, 50, 0, 0, 1.0, 0)
	if sx != 100 || sy != 50 {
		t.Errorf("rest projection = (%f, %f), want (100, 50)", sx, sy)
	}
}

func TestProjectPointScale(t *testing.T) {
	sx, sy := projectPoint(100, 50, 0, 0, 2.0, 0)
	if sx != 200 || sy != 100 {
		t.Errorf("scaled projection = (%f, %f), want (200, 100)", sx, sy)
	}
}

func TestProjectPointYawForeshortens(t *testing.T) {
	// At yaw π/2 the card is edge-on: x collapses to ~0.
	sx, _ := projectPoint(100, 0, math.Pi/2, 0, 1.0, 1200)
	if math.Abs(sx) > 1e-9 {
		t.Errorf("edge-on x = %f, want 0", sx)
	}

	// Partway round, the horizontal extent shrinks but stays positive.
	sx, _ = projectPoint(100, 0, math.Pi/4, 0, 1.0, 0)
	want := 100 * math.Cos(math.Pi/4)
	if math.Abs(sx-want) > 1e-9 {
		t.Errorf("yawed x = %f, want %f", sx, want)
	}
}

func TestProjectPointPerspective(t *testing.T) {
	// With positive yaw, the +x edge swings toward the viewer (negative z)
	// and grows; the -x edge recedes and shrinks.
	near, _ := projectPoint(100, 0, 0.5, 0, 1.0, 1200)
	far, _ := projectPoint(-100, 0, 0.5, 0, 1.0, 1200)
	if math.Abs(near) <= math.Abs(far) {
		t.Errorf("perspective inverted: |near| %f <= |far| %f", near, far)
	}
}

func TestBackFaceVisible(t *testing.T) {
	if backFaceVisible(0, 0) {
		t.Error("front-facing card reports back visible")
	}
	if !backFaceVisible(math.Pi, 0) {
		t.Error("turned card reports front visible")
	}
	if backFaceVisible(2*math.Pi, 0) {
		t.Error("full turn reports back visible")
	}
	if !backFaceVisible(-math.Pi, 0.1) {
		t.Error("negative half turn reports front visible")
	}
}

func TestRendererIndicesCoverGrid(t *testing.T) {
	r := NewCardRenderer(300, 190)

	wantTris := defaultGridCols * defaultGridRows * 2
	if got := len(r.indices) / 3; got != wantTris {
		t.Errorf("triangles = %d, want %d", got, wantTris)
	}

	maxIndex := uint16((defaultGridCols+1)*(defaultGridRows+1) - 1)
	for _, idx := range r.indices {
		if idx > maxIndex {
			t.Fatalf("index %d exceeds vertex count %d", idx, maxIndex+1)
		}
	}
}

func TestRendererCommitSnapsWithoutHint(t *testing.T) {
	r := NewCardRenderer(300, 190)

	r.Commit(Pose{Yaw: 1.2, Pitch: 0.1, Scale: 1.5, ShowingBack: true}, Hint{})
	got := r.Shown()
	if got.Yaw != 1.2 || got.Pitch != 0.1 || got.Scale != 1.5 || !got.ShowingBack {
		t.Errorf("shown = %+v, want committed pose", got)
	}
}

func TestRendererHintSmoothsPose(t *testing.T) {
	r := NewCardRenderer(300, 190)

	r.Commit(Pose{Yaw: 1.0, Scale: 1.0}, Hint{Duration: 0.1, Ease: ease.Linear})

	shown := r.Shown()
	if shown.Yaw != 0 {
		t.Fatalf("hint commit snapped immediately: yaw %f", shown.Yaw)
	}

	r.Update(0.05)
	mid := r.Shown().Yaw
	if mid <= 0 || mid >= 1.0 {
		t.Errorf("midway yaw = %f, want inside (0, 1)", mid)
	}

	r.Update(0.05)
	r.Update(0.01)
	if got := r.Shown().Yaw; got != 1.0 {
		t.Errorf("final yaw = %f, want exact target", got)
	}
}

func TestRendererFreshCommitSupersedesHint(t *testing.T) {
	r := NewCardRenderer(300, 190)

	r.Commit(Pose{Yaw: 1.0, Scale: 1.0}, Hint{Duration: 0.1, Ease: ease.Linear})
	r.Update(0.05)
	r.Commit(Pose{Yaw: 2.0, Scale: 1.0}, Hint{})

	if got := r.Shown().Yaw; got != 2.0 {
		t.Errorf("yaw = %f, want 2.0 after snap commit", got)
	}
	// The dead tween must not keep advancing the pose.
	r.Update(0.05)
	if got := r.Shown().Yaw; got != 2.0 {
		t.Errorf("yaw = %f after update, want 2.0", got)
	}
}
