package cardtilt

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay draws a live readout of a controller's orientation and
// session state. Intended for development builds; it has no effect on the
// controller.
type DebugOverlay struct {
	controller *Controller
}

// NewDebugOverlay creates an overlay for the given controller.
func NewDebugOverlay(c *Controller) *DebugOverlay {
	return &DebugOverlay{controller: c}
}

// Draw prints the readout at (x, y) on the target image.
func (d *DebugOverlay) Draw(screen *ebiten.Image, x, y int) {
	c := d.controller
	pose := c.Pose()

	session := "idle"
	switch {
	case c.Dragging():
		session = "drag"
	case c.Gliding():
		session = "inertia"
	case c.Settling():
		session = "settle"
	}

	mode := "free"
	switch c.Mode() {
	case ModeTapOnly:
		mode = "tap-only"
	case ModeDisabled:
		mode = "disabled"
	}

	face := "front"
	if pose.ShowingBack {
		face = "back"
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"yaw: %+.3f  pitch: %+.3f  scale: %.2f\nface: %s  session: %s  mode: %s",
		pose.Yaw, pose.Pitch, pose.Scale, face, session, mode), x, y)
}
