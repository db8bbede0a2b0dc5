package cardtilt

import "math"

// Config is everything the host supplies for one card: identity, appearance,
// field visibility, interaction mode, and an optional externally bound pose
// (a carousel binds Yaw to its scroll offset, for example). Hosts may push a
// Config at any time; Apply arbitrates it against whatever the card is doing.
type Config struct {
	Data   CardData
	Style  Style
	Fields FieldSet
	Mode   InteractionMode

	// External pose binding. Yaw, Pitch, and Scale are only consulted when
	// HasPose is true; a zero-value Config leaves the pose alone.
	HasPose bool
	Yaw     float64
	Pitch   float64
	Scale   float64
}

// RebuildDecision is the outcome of one Apply call.
type RebuildDecision uint8

const (
	DecisionNone    RebuildDecision = iota // nothing changed meaningfully
	DecisionRepose                         // orientation/scale animated, faces untouched
	DecisionRebuild                        // faces reconstructed, sessions discarded
)

// Apply merges a host configuration push into the card.
//
// An identity, style, or field-visibility change wins over everything: all
// ephemeral sessions are discarded, the renderer rebuilds the faces, and the
// orientation is re-seeded from the incoming external pose — not from
// whatever half-finished gesture state was just thrown away. A tap or drag
// in flight when the rebuild lands is simply gone; the scene it targeted no
// longer exists.
//
// Otherwise, an external pose differing from the current one by more than
// PoseEpsilon is animated in over ReposeDuration — but only while no gesture
// or inertia session is live. Local interaction always outranks a stale
// external push; ignoring the push (rather than queueing it) is what keeps
// the card from fighting the user's finger.
//
// A mode change re-wires input handling without moving the card: switching
// from free-drag to tap-only must not snap the card back to rest. It does
// cancel ephemeral sessions, since the session's input source is gone.
func (c *Controller) Apply(cfg Config) RebuildDecision {
	rebuild := !c.hasConfig ||
		cfg.Data != c.config.Data ||
		cfg.Style != c.config.Style ||
		cfg.Fields != c.config.Fields

	modeChanged := c.hasConfig && cfg.Mode != c.config.Mode

	c.config = cfg
	c.hasConfig = true

	if rebuild {
		c.mode = cfg.Mode
		c.cancelEphemeral()
		c.state = newOrientation(c.MaxTilt)
		if cfg.HasPose {
			c.state.setYaw(cfg.Yaw)
			c.state.setPitch(cfg.Pitch)
			c.state.setScale(cfg.Scale)
		}
		if c.renderer != nil {
			c.renderer.Rebuild(cfg.Data, cfg.Style, cfg.Fields)
			c.commit(Hint{})
		}
		return DecisionRebuild
	}

	if modeChanged {
		c.mode = cfg.Mode
		c.cancelEphemeral()
	}

	if cfg.HasPose && c.gesture == nil && c.inertia == nil && c.poseDiffers(cfg) {
		c.startRepose(cfg)
		return DecisionRepose
	}
	return DecisionNone
}

// poseDiffers reports whether the external pose is meaningfully different
// from the current orientation. Non-finite components are treated as not
// differing, which silently rejects them.
func (c *Controller) poseDiffers(cfg Config) bool {
	if isFinite(cfg.Yaw) && math.Abs(cfg.Yaw-c.state.Yaw()) > c.PoseEpsilon {
		return true
	}
	if isFinite(cfg.Pitch) && math.Abs(cfg.Pitch-c.state.Pitch()) > c.PoseEpsilon {
		return true
	}
	if isFinite(cfg.Scale) && cfg.Scale > 0 && math.Abs(cfg.Scale-c.state.Scale()) > c.PoseEpsilon {
		return true
	}
	return false
}
