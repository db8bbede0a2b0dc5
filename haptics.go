package cardtilt

// CueFunc adapts a plain function to the Haptics interface.
type CueFunc func(HapticCue)

// Cue implements Haptics.
func (f CueFunc) Cue(cue HapticCue) { f(cue) }

// String returns a short name for the cue, for logging and debug overlays.
func (c HapticCue) String() string {
	switch c {
	case CueGestureStart:
		return "gesture-start"
	case CueFrictionBreak:
		return "friction-break"
	case CueRotateTick:
		return "rotate-tick"
	case CueFlip:
		return "flip"
	case CueSettle:
		return "settle"
	}
	return "unknown"
}
