// Package input tracks held movement controls and maps raw key names to
// semantic actions consumed by the simulation.
package input

// Control identifies a continuous movement control.
type Control uint8

const (
	ControlForward Control = iota
	ControlBack
	ControlTurnLeft
	ControlTurnRight

	controlCount
)

// String returns the control's action name.
func (c Control) String() string {
	switch c {
	case ControlForward:
		return "forward"
	case ControlBack:
		return "back"
	case ControlTurnLeft:
		return "turn_left"
	case ControlTurnRight:
		return "turn_right"
	}
	return "unknown"
}

// State records which movement controls are currently held.
// The zero value has every control released.
type State struct {
	held [controlCount]bool
}

// SetPressed marks a control as held or released. Last write wins;
// unknown controls are ignored.
func (s *State) SetPressed(c Control, pressed bool) {
	if c >= controlCount {
		return
	}
	s.held[c] = pressed
}

// IsPressed reports whether the control is held. Unknown controls are never held.
func (s *State) IsPressed(c Control) bool {
	if c >= controlCount {
		return false
	}
	return s.held[c]
}

// Any reports whether at least one control is held.
func (s *State) Any() bool {
	for _, h := range s.held {
		if h {
			return true
		}
	}
	return false
}

// Reset releases every control.
func (s *State) Reset() {
	s.held = [controlCount]bool{}
}
