package input

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when an action name has no registered action.
var ErrUnknownAction = errors.New("unknown action")

// Action is a semantic input produced by the key mapping layer.
type Action uint8

const (
	ActionNone Action = iota

	// Movement (press and release)
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight

	// Toggles (press only)
	ActionToggleLeftDoor
	ActionToggleRightDoor
	ActionToggleGarage
	ActionCycleCamera
	ActionToggleHelp
	ActionQuit

	// Fixed-step camera adjustments (press only)
	ActionAzimuthDecrease
	ActionAzimuthIncrease
	ActionElevationIncrease
	ActionElevationDecrease

	// Presentation and session (press only)
	ActionTogglePose
	ActionTogglePerf
	ActionReset

	actionCount
)

// actionNames holds canonical names, indexed by Action.
// Used by the keymap loader and script parser to resolve config strings.
var actionNames = [actionCount]string{
	ActionNone:              "none",
	ActionForward:           "forward",
	ActionBack:              "back",
	ActionTurnLeft:          "turn_left",
	ActionTurnRight:         "turn_right",
	ActionToggleLeftDoor:    "toggle_left_door",
	ActionToggleRightDoor:   "toggle_right_door",
	ActionToggleGarage:      "toggle_garage",
	ActionCycleCamera:       "cycle_camera",
	ActionToggleHelp:        "toggle_help",
	ActionQuit:              "quit",
	ActionAzimuthDecrease:   "azimuth_decrease",
	ActionAzimuthIncrease:   "azimuth_increase",
	ActionElevationIncrease: "elevation_increase",
	ActionElevationDecrease: "elevation_decrease",
	ActionTogglePose:        "toggle_pose",
	ActionTogglePerf:        "toggle_perf",
	ActionReset:             "reset",
}

var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, actionCount)
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// String returns the canonical snake_case name of the action.
func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction resolves a canonical action name.
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionNone + 1; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Control maps a movement action to the control it holds.
func (a Action) Control() (Control, bool) {
	switch a {
	case ActionForward:
		return ControlForward, true
	case ActionBack:
		return ControlBack, true
	case ActionTurnLeft:
		return ControlTurnLeft, true
	case ActionTurnRight:
		return ControlTurnRight, true
	}
	return 0, false
}

// Continuous reports whether the action is held (press and release events)
// rather than triggered once per press.
func (a Action) Continuous() bool {
	_, ok := a.Control()
	return ok
}

// Repeatable reports press-only actions that fire again while their key is
// held down.
func (a Action) Repeatable() bool {
	switch a {
	case ActionAzimuthDecrease, ActionAzimuthIncrease, ActionElevationIncrease, ActionElevationDecrease:
		return true
	}
	return false
}

// Event is a single press or release of an action.
type Event struct {
	Action  Action
	Pressed bool
}

// Press returns a press event for the action.
func Press(a Action) Event { return Event{Action: a, Pressed: true} }

// Release returns a release event for the action.
func Release(a Action) Event { return Event{Action: a, Pressed: false} }
