package input

import (
	"errors"
	"testing"
)

func TestSetPressedLastWriteWins(t *testing.T) {
	var s State

	s.SetPressed(ControlForward, true)
	s.SetPressed(ControlForward, true)
	if !s.IsPressed(ControlForward) {
		t.Error("expected forward held after repeated press")
	}

	s.SetPressed(ControlForward, false)
	if s.IsPressed(ControlForward) {
		t.Error("expected forward released")
	}
	if s.Any() {
		t.Error("expected no control held")
	}
}

func TestUnknownControlIgnored(t *testing.T) {
	var s State
	s.SetPressed(Control(42), true)

	if s.IsPressed(Control(42)) {
		t.Error("unknown control should never report held")
	}
	if s.Any() {
		t.Error("unknown control should not change state")
	}
}

func TestReset(t *testing.T) {
	var s State
	s.SetPressed(ControlTurnLeft, true)
	s.SetPressed(ControlBack, true)
	s.Reset()

	for c := ControlForward; c < controlCount; c++ {
		if s.IsPressed(c) {
			t.Errorf("expected %s released after reset", c)
		}
	}
}

func TestParseActionRoundtrip(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("expected %s, got %s", a, got)
		}
	}
}

func TestParseActionUnknown(t *testing.T) {
	_, err := ParseAction("fly")
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestActionControl(t *testing.T) {
	tests := []struct {
		action     Action
		control    Control
		continuous bool
	}{
		{ActionForward, ControlForward, true},
		{ActionBack, ControlBack, true},
		{ActionTurnLeft, ControlTurnLeft, true},
		{ActionTurnRight, ControlTurnRight, true},
		{ActionToggleGarage, 0, false},
		{ActionAzimuthIncrease, 0, false},
	}

	for _, tc := range tests {
		c, ok := tc.action.Control()
		if ok != tc.continuous {
			t.Errorf("%s: expected continuous=%v, got %v", tc.action, tc.continuous, ok)
			continue
		}
		if ok && c != tc.control {
			t.Errorf("%s: expected control %s, got %s", tc.action, tc.control, c)
		}
		if tc.action.Continuous() != tc.continuous {
			t.Errorf("%s: Continuous() mismatch", tc.action)
		}
	}
}

func TestNewKeyMap(t *testing.T) {
	km, err := NewKeyMap(map[string][]string{
		"forward":      {"W", "up"},
		"cycle_camera": {"v"},
		"quit":         {"q", "escape"},
	})
	if err != nil {
		t.Fatalf("NewKeyMap: %v", err)
	}

	tests := []struct {
		key  string
		want Action
	}{
		{"w", ActionForward},
		{"W", ActionForward},
		{"up", ActionForward},
		{"v", ActionCycleCamera},
		{"escape", ActionQuit},
	}
	for _, tc := range tests {
		got, ok := km.Lookup(tc.key)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%q): expected %s, got %s (ok=%v)", tc.key, tc.want, got, ok)
		}
	}

	if _, ok := km.Lookup("z"); ok {
		t.Error("unbound key should not resolve")
	}

	keys := km.Keys(ActionQuit)
	if len(keys) != 2 || keys[0] != "escape" || keys[1] != "q" {
		t.Errorf("expected sorted keys [escape q], got %v", keys)
	}
}

func TestNewKeyMapErrors(t *testing.T) {
	_, err := NewKeyMap(map[string][]string{"teleport": {"t"}})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	_, err = NewKeyMap(map[string][]string{
		"forward": {"w"},
		"back":    {"w"},
	})
	if !errors.Is(err, ErrKeyConflict) {
		t.Errorf("expected ErrKeyConflict, got %v", err)
	}
}

func TestActionRepeatable(t *testing.T) {
	for _, a := range Actions() {
		want := a >= ActionAzimuthDecrease && a <= ActionElevationDecrease
		if a.Repeatable() != want {
			t.Errorf("%s: expected repeatable=%t", a, want)
		}
		if a.Repeatable() && a.Continuous() {
			t.Errorf("%s: cannot be both repeatable and continuous", a)
		}
	}
}
