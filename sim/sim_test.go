package sim

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/camera"
	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/input"
	"github.com/pthm-cable/garage/rig"
	"github.com/pthm-cable/garage/vehicle"
)

func newWorld(t *testing.T) *World {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNilConfig(t *testing.T) {
	if _, err := NewWorld(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestForwardScenario(t *testing.T) {
	w := newWorld(t)
	w.Vehicle.SteerAngle = 10

	w.Apply(input.Press(input.ActionForward))
	w.Tick()

	want := -mgl64.RadToDeg(math.Sin(mgl64.DegToRad(10)) * 0.03)
	if math.Abs(w.Vehicle.Heading-want) > 1e-12 {
		t.Errorf("expected heading %f, got %f", want, w.Vehicle.Heading)
	}
	if math.Abs(w.Vehicle.Heading+0.2979) > 1e-4 {
		t.Errorf("expected heading ≈ -0.2979, got %f", w.Vehicle.Heading)
	}
	h := mgl64.DegToRad(want)
	if math.Abs(w.Vehicle.Position.X()-math.Sin(h)*0.03) > 1e-12 ||
		math.Abs(w.Vehicle.Position.Z()-math.Cos(h)*0.03) > 1e-12 {
		t.Errorf("unexpected position %v", w.Vehicle.Position)
	}
}

func TestMovementFollowsPressRelease(t *testing.T) {
	w := newWorld(t)

	w.Apply(input.Press(input.ActionTurnLeft))
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	w.Apply(input.Release(input.ActionTurnLeft))
	for i := 0; i < 10; i++ {
		w.Tick()
	}

	if w.Vehicle.SteerAngle != -5 {
		t.Errorf("expected steer -5 held after release, got %f", w.Vehicle.SteerAngle)
	}
	if w.TickCount() != 20 {
		t.Errorf("expected 20 ticks, got %d", w.TickCount())
	}
}

func TestTogglesActOnPressOnly(t *testing.T) {
	w := newWorld(t)

	w.Apply(input.Press(input.ActionToggleGarage))
	w.Apply(input.Release(input.ActionToggleGarage))
	if !w.Garage.Open {
		t.Error("expected garage open after press/release")
	}

	w.Apply(input.Press(input.ActionToggleLeftDoor))
	w.Apply(input.Press(input.ActionToggleRightDoor))
	w.Apply(input.Press(input.ActionToggleRightDoor))
	if !w.Doors.LeftOpen || w.Doors.RightOpen {
		t.Errorf("unexpected door state %+v", w.Doors)
	}

	w.Apply(input.Press(input.ActionToggleHelp))
	if !w.ShowHelp {
		t.Error("expected help shown")
	}
}

func TestQuit(t *testing.T) {
	w := newWorld(t)
	if w.Apply(input.Release(input.ActionQuit)) {
		t.Error("release of quit should not quit")
	}
	if !w.Apply(input.Press(input.ActionQuit)) {
		t.Error("expected quit on press")
	}
}

func TestCameraEvents(t *testing.T) {
	w := newWorld(t)

	for i := 0; i < 3; i++ {
		w.Apply(input.Press(input.ActionCycleCamera))
	}
	if w.Camera.Mode != camera.ModeOrbit {
		t.Errorf("expected orbit after three cycles, got %s", w.Camera.Mode)
	}

	for i := 0; i < 40; i++ {
		w.Apply(input.Press(input.ActionElevationIncrease))
	}
	if w.Camera.Elevation != 89 {
		t.Errorf("expected elevation 89, got %f", w.Camera.Elevation)
	}
	for i := 0; i < 40; i++ {
		w.Apply(input.Press(input.ActionElevationDecrease))
	}
	if w.Camera.Elevation != -10 {
		t.Errorf("expected elevation -10, got %f", w.Camera.Elevation)
	}

	w.Apply(input.Press(input.ActionAzimuthDecrease))
	if w.Camera.Azimuth != 25 {
		t.Errorf("expected azimuth 25, got %f", w.Camera.Azimuth)
	}
}

func TestSnapshot(t *testing.T) {
	w := newWorld(t)
	w.Apply(input.Press(input.ActionToggleGarage))
	w.Apply(input.Press(input.ActionToggleRightDoor))
	w.Apply(input.Press(input.ActionTurnRight))
	w.Apply(input.Press(input.ActionForward))
	for i := 0; i < 20; i++ {
		w.Tick()
	}

	s := w.Snapshot()
	if s.Tick != 20 {
		t.Errorf("expected tick 20, got %d", s.Tick)
	}
	if s.GarageDoorAngle != 100 || s.RightDoorAngle != -70 || s.LeftDoorAngle != 0 {
		t.Errorf("unexpected hinge angles %f %f %f", s.LeftDoorAngle, s.RightDoorAngle, s.GarageDoorAngle)
	}
	if s.SteerAngle != 10 {
		t.Errorf("expected steer 10, got %f", s.SteerAngle)
	}
	if s.Wheels[0].Delta != 12 || s.Wheels[1].Delta != 8 || s.Wheels[2].Delta != 0 {
		t.Errorf("unexpected wheel deltas %f %f %f", s.Wheels[0].Delta, s.Wheels[1].Delta, s.Wheels[2].Delta)
	}

	// Camera and rig come from the same pose
	anchor := s.Position.Add(mgl64.Vec3{0, 0.7, 0})
	if !s.View.Target.ApproxEqualThreshold(anchor, 1e-9) {
		t.Errorf("expected orbit target %v, got %v", anchor, s.View.Target)
	}
	body := s.Rig.WorldPoint(rig.Body, mgl64.Vec3{0, 0.13, 0})
	if !body.ApproxEqualThreshold(s.Position, 1e-9) {
		t.Errorf("expected body frame at %v, got %v", s.Position, body)
	}
}

func TestDoorPivotFromChassis(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	l, err := LayoutFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.Hinges.RightDoor.Pivot.X()-0.8396) > 1e-3 {
		t.Errorf("expected right pivot x ≈ 0.8396, got %f", l.Hinges.RightDoor.Pivot.X())
	}
	if l.Hinges.LeftDoor.Pivot.X() != -l.Hinges.RightDoor.Pivot.X() {
		t.Error("expected mirrored door pivots")
	}
	if !l.GarageOrigin.ApproxEqualThreshold(mgl64.Vec3{-1.7, 0, 11}, 1e-9) {
		t.Errorf("expected garage origin (-1.7, 0, 11), got %v", l.GarageOrigin)
	}
}

func TestInvariantsUnderLongRun(t *testing.T) {
	w := newWorld(t)
	seq := []input.Action{input.ActionTurnLeft, input.ActionTurnRight, input.ActionForward, input.ActionBack}

	for i := 0; i < 3000; i++ {
		a := seq[(i/97)%len(seq)]
		w.Apply(input.Press(a))
		if i%13 == 0 {
			w.Apply(input.Press(input.ActionCycleCamera))
			w.Apply(input.Press(input.ActionElevationIncrease))
		}
		w.Tick()
		if i%5 == 0 {
			w.Apply(input.Release(a))
		}

		v := w.Vehicle
		if v.SteerAngle < -30 || v.SteerAngle > 30 {
			t.Fatalf("tick %d: steer out of range: %f", i, v.SteerAngle)
		}
		if v.WheelRotation < -250 || v.WheelRotation > 250 {
			t.Fatalf("tick %d: wheel rotation out of range: %f", i, v.WheelRotation)
		}
		if w.Camera.Elevation < -10 || w.Camera.Elevation > 89 {
			t.Fatalf("tick %d: elevation out of range: %f", i, w.Camera.Elevation)
		}
		if w.Camera.Mode > camera.ModeInterior {
			t.Fatalf("tick %d: mode out of range: %d", i, w.Camera.Mode)
		}
	}
}

func TestReset(t *testing.T) {
	w := newWorld(t)
	w.Apply(input.Press(input.ActionForward))
	w.Apply(input.Press(input.ActionToggleGarage))
	w.Tick()

	w.Reset()
	if w.Vehicle.Position.Len() != 0 || w.Garage.Open || w.Input.Any() {
		t.Errorf("expected clean state after reset, got %+v %+v", w.Vehicle, w.Garage)
	}
}

func TestScript(t *testing.T) {
	data := []byte(`
steps:
  - press: [toggle_garage, cycle_camera]
  - hold: [turn_right]
    ticks: 10
  - hold: [forward]
    ticks: 30
  - press: [back]
    ticks: 5
  - release: [back]
    ticks: 5
`)
	s, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 5 || s.TotalTicks() != 50 {
		t.Errorf("expected 5 steps / 50 ticks, got %d / %d", s.Len(), s.TotalTicks())
	}

	w := newWorld(t)
	calls := 0
	if quit := s.Run(w, func(*World) bool { calls++; return true }); quit {
		t.Error("script should not quit")
	}

	if calls != 50 || w.TickCount() != 50 {
		t.Errorf("expected 50 ticks, got %d calls and %d ticks", calls, w.TickCount())
	}
	if !w.Garage.Open || w.Camera.Mode != camera.ModeChase {
		t.Error("expected garage open and chase camera")
	}
	if w.Vehicle.SteerAngle != 5 {
		t.Errorf("expected steer 5, got %f", w.Vehicle.SteerAngle)
	}
	if w.Input.Any() {
		t.Error("expected all controls released at the end")
	}
	if w.Vehicle.WheelSpin != -30*4+5*4 {
		t.Errorf("expected wheel spin -100, got %f", w.Vehicle.WheelSpin)
	}
}

func TestScriptQuit(t *testing.T) {
	s, err := ParseScript([]byte("steps:\n  - hold: [forward]\n    ticks: 3\n  - press: [quit]\n  - hold: [forward]\n    ticks: 100\n"))
	if err != nil {
		t.Fatal(err)
	}
	w := newWorld(t)
	if !s.Run(w, nil) {
		t.Error("expected quit")
	}
	if w.TickCount() != 3 {
		t.Errorf("expected 3 ticks before quit, got %d", w.TickCount())
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "steps:\n  - press: [fly]\n"},
		{"hold toggle", "steps:\n  - hold: [toggle_garage]\n    ticks: 1\n"},
		{"negative ticks", "steps:\n  - ticks: -1\n"},
		{"bad yaml", "steps: [\n"},
	}
	for _, tc := range tests {
		if _, err := ParseScript([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	_, err := ParseScript([]byte("steps:\n  - press: [fly]\n"))
	if !errors.Is(err, input.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestResetAction(t *testing.T) {
	w := newWorld(t)
	w.Apply(input.Press(input.ActionTurnLeft))
	w.Apply(input.Press(input.ActionToggleLeftDoor))
	w.Apply(input.Press(input.ActionCycleCamera))
	for i := 0; i < 4; i++ {
		w.Tick()
	}

	if w.Apply(input.Press(input.ActionReset)) {
		t.Error("reset should not quit")
	}
	if w.Vehicle.SteerAngle != 0 || w.Doors.LeftOpen || w.Camera.Mode != camera.ModeOrbit {
		t.Errorf("expected initial state after reset, got steer %f doors %+v mode %s",
			w.Vehicle.SteerAngle, w.Doors, w.Camera.Mode)
	}
	if w.TickCount() != 4 {
		t.Errorf("expected tick counter kept, got %d", w.TickCount())
	}

	// Presentation actions are not world state
	w.Apply(input.Press(input.ActionTogglePose))
	w.Apply(input.Press(input.ActionTogglePerf))
	if w.ShowHelp {
		t.Error("expected help untouched")
	}
}

func TestOnApplyObservesScriptEvents(t *testing.T) {
	s, err := ParseScript([]byte("steps:\n  - press: [toggle_garage]\n  - hold: [forward]\n    ticks: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	w := newWorld(t)
	var got []string
	w.OnApply = func(tick uint64, ev input.Event) {
		got = append(got, fmt.Sprintf("%d:%s:%t", tick, ev.Action, ev.Pressed))
	}
	s.Run(w, nil)

	want := []string{"0:toggle_garage:true", "0:forward:true", "2:forward:false"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSetSteering(t *testing.T) {
	w := newWorld(t)
	w.Vehicle.SteerAngle = 10
	w.SetSteering(vehicle.Ackermann{InnerRatio: 1.1, OuterRatio: 0.9})

	s := w.Snapshot()
	if math.Abs(s.Wheels[0].Delta-11) > 1e-12 || math.Abs(s.Wheels[1].Delta-9) > 1e-12 {
		t.Errorf("expected deltas 11 / 9, got %f / %f", s.Wheels[0].Delta, s.Wheels[1].Delta)
	}
	if w.Steering().InnerRatio != 1.1 {
		t.Errorf("expected inner ratio 1.1, got %f", w.Steering().InnerRatio)
	}
}
