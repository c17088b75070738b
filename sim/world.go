// Package sim owns the complete mutable state of the visualizer and advances
// it one frame at a time. All state lives in a World value; nothing is global.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/camera"
	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/geometry"
	"github.com/pthm-cable/garage/hinge"
	"github.com/pthm-cable/garage/input"
	"github.com/pthm-cable/garage/rig"
	"github.com/pthm-cable/garage/vehicle"
)

// World is the state aggregate mutated by the frame loop.
type World struct {
	Vehicle vehicle.State
	Doors   hinge.DoorState
	Garage  hinge.GarageState
	Input   input.State
	Camera  *camera.Camera

	ShowHelp bool

	// OnApply, if set, observes every event before it is applied.
	OnApply func(tick uint64, ev input.Event)

	integrator *vehicle.Integrator
	ackermann  vehicle.Ackermann
	rig        *rig.Rig
	tick       uint64
}

// NewWorld builds the world from configuration and composes the initial pose.
func NewWorld(cfg *config.Config) (*World, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	layout, err := LayoutFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	w := &World{
		Camera:     camera.New(CameraParams(&cfg.Camera)),
		integrator: vehicle.NewIntegrator(VehicleParams(&cfg.Vehicle)),
		ackermann:  vehicle.Ackermann{InnerRatio: cfg.Steering.InnerRatio, OuterRatio: cfg.Steering.OuterRatio},
		rig:        rig.New(layout),
	}
	w.compose()
	return w, nil
}

// VehicleParams converts the vehicle config section.
func VehicleParams(c *config.VehicleConfig) vehicle.Params {
	return vehicle.Params{
		MoveStep:          c.MoveStep,
		TurnFactor:        c.TurnFactor,
		SteerStep:         c.SteerStep,
		WheelSpinStep:     c.WheelSpinStep,
		MaxSteer:          c.MaxSteer,
		WheelRotationStep: c.WheelRotationStep,
		MaxWheelRotation:  c.MaxWheelRotation,
	}
}

// CameraParams converts the camera config section.
func CameraParams(c *config.CameraConfig) camera.Params {
	return camera.Params{
		Azimuth:      c.Azimuth,
		Elevation:    c.Elevation,
		Distance:     c.Distance,
		Step:         c.Step,
		MinElevation: c.MinElevation,
		MaxElevation: c.MaxElevation,
		OrbitHeight:  c.OrbitHeight,
		LookAtHeight: c.LookAtHeight,
		ChaseBack:    c.ChaseBack,
		ChaseHeight:  c.ChaseHeight,
		InteriorBack: c.InteriorBack,
		InteriorSide: c.InteriorSide,
		EyeHeight:    c.EyeHeight,
		LookAhead:    c.LookAhead,
		LookDown:     c.LookDown,
	}
}

// DoorSpec converts the doors config section.
func DoorSpec(c *config.DoorsConfig) geometry.DoorSpec {
	return geometry.DoorSpec{
		FrontZ:    c.FrontZ,
		RearZ:     c.RearZ,
		BottomY:   c.BottomY,
		TopY:      c.TopY,
		Thickness: c.Thickness,
	}
}

// GarageSpec converts the garage config section.
func GarageSpec(c *config.GarageConfig) geometry.GarageSpec {
	return geometry.GarageSpec{
		Width:         c.Width,
		Depth:         c.Depth,
		Height:        c.Height,
		DoorWidth:     c.DoorWidth,
		DoorHeight:    c.DoorHeight,
		DoorThickness: c.DoorThickness,
	}
}

func vec3(name string, v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", name, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// LayoutFromConfig derives the rig layout. Door pivots come from the chassis
// profile so the hinge line sits on the outer skin of the panel.
func LayoutFromConfig(cfg *config.Config) (rig.Layout, error) {
	start, err := vec3("steering_wheel.column_start", cfg.SteeringWheel.ColumnStart)
	if err != nil {
		return rig.Layout{}, err
	}
	end, err := vec3("steering_wheel.column_end", cfg.SteeringWheel.ColumnEnd)
	if err != nil {
		return rig.Layout{}, err
	}

	mount := func(w config.WheelConfig, left, front bool) rig.WheelMount {
		x := w.X
		if left {
			x = -x
		}
		return rig.WheelMount{
			Mount:  mgl64.Vec3{x, w.Y, w.Z},
			Radius: w.Radius,
			Width:  w.Width,
			Left:   left,
			Front:  front,
		}
	}

	doors := DoorSpec(&cfg.Doors)
	up := mgl64.Vec3{0, 1, 0}
	g := &cfg.Garage

	return rig.Layout{
		Wheels: [4]rig.WheelMount{
			mount(cfg.Wheels.Front, true, true),
			mount(cfg.Wheels.Front, false, true),
			mount(cfg.Wheels.Rear, true, false),
			mount(cfg.Wheels.Rear, false, false),
		},
		ReferenceRadius: cfg.Wheels.ReferenceRadius,
		BodyDrop:        cfg.Vehicle.BodyDrop,
		Hinges: hinge.Set{
			LeftDoor: hinge.Hinge{
				OpenAngle: cfg.Doors.OpenAngle,
				Pivot:     geometry.DoorPivot(true, doors),
				Axis:      up,
			},
			RightDoor: hinge.Hinge{
				OpenAngle: -cfg.Doors.OpenAngle,
				Pivot:     geometry.DoorPivot(false, doors),
				Axis:      up,
			},
			GarageDoor: hinge.Hinge{
				OpenAngle: g.OpenAngle,
				Pivot:     mgl64.Vec3{0, g.DoorHeight, 0},
				Axis:      mgl64.Vec3{1, 0, 0},
			},
		},
		ColumnStart:  start,
		ColumnEnd:    end,
		GarageOrigin: mgl64.Vec3{g.CenterX, 0, g.CenterZ - g.Depth/2},
	}, nil
}

// Steering returns the steering ratios in use.
func (w *World) Steering() vehicle.Ackermann {
	return w.ackermann
}

// SetSteering replaces the steering ratios and recomposes the pose.
func (w *World) SetSteering(a vehicle.Ackermann) {
	w.ackermann = a
	w.compose()
}

// Rig returns the transform tree composed by the last Tick.
func (w *World) Rig() *rig.Rig {
	return w.rig
}

// TickCount returns the number of ticks run so far.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Apply feeds one input event into the world. Movement actions follow the
// press/release edge; every other action fires on press only. It returns
// true when the event requests quitting.
func (w *World) Apply(ev input.Event) (quit bool) {
	if w.OnApply != nil {
		w.OnApply(w.tick, ev)
	}
	if c, ok := ev.Action.Control(); ok {
		w.Input.SetPressed(c, ev.Pressed)
		return false
	}
	if !ev.Pressed {
		return false
	}

	switch ev.Action {
	case input.ActionToggleLeftDoor:
		slog.Debug("door toggled", "side", "left", "open", w.Doors.ToggleLeft())
	case input.ActionToggleRightDoor:
		slog.Debug("door toggled", "side", "right", "open", w.Doors.ToggleRight())
	case input.ActionToggleGarage:
		slog.Debug("garage toggled", "open", w.Garage.Toggle())
	case input.ActionCycleCamera:
		slog.Debug("camera mode", "mode", w.Camera.CycleMode().String())
	case input.ActionToggleHelp:
		w.ShowHelp = !w.ShowHelp
	case input.ActionAzimuthDecrease:
		w.Camera.OrbitLeft()
	case input.ActionAzimuthIncrease:
		w.Camera.OrbitRight()
	case input.ActionElevationIncrease:
		w.Camera.OrbitUp()
	case input.ActionElevationDecrease:
		w.Camera.OrbitDown()
	case input.ActionReset:
		slog.Info("world reset", "tick", w.tick)
		w.Reset()
	case input.ActionQuit:
		slog.Info("quit requested", "tick", w.tick)
		return true
	}
	return false
}

// Tick advances one frame: integrate the vehicle, then evaluate the hinges
// and recompose the transform tree from the new pose.
func (w *World) Tick() {
	w.integrator.Tick(&w.Vehicle, &w.Input)
	w.compose()
	w.tick++
}

// Recompose rebuilds the transform tree without integrating. Used when the
// state is edited directly.
func (w *World) Recompose() {
	w.compose()
}

func (w *World) compose() {
	w.rig.Compose(&w.Vehicle, w.ackermann, w.Doors, w.Garage)
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Tick          uint64
	Position      mgl64.Vec3
	Heading       float64
	SteerAngle    float64
	WheelSpin     float64
	WheelRotation float64
	Wheels        [4]rig.WheelPose

	LeftDoorAngle   float64
	RightDoorAngle  float64
	GarageDoorAngle float64

	CameraMode camera.Mode
	View       camera.View

	ShowHelp bool
	Rig      *rig.Rig
}

// Snapshot captures the current pose. The camera is derived from the same
// vehicle state the rig was composed from.
func (w *World) Snapshot() Snapshot {
	h := w.rig.Layout().Hinges
	return Snapshot{
		Tick:            w.tick,
		Position:        w.Vehicle.Position,
		Heading:         w.Vehicle.Heading,
		SteerAngle:      w.Vehicle.SteerAngle,
		WheelSpin:       w.Vehicle.WheelSpin,
		WheelRotation:   w.Vehicle.WheelRotation,
		Wheels:          w.rig.WheelPoses(),
		LeftDoorAngle:   rig.HingeAngle(rig.DoorLeft, h, w.Doors, w.Garage),
		RightDoorAngle:  rig.HingeAngle(rig.DoorRight, h, w.Doors, w.Garage),
		GarageDoorAngle: rig.HingeAngle(rig.GarageDoor, h, w.Doors, w.Garage),
		CameraMode:      w.Camera.Mode,
		View:            w.Camera.View(w.Vehicle.Position, w.Vehicle.Heading),
		ShowHelp:        w.ShowHelp,
		Rig:             w.rig,
	}
}

// Reset returns the vehicle, doors, garage, input and camera to their
// initial state.
func (w *World) Reset() {
	w.Vehicle.Reset()
	w.Doors = hinge.DoorState{}
	w.Garage = hinge.GarageState{}
	w.Input.Reset()
	w.Camera.Reset()
	w.compose()
}
