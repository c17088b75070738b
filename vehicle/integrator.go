package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/input"
)

// Params holds the fixed per-tick steps of the integrator.
// Steps are per frame, not scaled by wall-clock time.
type Params struct {
	MoveStep          float64
	TurnFactor        float64
	SteerStep         float64
	WheelSpinStep     float64
	MaxSteer          float64
	WheelRotationStep float64
	MaxWheelRotation  float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MoveStep:          0.03,
		TurnFactor:        0.03,
		SteerStep:         0.5,
		WheelSpinStep:     4,
		MaxSteer:          30,
		WheelRotationStep: 5,
		MaxWheelRotation:  250,
	}
}

// Integrator advances vehicle state once per frame from held controls.
type Integrator struct {
	Params Params
}

// NewIntegrator creates an integrator with the given steps.
func NewIntegrator(p Params) *Integrator {
	return &Integrator{Params: p}
}

// Tick applies one frame of input to s.
//
// Steering and steering-wheel rotation are not re-centered when no turn key
// is held; they keep their last value until the opposite key is pressed.
func (it *Integrator) Tick(s *State, in *input.State) {
	p := &it.Params

	if in.IsPressed(input.ControlTurnLeft) {
		s.SteerAngle = math.Max(s.SteerAngle-p.SteerStep, -p.MaxSteer)
		s.WheelRotation = math.Max(s.WheelRotation-p.WheelRotationStep, -p.MaxWheelRotation)
	}
	if in.IsPressed(input.ControlTurnRight) {
		s.SteerAngle = math.Min(s.SteerAngle+p.SteerStep, p.MaxSteer)
		s.WheelRotation = math.Min(s.WheelRotation+p.WheelRotationStep, p.MaxWheelRotation)
	}

	if in.IsPressed(input.ControlForward) {
		it.drive(s, s.SteerAngle, p.MoveStep)
		s.WheelSpin -= p.WheelSpinStep
	}
	if in.IsPressed(input.ControlBack) {
		it.drive(s, -s.SteerAngle, -p.MoveStep)
		s.WheelSpin += p.WheelSpinStep
	}
}

// drive yaws by the steering contribution first, then moves along the
// updated heading.
func (it *Integrator) drive(s *State, steer, step float64) {
	s.Heading -= mgl64.RadToDeg(math.Sin(mgl64.DegToRad(steer)) * it.Params.TurnFactor)
	s.Position = s.Position.Add(Forward(s.Heading).Mul(step))
}
