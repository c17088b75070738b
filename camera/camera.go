// Package camera provides the three-mode 3D view controller: an orbit view
// around the vehicle, a chase view behind it and an interior driver view.
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/vehicle"
)

// Mode selects how the view is derived from the vehicle pose.
type Mode uint8

const (
	ModeOrbit Mode = iota
	ModeChase
	ModeInterior

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeChase:
		return "chase"
	case ModeInterior:
		return "interior"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Params holds the fixed offsets of each mode and the orbit defaults.
type Params struct {
	// Orbit
	Azimuth      float64
	Elevation    float64
	Distance     float64
	Step         float64
	MinElevation float64
	MaxElevation float64
	OrbitHeight  float64
	LookAtHeight float64

	// Chase
	ChaseBack   float64
	ChaseHeight float64

	// Interior
	InteriorBack float64
	InteriorSide float64
	EyeHeight    float64
	LookAhead    float64
	LookDown     float64
}

// DefaultParams returns the stock camera tuning.
func DefaultParams() Params {
	return Params{
		Azimuth:      30,
		Elevation:    20,
		Distance:     5,
		Step:         5,
		MinElevation: -10,
		MaxElevation: 89,
		OrbitHeight:  1.5,
		LookAtHeight: 0.7,

		ChaseBack:   6,
		ChaseHeight: 3,

		InteriorBack: 0.55,
		InteriorSide: -0.15,
		EyeHeight:    0.9,
		LookAhead:    5,
		LookDown:     0.05,
	}
}

// Camera is the view state machine. Orbit parameters persist across mode
// switches; only Orbit mode reads them.
type Camera struct {
	Params Params

	Mode      Mode
	Azimuth   float64
	Elevation float64
	Distance  float64
}

// New creates a camera in Orbit mode at the default orbit parameters.
func New(p Params) *Camera {
	c := &Camera{Params: p}
	c.Reset()
	return c
}

// Reset returns to Orbit mode and the default orbit parameters.
func (c *Camera) Reset() {
	c.Mode = ModeOrbit
	c.Azimuth = c.Params.Azimuth
	c.Elevation = clamp(c.Params.Elevation, c.Params.MinElevation, c.Params.MaxElevation)
	c.Distance = c.Params.Distance
}

// CycleMode advances Orbit → Chase → Interior → Orbit and returns the new mode.
func (c *Camera) CycleMode() Mode {
	c.Mode = (c.Mode + 1) % modeCount
	return c.Mode
}

// OrbitLeft decreases azimuth by one step. Azimuth is unbounded.
func (c *Camera) OrbitLeft() {
	c.Azimuth -= c.Params.Step
}

// OrbitRight increases azimuth by one step.
func (c *Camera) OrbitRight() {
	c.Azimuth += c.Params.Step
}

// OrbitUp raises the elevation by one step, saturating at the maximum.
func (c *Camera) OrbitUp() {
	c.Elevation = clamp(c.Elevation+c.Params.Step, c.Params.MinElevation, c.Params.MaxElevation)
}

// OrbitDown lowers the elevation by one step, saturating at the minimum.
func (c *Camera) OrbitDown() {
	c.Elevation = clamp(c.Elevation-c.Params.Step, c.Params.MinElevation, c.Params.MaxElevation)
}

// View is a look-at triple.
type View struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// Matrix returns the right-handed view matrix.
func (v View) Matrix() mgl64.Mat4 {
	return mgl64.LookAtV(v.Eye, v.Target, v.Up)
}

var worldUp = mgl64.Vec3{0, 1, 0}

// View derives the current view from the vehicle pose. It is recomputed in
// full each call; switching modes is a hard cut.
func (c *Camera) View(pos mgl64.Vec3, headingDeg float64) View {
	p := &c.Params
	switch c.Mode {
	case ModeChase:
		fwd := vehicle.Forward(headingDeg)
		return View{
			Eye:    pos.Sub(fwd.Mul(p.ChaseBack)).Add(mgl64.Vec3{0, p.ChaseHeight, 0}),
			Target: pos.Add(fwd).Add(mgl64.Vec3{0, p.LookAtHeight, 0}),
			Up:     worldUp,
		}

	case ModeInterior:
		fwd := vehicle.Forward(headingDeg)
		right := vehicle.Right(headingDeg)
		eye := pos.Sub(fwd.Mul(p.InteriorBack)).Sub(right.Mul(p.InteriorSide))
		eye[1] = pos.Y() + p.EyeHeight
		target := pos.Add(fwd.Mul(p.LookAhead))
		target[1] = eye.Y() - p.LookDown
		return View{Eye: eye, Target: target, Up: worldUp}
	}

	az := mgl64.DegToRad(c.Azimuth)
	el := mgl64.DegToRad(c.Elevation)
	eye := mgl64.Vec3{
		c.Distance * math.Cos(el) * math.Cos(az),
		c.Distance * math.Sin(el),
		c.Distance * math.Cos(el) * math.Sin(az),
	}
	return View{
		Eye:    pos.Add(eye).Add(mgl64.Vec3{0, p.OrbitHeight, 0}),
		Target: pos.Add(mgl64.Vec3{0, p.LookAtHeight, 0}),
		Up:     worldUp,
	}
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
