// Package vehicle implements the per-frame kinematic model of the vehicle:
// pose integration from held controls and per-wheel steering distribution.
package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the vehicle pose and animation state.
type State struct {
	// Position in world units; Y is up.
	Position mgl64.Vec3

	// Heading is the yaw about +Y in degrees, unbounded.
	Heading float64

	// SteerAngle is the global steering angle in degrees, clamped to ±MaxSteer.
	SteerAngle float64

	// WheelSpin accumulates wheel roll in degrees, unbounded.
	WheelSpin float64

	// WheelRotation is the steering wheel's visual rotation in degrees,
	// clamped to ±MaxWheelRotation.
	WheelRotation float64
}

// Reset returns the vehicle to the spawn pose.
func (s *State) Reset() {
	*s = State{}
}

// Forward returns the unit direction the vehicle faces at the given heading.
func Forward(headingDeg float64) mgl64.Vec3 {
	h := mgl64.DegToRad(headingDeg)
	return mgl64.Vec3{math.Sin(h), 0, math.Cos(h)}
}

// Right returns the unit lateral direction for the given heading.
func Right(headingDeg float64) mgl64.Vec3 {
	h := mgl64.DegToRad(headingDeg)
	return mgl64.Vec3{math.Cos(h), 0, -math.Sin(h)}
}
