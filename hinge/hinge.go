// Package hinge maps open/closed flags to pivot-relative rotations for the
// vehicle doors and the garage door.
package hinge

import "github.com/go-gl/mathgl/mgl64"

// Hinge describes a rotation about an axis through a pivot point,
// expressed in the parent frame of the hinged part.
type Hinge struct {
	// OpenAngle is the rotation in degrees when open. Closed is always 0.
	OpenAngle float64
	Pivot     mgl64.Vec3
	Axis      mgl64.Vec3
}

// Angle returns the target angle for the flag. There is no easing:
// a state change shows up in full on the next frame.
func (h Hinge) Angle(open bool) float64 {
	if open {
		return h.OpenAngle
	}
	return 0
}

// Matrix returns T(pivot) · R(angle, axis) · T(-pivot).
func (h Hinge) Matrix(open bool) mgl64.Mat4 {
	angle := h.Angle(open)
	if angle == 0 {
		return mgl64.Ident4()
	}
	p := h.Pivot
	return mgl64.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl64.HomogRotate3D(mgl64.DegToRad(angle), h.Axis.Normalize())).
		Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// DoorState holds the two independent door flags.
type DoorState struct {
	LeftOpen  bool
	RightOpen bool
}

// ToggleLeft flips the left door and returns its new state.
func (d *DoorState) ToggleLeft() bool {
	d.LeftOpen = !d.LeftOpen
	return d.LeftOpen
}

// ToggleRight flips the right door and returns its new state.
func (d *DoorState) ToggleRight() bool {
	d.RightOpen = !d.RightOpen
	return d.RightOpen
}

// GarageState holds the garage door flag.
type GarageState struct {
	Open bool
}

// Toggle flips the garage door and returns its new state.
func (g *GarageState) Toggle() bool {
	g.Open = !g.Open
	return g.Open
}

// Set groups the three hinges of the scene.
type Set struct {
	LeftDoor   Hinge
	RightDoor  Hinge
	GarageDoor Hinge
}
