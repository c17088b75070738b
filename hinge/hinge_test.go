package hinge

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	leftDoor   = Hinge{OpenAngle: 70, Pivot: mgl64.Vec3{-0.84, 0.25, 0.55}, Axis: mgl64.Vec3{0, 1, 0}}
	rightDoor  = Hinge{OpenAngle: -70, Pivot: mgl64.Vec3{0.84, 0.25, 0.55}, Axis: mgl64.Vec3{0, 1, 0}}
	garageDoor = Hinge{OpenAngle: 100, Pivot: mgl64.Vec3{0, 3, 0}, Axis: mgl64.Vec3{1, 0, 0}}
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name  string
		h     Hinge
		open  bool
		angle float64
	}{
		{"left open", leftDoor, true, 70},
		{"left closed", leftDoor, false, 0},
		{"right open", rightDoor, true, -70},
		{"right closed", rightDoor, false, 0},
		{"garage open", garageDoor, true, 100},
		{"garage closed", garageDoor, false, 0},
	}
	for _, tc := range tests {
		if got := tc.h.Angle(tc.open); got != tc.angle {
			t.Errorf("%s: expected %f, got %f", tc.name, tc.angle, got)
		}
	}
}

func TestPivotIsFixedPoint(t *testing.T) {
	for _, h := range []Hinge{leftDoor, rightDoor, garageDoor} {
		m := h.Matrix(true)
		p := m.Mul4x1(h.Pivot.Vec4(1)).Vec3()
		if !p.ApproxEqualThreshold(h.Pivot, 1e-9) {
			t.Errorf("pivot %v moved to %v", h.Pivot, p)
		}
	}
}

func TestClosedIsIdentity(t *testing.T) {
	if !garageDoor.Matrix(false).ApproxEqualThreshold(mgl64.Ident4(), 1e-12) {
		t.Error("expected identity matrix for closed hinge")
	}
}

func TestLeftDoorSwingsOutward(t *testing.T) {
	// A point on the door panel behind the hinge line
	rear := mgl64.Vec3{-0.84, 0.25, -0.80}
	p := leftDoor.Matrix(true).Mul4x1(rear.Vec4(1)).Vec3()

	if p.X() >= rear.X() {
		t.Errorf("expected left door to swing toward -X, got x=%f", p.X())
	}
	dist := p.Sub(leftDoor.Pivot).Len()
	if math.Abs(dist-rear.Sub(leftDoor.Pivot).Len()) > 1e-9 {
		t.Error("rotation should preserve distance to pivot")
	}
}

func TestRightDoorSwingsOutward(t *testing.T) {
	rear := mgl64.Vec3{0.84, 0.25, -0.80}
	p := rightDoor.Matrix(true).Mul4x1(rear.Vec4(1)).Vec3()

	if p.X() <= rear.X() {
		t.Errorf("expected right door to swing toward +X, got x=%f", p.X())
	}
}

func TestGarageDoorLifts(t *testing.T) {
	// Bottom edge of the door
	bottom := mgl64.Vec3{0, 0, 0}
	p := garageDoor.Matrix(true).Mul4x1(bottom.Vec4(1)).Vec3()

	if p.Y() <= 3 {
		t.Errorf("expected bottom edge above the hinge line when open, got y=%f", p.Y())
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	var d DoorState
	var g GarageState

	d.ToggleLeft()
	d.ToggleLeft()
	d.ToggleRight()
	d.ToggleRight()
	g.Toggle()
	g.Toggle()

	if d.LeftOpen || d.RightOpen || g.Open {
		t.Errorf("expected all closed, got %+v %+v", d, g)
	}
	if leftDoor.Angle(d.LeftOpen) != 0 || garageDoor.Angle(g.Open) != 0 {
		t.Error("expected closed target angles after double toggle")
	}
}

func TestGarageToggleScenario(t *testing.T) {
	var g GarageState

	if !g.Toggle() {
		t.Fatal("expected garage open after first toggle")
	}
	if got := garageDoor.Angle(g.Open); got != 100 {
		t.Errorf("expected 100, got %f", got)
	}
	g.Toggle()
	if got := garageDoor.Angle(g.Open); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}
