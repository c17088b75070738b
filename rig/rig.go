// Package rig composes the hierarchical placement of every moving part of
// the vehicle and the garage. Parts live in a fixed arena indexed by PartID;
// each frame the local op lists are rebuilt in place and world matrices are
// composed parent first.
package rig

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/hinge"
	"github.com/pthm-cable/garage/vehicle"
)

// PartID indexes a node in the rig arena. Parents always precede their
// children.
type PartID uint8

const (
	Body PartID = iota
	WheelFrontLeft
	WheelFrontRight
	WheelRearLeft
	WheelRearRight
	DoorLeft
	DoorRight
	SteeringColumn
	SteeringWheel
	Garage
	GarageDoor

	PartCount
)

// NoParent marks a root node.
const NoParent = PartCount

var partNames = [PartCount]string{
	Body:            "body",
	WheelFrontLeft:  "wheel_front_left",
	WheelFrontRight: "wheel_front_right",
	WheelRearLeft:   "wheel_rear_left",
	WheelRearRight:  "wheel_rear_right",
	DoorLeft:        "door_left",
	DoorRight:       "door_right",
	SteeringColumn:  "steering_column",
	SteeringWheel:   "steering_wheel",
	Garage:          "garage",
	GarageDoor:      "garage_door",
}

func (p PartID) String() string {
	if p >= PartCount {
		return fmt.Sprintf("part(%d)", uint8(p))
	}
	return partNames[p]
}

// IsWheel reports whether p is one of the four road wheels.
func (p PartID) IsWheel() bool {
	return p >= WheelFrontLeft && p <= WheelRearRight
}

// Wheels lists the road wheels in arena order.
var Wheels = [4]PartID{WheelFrontLeft, WheelFrontRight, WheelRearLeft, WheelRearRight}

// WheelMount describes where a wheel attaches to the body.
type WheelMount struct {
	Mount  mgl64.Vec3
	Radius float64
	Width  float64
	Left   bool
	Front  bool
}

// Layout is the fixed geometry the composer needs. It never changes after
// construction.
type Layout struct {
	Wheels [4]WheelMount

	// ReferenceRadius normalises wheel spin so rim speed matches across radii.
	ReferenceRadius float64

	// BodyDrop lowers the body shell after the heading rotation.
	BodyDrop float64

	Hinges hinge.Set

	ColumnStart mgl64.Vec3
	ColumnEnd   mgl64.Vec3

	// GarageOrigin is the bottom centre of the garage's front opening.
	GarageOrigin mgl64.Vec3
}

// Node is one arena slot.
type Node struct {
	Parent   PartID
	Children []PartID
	Ops      []Op
	Local    mgl64.Mat4
	World    mgl64.Mat4
}

// WheelPose is the per-wheel slice of the pose snapshot.
type WheelPose struct {
	Part  PartID
	Delta float64 // steering rotation in degrees
	Spin  float64 // roll about the axle in degrees
	Mount mgl64.Mat4
}

// Rig is the transform tree.
type Rig struct {
	layout Layout
	nodes  [PartCount]Node
	wheels [4]WheelPose

	columnLength float64
	columnAxis   mgl64.Vec3
	columnAngle  float64
}

var parents = [PartCount]PartID{
	Body:            NoParent,
	WheelFrontLeft:  Body,
	WheelFrontRight: Body,
	WheelRearLeft:   Body,
	WheelRearRight:  Body,
	DoorLeft:        Body,
	DoorRight:       Body,
	SteeringColumn:  Body,
	SteeringWheel:   Body,
	Garage:          NoParent,
	GarageDoor:      Garage,
}

// New builds the arena for a layout. All matrices start as identity until
// the first Compose.
func New(l Layout) *Rig {
	r := &Rig{layout: l}
	for id := PartID(0); id < PartCount; id++ {
		n := &r.nodes[id]
		n.Parent = parents[id]
		n.Ops = make([]Op, 0, 4)
		n.Local = mgl64.Ident4()
		n.World = mgl64.Ident4()
		if n.Parent != NoParent {
			p := &r.nodes[n.Parent]
			p.Children = append(p.Children, id)
		}
	}
	for i, id := range Wheels {
		r.wheels[i] = WheelPose{Part: id, Mount: mgl64.Ident4()}
	}

	r.columnLength, r.columnAxis, r.columnAngle = alignZ(l.ColumnEnd.Sub(l.ColumnStart))
	return r
}

// alignZ returns the length of d and the axis-angle rotation taking +Z onto
// its direction. Antiparallel vectors rotate 180° about +X.
func alignZ(d mgl64.Vec3) (length float64, axis mgl64.Vec3, angleDeg float64) {
	length = d.Len()
	if length == 0 {
		return 0, axisX, 0
	}
	dir := d.Mul(1 / length)
	cos := axisZ.Dot(dir)
	switch {
	case cos > 1-1e-9:
		return length, axisX, 0
	case cos < -1+1e-9:
		return length, axisX, 180
	}
	return length, axisZ.Cross(dir).Normalize(), mgl64.RadToDeg(math.Acos(cos))
}

// Layout returns the layout the rig was built with.
func (r *Rig) Layout() Layout {
	return r.layout
}

// ColumnLength is the distance between the steering column's end points.
func (r *Rig) ColumnLength() float64 {
	return r.columnLength
}

// Node returns the arena slot for id.
func (r *Rig) Node(id PartID) *Node {
	return &r.nodes[id]
}

// World returns the composed world matrix of a part.
func (r *Rig) World(id PartID) mgl64.Mat4 {
	return r.nodes[id].World
}

// WorldPoint maps a point in the part's local frame to world space.
func (r *Rig) WorldPoint(id PartID, local mgl64.Vec3) mgl64.Vec3 {
	return r.nodes[id].World.Mul4x1(local.Vec4(1)).Vec3()
}

// WheelPose returns the last composed pose of a road wheel.
func (r *Rig) WheelPose(id PartID) (WheelPose, bool) {
	if !id.IsWheel() {
		return WheelPose{}, false
	}
	return r.wheels[id-WheelFrontLeft], true
}

// WheelPoses returns the poses of all four wheels in arena order.
func (r *Rig) WheelPoses() [4]WheelPose {
	return r.wheels
}

// Compose rebuilds every node's ops from the current state and composes the
// local and world matrices.
func (r *Rig) Compose(st *vehicle.State, ack vehicle.Ackermann, doors hinge.DoorState, garage hinge.GarageState) {
	l := &r.layout

	body := r.reset(Body)
	body.Ops = append(body.Ops,
		Translate(st.Position),
		Rotate(st.Heading, axisY),
		Translate(mgl64.Vec3{0, l.BodyDrop, 0}),
	)

	for i, id := range Wheels {
		r.composeWheel(i, id, st, ack)
	}

	r.composeHinge(DoorLeft, l.Hinges.LeftDoor, doors.LeftOpen)
	r.composeHinge(DoorRight, l.Hinges.RightDoor, doors.RightOpen)

	column := r.reset(SteeringColumn)
	column.Ops = append(column.Ops,
		Translate(l.ColumnStart),
		Rotate(r.columnAngle, r.columnAxis),
	)

	wheel := r.reset(SteeringWheel)
	wheel.Ops = append(wheel.Ops,
		Translate(l.ColumnEnd),
		Rotate(st.WheelRotation, axisZ),
	)

	g := r.reset(Garage)
	g.Ops = append(g.Ops, Translate(l.GarageOrigin))

	r.composeHinge(GarageDoor, l.Hinges.GarageDoor, garage.Open)

	// Arena order guarantees parents are composed first
	for id := PartID(0); id < PartCount; id++ {
		n := &r.nodes[id]
		n.Local = mgl64.Ident4()
		for _, op := range n.Ops {
			n.Local = n.Local.Mul4(op.Matrix())
		}
		if n.Parent == NoParent {
			n.World = n.Local
		} else {
			n.World = r.nodes[n.Parent].World.Mul4(n.Local)
		}
	}
	for i, id := range Wheels {
		r.wheels[i].Mount = r.nodes[id].Local
	}
}

func (r *Rig) reset(id PartID) *Node {
	n := &r.nodes[id]
	n.Ops = n.Ops[:0]
	return n
}

func (r *Rig) composeWheel(i int, id PartID, st *vehicle.State, ack vehicle.Ackermann) {
	m := r.layout.Wheels[i]
	n := r.reset(id)

	side := 1.0
	orient := 90.0
	if m.Left {
		side = -1
		orient = -90
	}

	factor := 1.0
	if m.Radius > 0 && r.layout.ReferenceRadius > 0 {
		factor = r.layout.ReferenceRadius / m.Radius
	}
	delta := ack.Delta(st.SteerAngle, m.Left, m.Front)
	spin := side * (-st.WheelSpin * factor)

	n.Ops = append(n.Ops, Translate(m.Mount))
	if m.Front {
		n.Ops = append(n.Ops, Rotate(-delta, axisY))
	}
	n.Ops = append(n.Ops,
		Rotate(orient, axisY),
		Rotate(spin, axisZ),
	)

	r.wheels[i].Delta = delta
	r.wheels[i].Spin = spin
}

// composeHinge expresses hinge.Matrix as T(p)·R·T(−p) ops so a matrix-stack
// renderer can replay it. A closed hinge contributes no ops.
func (r *Rig) composeHinge(id PartID, h hinge.Hinge, open bool) {
	n := r.reset(id)
	angle := h.Angle(open)
	if angle == 0 {
		return
	}
	n.Ops = append(n.Ops,
		Translate(h.Pivot),
		Rotate(angle, h.Axis),
		Translate(h.Pivot.Mul(-1)),
	)
}

// HingeAngle returns the current hinge angle of a door part, or 0 for parts
// without a hinge.
func HingeAngle(id PartID, h hinge.Set, doors hinge.DoorState, garage hinge.GarageState) float64 {
	switch id {
	case DoorLeft:
		return h.LeftDoor.Angle(doors.LeftOpen)
	case DoorRight:
		return h.RightDoor.Angle(doors.RightOpen)
	case GarageDoor:
		return h.GarageDoor.Angle(garage.Open)
	}
	return 0
}

// Walk traverses both roots depth first. For every node it pushes a frame,
// replays the node's ops, calls visit, descends into the children and pops.
func (r *Rig) Walk(t Transformer, visit func(PartID)) {
	for id := PartID(0); id < PartCount; id++ {
		if r.nodes[id].Parent == NoParent {
			r.walk(id, t, visit)
		}
	}
}

func (r *Rig) walk(id PartID, t Transformer, visit func(PartID)) {
	n := &r.nodes[id]
	t.PushMatrix()
	for _, op := range n.Ops {
		op.Apply(t)
	}
	if visit != nil {
		visit(id)
	}
	for _, c := range n.Children {
		r.walk(c, t, visit)
	}
	t.PopMatrix()
}
