package rig

import "github.com/go-gl/mathgl/mgl64"

// OpKind selects the transform primitive an Op applies.
type OpKind uint8

const (
	OpTranslate OpKind = iota
	OpRotate
	OpScale
)

// Op is one step of a node's local transform. Rotation angles are degrees
// about Vec; translations and scales use Vec directly.
type Op struct {
	Kind  OpKind
	Vec   mgl64.Vec3
	Angle float64
}

// Translate returns a translation op.
func Translate(v mgl64.Vec3) Op {
	return Op{Kind: OpTranslate, Vec: v}
}

// Rotate returns a rotation of angleDeg degrees about axis.
func Rotate(angleDeg float64, axis mgl64.Vec3) Op {
	return Op{Kind: OpRotate, Vec: axis, Angle: angleDeg}
}

// Scale returns a non-uniform scale op.
func Scale(v mgl64.Vec3) Op {
	return Op{Kind: OpScale, Vec: v}
}

// Matrix returns the op as a homogeneous matrix.
func (o Op) Matrix() mgl64.Mat4 {
	switch o.Kind {
	case OpTranslate:
		return mgl64.Translate3D(o.Vec.X(), o.Vec.Y(), o.Vec.Z())
	case OpRotate:
		if o.Angle == 0 || o.Vec.Len() == 0 {
			return mgl64.Ident4()
		}
		return mgl64.HomogRotate3D(mgl64.DegToRad(o.Angle), o.Vec.Normalize())
	case OpScale:
		return mgl64.Scale3D(o.Vec.X(), o.Vec.Y(), o.Vec.Z())
	}
	return mgl64.Ident4()
}

// Apply forwards the op to a transform-apply primitive.
func (o Op) Apply(t Transformer) {
	switch o.Kind {
	case OpTranslate:
		t.Translate(o.Vec)
	case OpRotate:
		t.Rotate(o.Angle, o.Vec)
	case OpScale:
		t.Scale(o.Vec)
	}
}

// Transformer is the renderer's matrix-stack primitive. Ops applied after a
// PushMatrix are expressed in the frame established by earlier ops.
type Transformer interface {
	PushMatrix()
	PopMatrix()
	Translate(v mgl64.Vec3)
	Rotate(angleDeg float64, axis mgl64.Vec3)
	Scale(v mgl64.Vec3)
}

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)
