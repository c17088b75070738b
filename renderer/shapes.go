package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/geometry"
)

const (
	cylinderSides = 16
	ringSegments  = 24
	discDepth     = 0.002
)

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

// shapeColor returns the flat material colour scaled by the shape's shade.
func shapeColor(s geometry.Shape) rl.Color {
	c := s.Material.Color()
	if s.Shade <= 0 {
		return c
	}
	scale := func(v uint8) uint8 {
		f := float32(v) * s.Shade
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// DrawShape draws one primitive in the current model-view frame.
func DrawShape(s geometry.Shape) {
	col := shapeColor(s)
	switch s.Kind {
	case geometry.KindBox:
		rl.DrawCube(vec3(s.Center), float32(s.Size[0]), float32(s.Size[1]), float32(s.Size[2]), col)
	case geometry.KindCylinder:
		rl.DrawCylinderEx(vec3(s.Center), vec3(s.End), float32(s.Radius), float32(s.Radius2), cylinderSides, col)
	case geometry.KindSphere:
		rl.DrawSphere(vec3(s.Center), float32(s.Radius), col)
	case geometry.KindRing:
		r := float32(s.Radius2)
		for _, seg := range geometry.RingSegments(s, ringSegments) {
			rl.DrawCylinderEx(vec3(seg[0]), vec3(seg[1]), r, r, 8, col)
		}
	case geometry.KindDisc:
		end := s.Center.Add(mgl64.Vec3{0, 0, discDepth})
		rl.DrawCylinderEx(vec3(s.Center), vec3(end), float32(s.Radius), float32(s.Radius), 24, col)
	case geometry.KindPlane:
		rl.DrawPlane(vec3(s.Center), rl.Vector2{X: float32(s.Size[0]), Y: float32(s.Size[2])}, col)
	}
}

// drawShapes draws the shapes whose translucency matches the pass.
func drawShapes(shapes []geometry.Shape, translucent bool) {
	for _, s := range shapes {
		if s.Material.Translucent() == translucent {
			DrawShape(s)
		}
	}
}
