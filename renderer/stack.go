package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// MatrixStack applies rig transforms to the rlgl matrix stack. It must be
// used between BeginMode3D and EndMode3D.
type MatrixStack struct {
	depth int
}

// PushMatrix saves the current model-view matrix.
func (m *MatrixStack) PushMatrix() {
	rl.PushMatrix()
	m.depth++
}

// PopMatrix restores the last saved matrix.
func (m *MatrixStack) PopMatrix() {
	if m.depth == 0 {
		return
	}
	rl.PopMatrix()
	m.depth--
}

// Translate post-multiplies a translation.
func (m *MatrixStack) Translate(v mgl64.Vec3) {
	rl.Translatef(float32(v[0]), float32(v[1]), float32(v[2]))
}

// Rotate post-multiplies a rotation of angleDeg degrees about axis.
func (m *MatrixStack) Rotate(angleDeg float64, axis mgl64.Vec3) {
	rl.Rotatef(float32(angleDeg), float32(axis[0]), float32(axis[1]), float32(axis[2]))
}

// Scale post-multiplies a scale.
func (m *MatrixStack) Scale(v mgl64.Vec3) {
	rl.Scalef(float32(v[0]), float32(v[1]), float32(v[2]))
}

// Depth returns the number of unmatched pushes.
func (m *MatrixStack) Depth() int {
	return m.depth
}
