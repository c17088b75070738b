package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/components"
	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/geometry"
	"github.com/pthm-cable/garage/rig"
	"github.com/pthm-cable/garage/scene"
	"github.com/pthm-cable/garage/sim"
)

// SceneRenderer draws the rig, the ground and the environment props through
// a perspective camera.
type SceneRenderer struct {
	fovy   float32
	parts  [rig.PartCount][]geometry.Shape
	ground []geometry.Shape
	props  map[components.PropKind][]geometry.Shape
	stack  MatrixStack
}

// NewSceneRenderer builds the per-part shape tables from the configuration
// and the rig layout the world was created with.
func NewSceneRenderer(cfg *config.Config, r *rig.Rig) *SceneRenderer {
	doors := sim.DoorSpec(&cfg.Doors)
	garage := sim.GarageSpec(&cfg.Garage)
	layout := r.Layout()

	sr := &SceneRenderer{
		fovy:   float32(cfg.Screen.FOV),
		ground: geometry.Ground(cfg.Derived.GroundHalfSize, cfg.Scene.GroundTiles),
		props: map[components.PropKind][]geometry.Shape{
			components.PropTree:     geometry.Tree(),
			components.PropLampPost: geometry.LampPost(),
		},
	}
	sr.parts[rig.Body] = geometry.Body()
	for i, id := range rig.Wheels {
		m := layout.Wheels[i]
		sr.parts[id] = geometry.Wheel(m.Radius, m.Width)
	}
	sr.parts[rig.DoorLeft] = geometry.Door(true, doors)
	sr.parts[rig.DoorRight] = geometry.Door(false, doors)
	sr.parts[rig.SteeringColumn] = geometry.SteeringColumn(r.ColumnLength(), cfg.SteeringWheel.ColumnRadius)
	sr.parts[rig.SteeringWheel] = geometry.SteeringWheel()
	sr.parts[rig.Garage] = geometry.GarageShell(garage)
	sr.parts[rig.GarageDoor] = geometry.GarageDoor(garage)
	return sr
}

// Camera converts the snapshot's view into a raylib camera.
func (sr *SceneRenderer) Camera(snap sim.Snapshot) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(snap.View.Eye),
		Target:     vec3(snap.View.Target),
		Up:         vec3(snap.View.Up),
		Fovy:       sr.fovy,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders one frame of the 3D scene. Opaque geometry is drawn first,
// translucent geometry second, so glass blends over everything behind it.
func (sr *SceneRenderer) Draw(snap sim.Snapshot, sc *scene.Scene) {
	rl.BeginMode3D(sr.Camera(snap))

	drawShapes(sr.ground, false)
	for _, translucent := range []bool{false, true} {
		snap.Rig.Walk(&sr.stack, func(id rig.PartID) {
			drawShapes(sr.parts[id], translucent)
		})
		sr.drawProps(sc, translucent)
	}
	sr.drawLights(sc)

	rl.EndMode3D()
}

func (sr *SceneRenderer) drawProps(sc *scene.Scene, translucent bool) {
	if sc == nil {
		return
	}
	sc.EachProp(func(pos mgl64.Vec3, prop components.Prop) {
		sr.stack.PushMatrix()
		sr.stack.Translate(pos)
		drawShapes(sr.props[prop.Kind], translucent)
		sr.stack.PopMatrix()
	})
}

// drawLights marks point lights with a small emissive sphere.
func (sr *SceneRenderer) drawLights(sc *scene.Scene) {
	if sc == nil {
		return
	}
	sc.EachLight(func(pos mgl64.Vec3, light components.Light) {
		if light.Kind != components.LightPoint {
			return
		}
		c := rl.Color{
			R: uint8(light.Color[0] * 255),
			G: uint8(light.Color[1] * 255),
			B: uint8(light.Color[2] * 255),
			A: 255,
		}
		rl.DrawSphere(vec3(pos), 0.12, c)
	})
}
