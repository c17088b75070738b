// Package scene holds the static environment (props and lights) in an ECS
// world. Nothing in it moves after Populate.
package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/garage/components"
	"github.com/pthm-cable/garage/config"
)

// Scene is the environment store.
type Scene struct {
	world *ecs.World

	propMapper  *ecs.Map2[components.Position, components.Prop]
	lightMapper *ecs.Map2[components.Position, components.Light]
	propFilter  *ecs.Filter2[components.Position, components.Prop]
	lightFilter *ecs.Filter2[components.Position, components.Light]

	props  int
	lights int
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:       world,
		propMapper:  ecs.NewMap2[components.Position, components.Prop](world),
		lightMapper: ecs.NewMap2[components.Position, components.Light](world),
		propFilter:  ecs.NewFilter2[components.Position, components.Prop](world),
		lightFilter: ecs.NewFilter2[components.Position, components.Light](world),
	}
}

// Populate spawns the props and lights listed in the config.
func (s *Scene) Populate(cfg *config.SceneConfig) error {
	for _, p := range cfg.Trees {
		s.AddProp(components.PropTree, p[0], p[1])
	}
	for _, p := range cfg.LampPosts {
		s.AddProp(components.PropLampPost, p[0], p[1])
	}
	for i, l := range cfg.Lights {
		kind, err := components.ParseLightKind(l.Kind)
		if err != nil {
			return fmt.Errorf("scene.lights[%d]: %w", i, err)
		}
		light := components.Light{Kind: kind, Color: [3]float32{1, 1, 1}}
		for c := 0; c < len(l.Color) && c < 3; c++ {
			light.Color[c] = float32(l.Color[c])
		}
		pos := components.Position{X: l.Position[0], Y: l.Position[1], Z: l.Position[2]}
		s.lightMapper.NewEntity(&pos, &light)
		s.lights++
	}
	return nil
}

// AddProp places a prop on the ground at (x, z).
func (s *Scene) AddProp(kind components.PropKind, x, z float64) ecs.Entity {
	pos := components.Position{X: x, Z: z}
	prop := components.Prop{Kind: kind}
	s.props++
	return s.propMapper.NewEntity(&pos, &prop)
}

// Counts returns the number of props and lights.
func (s *Scene) Counts() (props, lights int) {
	return s.props, s.lights
}

// EachProp calls fn for every prop.
func (s *Scene) EachProp(fn func(pos mgl64.Vec3, prop components.Prop)) {
	query := s.propFilter.Query()
	for query.Next() {
		pos, prop := query.Get()
		fn(mgl64.Vec3{pos.X, pos.Y, pos.Z}, *prop)
	}
}

// EachLight calls fn for every light.
func (s *Scene) EachLight(fn func(pos mgl64.Vec3, light components.Light)) {
	query := s.lightFilter.Query()
	for query.Next() {
		pos, light := query.Get()
		fn(mgl64.Vec3{pos.X, pos.Y, pos.Z}, *light)
	}
}

// NearestProp returns the prop closest to p on the ground plane.
func (s *Scene) NearestProp(p mgl64.Vec3) (prop components.Prop, dist float64, ok bool) {
	dist = math.Inf(1)
	s.EachProp(func(pos mgl64.Vec3, pr components.Prop) {
		d := math.Hypot(pos.X()-p.X(), pos.Z()-p.Z())
		if d < dist {
			prop, dist, ok = pr, d, true
		}
	})
	return prop, dist, ok
}
