// Package components defines ECS components for the static environment.
package components

import "fmt"

// Position is a world-space location. Y is up.
type Position struct {
	X, Y, Z float64
}

// PropKind identifies a static prop's shape set.
type PropKind uint8

const (
	PropTree PropKind = iota
	PropLampPost
)

func (k PropKind) String() string {
	switch k {
	case PropTree:
		return "tree"
	case PropLampPost:
		return "lamp_post"
	}
	return fmt.Sprintf("prop(%d)", uint8(k))
}

// Prop marks a static environment prop.
type Prop struct {
	Kind PropKind
}

// LightKind selects how a light's position is interpreted.
type LightKind uint8

const (
	// LightDirectional uses Position as a direction toward the light.
	LightDirectional LightKind = iota
	LightPoint
)

// ParseLightKind resolves a config name.
func ParseLightKind(name string) (LightKind, error) {
	switch name {
	case "directional":
		return LightDirectional, nil
	case "point":
		return LightPoint, nil
	}
	return 0, fmt.Errorf("unknown light kind %q", name)
}

// Light is a scene light source.
type Light struct {
	Kind  LightKind
	Color [3]float32
}
