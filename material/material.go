// Package material defines the fixed set of surface materials and their
// lighting coefficients.
package material

import (
	"fmt"
	"image/color"
)

// Material identifies a surface material.
type Material uint8

const (
	Blue Material = iota
	Metal
	Rubber
	Glass
	Wood
	Grass
	CarRed
	HoodBlue
	FenderMetal
	Rim
	CarbonDark

	Count
)

// Properties are classic Phong coefficients (RGBA in [0,1]).
type Properties struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

var names = [Count]string{
	Blue:        "blue",
	Metal:       "metal",
	Rubber:      "rubber",
	Glass:       "glass",
	Wood:        "wood",
	Grass:       "grass",
	CarRed:      "car_red",
	HoodBlue:    "hood_blue",
	FenderMetal: "fender_metal",
	Rim:         "rim",
	CarbonDark:  "carbon_dark",
}

var table = [Count]Properties{
	Blue:        {[4]float32{0.02, 0.02, 0.1, 1}, [4]float32{0.05, 0.05, 0.7, 1}, [4]float32{0.5, 0.5, 0.6, 1}, 40},
	Metal:       {[4]float32{0.15, 0.15, 0.15, 1}, [4]float32{0.6, 0.6, 0.6, 1}, [4]float32{0.9, 0.9, 0.9, 1}, 80},
	Rubber:      {[4]float32{0.02, 0.02, 0.02, 1}, [4]float32{0.05, 0.05, 0.05, 1}, [4]float32{0.1, 0.1, 0.1, 1}, 5},
	Glass:       {[4]float32{0.2, 0.4, 0.45, 0.25}, [4]float32{0.2, 0.4, 0.45, 0.25}, [4]float32{0.8, 0.9, 1, 0.25}, 20},
	Wood:        {[4]float32{0.12, 0.06, 0.02, 1}, [4]float32{0.6, 0.3, 0.12, 1}, [4]float32{0.2, 0.18, 0.15, 1}, 10},
	Grass:       {[4]float32{0, 0.1, 0, 1}, [4]float32{0.1, 0.6, 0.1, 1}, [4]float32{0.2, 0.3, 0.2, 1}, 20},
	CarRed:      {[4]float32{0.2, 0, 0, 1}, [4]float32{0.8, 0.1, 0.1, 1}, [4]float32{0.9, 0.3, 0.3, 1}, 50},
	HoodBlue:    {[4]float32{0, 0, 0.3, 1}, [4]float32{0.2, 0.3, 1, 1}, [4]float32{0.1, 0.1, 0.2, 1}, 10},
	FenderMetal: {[4]float32{0.08, 0.08, 0.09, 1}, [4]float32{0.12, 0.12, 0.13, 1}, [4]float32{0.1, 0.1, 0.1, 1}, 5},
	Rim:         {[4]float32{0.08, 0.08, 0.08, 1}, [4]float32{0.35, 0.35, 0.35, 1}, [4]float32{0.2, 0.2, 0.2, 1}, 40},
	CarbonDark:  {[4]float32{0.02, 0.02, 0.02, 1}, [4]float32{0.08, 0.08, 0.08, 1}, [4]float32{0.15, 0.15, 0.15, 1}, 40},
}

// String returns the material's config name.
func (m Material) String() string {
	if m >= Count {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return names[m]
}

// Parse resolves a config name.
func Parse(name string) (Material, error) {
	for m, n := range names {
		if n == name {
			return Material(m), nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}

// Properties returns the lighting coefficients. Out-of-range values fall back to Metal.
func (m Material) Properties() Properties {
	if m >= Count {
		return table[Metal]
	}
	return table[m]
}

// Translucent reports whether the material must be drawn after opaque geometry.
func (m Material) Translucent() bool {
	return m.Properties().Diffuse[3] < 1
}

// Color flattens the material to an unlit colour: diffuse plus half the
// ambient term, with the diffuse alpha.
func (m Material) Color() color.RGBA {
	p := m.Properties()
	ch := func(i int) uint8 {
		v := p.Diffuse[i] + 0.5*p.Ambient[i]
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: ch(0), G: ch(1), B: ch(2), A: uint8(p.Diffuse[3]*255 + 0.5)}
}
