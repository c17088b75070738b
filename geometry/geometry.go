// Package geometry holds the static shape data for every part of the vehicle
// and the environment. Shapes are expressed in the local frame of the part
// they belong to; placing them is the transform composer's job.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/material"
)

// Kind is the primitive a shape is drawn with.
type Kind uint8

const (
	KindBox      Kind = iota // Center, Size
	KindCylinder             // Center (start), End, Radius (start), Radius2 (end)
	KindSphere               // Center, Radius
	KindRing                 // torus in the local XY plane: Center, Radius (major), Radius2 (minor)
	KindDisc                 // disc in the local XY plane facing +Z: Center, Radius
	KindPlane                // horizontal quad: Center, Size.X × Size.Z
)

// Shape is one drawable primitive.
type Shape struct {
	Kind     Kind
	Material material.Material
	Center   mgl64.Vec3
	End      mgl64.Vec3
	Size     mgl64.Vec3
	Radius   float64
	Radius2  float64

	// Shade scales the material colour; 0 means unshaded.
	Shade float32
}

func box(m material.Material, cx, cy, cz, sx, sy, sz float64) Shape {
	return Shape{Kind: KindBox, Material: m, Center: mgl64.Vec3{cx, cy, cz}, Size: mgl64.Vec3{sx, sy, sz}}
}

func cylinder(m material.Material, start, end mgl64.Vec3, r0, r1 float64) Shape {
	return Shape{Kind: KindCylinder, Material: m, Center: start, End: end, Radius: r0, Radius2: r1}
}

func sphere(m material.Material, cx, cy, cz, r float64) Shape {
	return Shape{Kind: KindSphere, Material: m, Center: mgl64.Vec3{cx, cy, cz}, Radius: r}
}

// Chassis plan profile: half widths at the front, middle and rear stations.
const (
	chassisFrontZ = 1.75
	chassisMidZ   = 0.70
	chassisRearZ  = -1.75

	chassisFrontHalf = 1.40 / 2
	chassisMidHalf   = 1.55 / 2
	chassisRearHalf  = 1.70 / 2
)

// ChassisHalfWidth returns the chassis half width at longitudinal station z,
// interpolated linearly between the front, middle and rear stations.
func ChassisHalfWidth(z float64) float64 {
	if z >= chassisMidZ {
		t := (z - chassisFrontZ) / (chassisMidZ - chassisFrontZ)
		return chassisFrontHalf + t*(chassisMidHalf-chassisFrontHalf)
	}
	t := (z - chassisMidZ) / (chassisRearZ - chassisMidZ)
	return chassisMidHalf + t*(chassisRearHalf-chassisMidHalf)
}

// Body returns the fixed shell of the vehicle in the body frame.
func Body() []Shape {
	return []Shape{
		// Lower tub and floor
		box(material.CarRed, 0, 0.42, 0, 2*chassisMidHalf, 0.34, chassisFrontZ-chassisRearZ),
		box(material.CarbonDark, 0, 0.27, 0, 2*chassisMidHalf-0.1, 0.04, chassisFrontZ-chassisRearZ-0.2),

		// Hood and front end
		box(material.HoodBlue, 0, 0.62, 1.22, 2*chassisFrontHalf, 0.06, 1.0),
		box(material.CarbonDark, 0, 0.36, 1.80, 2*chassisFrontHalf, 0.18, 0.10),

		// Fenders over the wheel arches
		box(material.FenderMetal, -chassisFrontHalf, 0.64, 1.25, 0.12, 0.05, 0.62),
		box(material.FenderMetal, chassisFrontHalf, 0.64, 1.25, 0.12, 0.05, 0.62),
		box(material.FenderMetal, -chassisRearHalf+0.02, 0.66, -1.25, 0.14, 0.05, 0.66),
		box(material.FenderMetal, chassisRearHalf-0.02, 0.66, -1.25, 0.14, 0.05, 0.66),

		// Rear deck and bumper
		box(material.CarRed, 0, 0.66, -1.30, 2*chassisRearHalf-0.1, 0.10, 0.90),
		box(material.CarbonDark, 0, 0.36, -1.80, 2*chassisRearHalf, 0.18, 0.10),

		// Dashboard
		box(material.CarbonDark, 0, 0.70, 0.72, 1.30, 0.10, 0.22),

		// A and C pillars
		cylinder(material.Metal, mgl64.Vec3{-0.66, 0.62, 0.78}, mgl64.Vec3{-0.60, 1.06, 0.30}, 0.025, 0.025),
		cylinder(material.Metal, mgl64.Vec3{0.66, 0.62, 0.78}, mgl64.Vec3{0.60, 1.06, 0.30}, 0.025, 0.025),
		cylinder(material.Metal, mgl64.Vec3{-0.70, 0.70, -0.85}, mgl64.Vec3{-0.60, 1.06, -0.55}, 0.03, 0.03),
		cylinder(material.Metal, mgl64.Vec3{0.70, 0.70, -0.85}, mgl64.Vec3{0.60, 1.06, -0.55}, 0.03, 0.03),

		// Roof
		box(material.CarRed, 0, 1.07, -0.12, 1.24, 0.04, 0.90),

		// Glass last so translucent shapes draw over the shell
		box(material.Glass, 0, 0.84, 0.54, 1.26, 0.42, 0.03),
		box(material.Glass, 0, 0.88, -0.72, 1.26, 0.32, 0.03),
	}
}

// Wheel returns a tyre of the given radius and width with its rim.
// The rotation axis is local +Z; the tyre spans z ∈ [0, width].
func Wheel(radius, width float64) []Shape {
	rimZ := width + 0.003
	shapes := []Shape{
		cylinder(material.Rubber, mgl64.Vec3{}, mgl64.Vec3{0, 0, width}, radius, radius),
		{Kind: KindDisc, Material: material.Rim, Center: mgl64.Vec3{0, 0, rimZ}, Radius: radius * 0.80},
		{Kind: KindDisc, Material: material.Metal, Center: mgl64.Vec3{0, 0, rimZ + 0.001}, Radius: radius * 0.30},
	}

	// Five spokes between hub and rim
	const spokes = 5
	for i := 0; i < spokes; i++ {
		a := float64(i) * 2 * math.Pi / spokes
		c, s := math.Cos(a), math.Sin(a)
		shapes = append(shapes, cylinder(material.Metal,
			mgl64.Vec3{radius * 0.30 * c, radius * 0.30 * s, rimZ + 0.004},
			mgl64.Vec3{radius * 0.55 * c, radius * 0.55 * s, rimZ + 0.004},
			0.0225, 0.0225))
	}
	return shapes
}

// DoorSpec locates a door panel on the chassis side.
type DoorSpec struct {
	FrontZ    float64
	RearZ     float64
	BottomY   float64
	TopY      float64
	Thickness float64
}

func sideSign(left bool) float64 {
	if left {
		return -1
	}
	return 1
}

// DoorPivot returns the hinge point: the outer front bottom corner of the
// panel, on the hinge line.
func DoorPivot(left bool, d DoorSpec) mgl64.Vec3 {
	x := sideSign(left) * (ChassisHalfWidth(d.FrontZ) + d.Thickness)
	return mgl64.Vec3{x, d.BottomY, d.FrontZ}
}

// Door returns the closed door panel and its window in the body frame.
func Door(left bool, d DoorSpec) []Shape {
	sign := sideSign(left)
	half := (ChassisHalfWidth(d.FrontZ) + ChassisHalfWidth(d.RearZ)) / 2
	x := sign * (half + d.Thickness/2)
	midZ := (d.FrontZ + d.RearZ) / 2
	length := d.FrontZ - d.RearZ
	height := d.TopY - d.BottomY

	return []Shape{
		box(material.CarRed, x, d.BottomY+height/2, midZ, d.Thickness, height, length),
		box(material.Metal, x+sign*d.Thickness*0.6, d.TopY-0.12, d.FrontZ-0.35, 0.02, 0.03, 0.14),
		box(material.Glass, x-sign*d.Thickness*0.3, d.TopY+0.11, midZ+0.05, 0.02, 0.22, length-0.2),
	}
}

// SteeringColumn returns a column of the given length along local +Z.
func SteeringColumn(length, radius float64) []Shape {
	return []Shape{
		cylinder(material.Metal, mgl64.Vec3{}, mgl64.Vec3{0, 0, length}, radius, radius),
		{Kind: KindDisc, Material: material.Metal, Center: mgl64.Vec3{0, 0, length}, Radius: radius},
	}
}

// SteeringWheel returns the rim and three spokes in the local XY plane.
func SteeringWheel() []Shape {
	shapes := []Shape{
		{Kind: KindRing, Material: material.Rubber, Radius: 0.13, Radius2: 0.03},
	}
	for _, deg := range []float64{90, 330, 210} {
		a := mgl64.DegToRad(deg)
		tip := mgl64.Vec3{-math.Sin(a) * 0.12, math.Cos(a) * 0.12, 0}
		shapes = append(shapes, cylinder(material.Metal, mgl64.Vec3{}, tip, 0.01, 0.01))
	}
	return shapes
}

// GarageSpec sizes the garage and its door.
type GarageSpec struct {
	Width, Depth, Height float64
	DoorWidth            float64
	DoorHeight           float64
	DoorThickness        float64
}

// GarageShell returns the walls and roof in the garage frame, whose origin
// is the bottom centre of the front opening. The garage extends toward +Z.
func GarageShell(g GarageSpec) []Shape {
	const wall = 0.2
	jamb := (g.Width - g.DoorWidth) / 2
	lintel := g.Height - g.DoorHeight

	return []Shape{
		box(material.Wood, 0, g.Height/2, g.Depth, g.Width, g.Height, wall),
		box(material.Wood, -g.Width/2, g.Height/2, g.Depth/2, wall, g.Height, g.Depth),
		box(material.Wood, g.Width/2, g.Height/2, g.Depth/2, wall, g.Height, g.Depth),
		box(material.Metal, 0, g.Height+wall/2, g.Depth/2, g.Width+wall, wall, g.Depth+wall),
		box(material.Wood, -(g.DoorWidth+jamb)/2, g.Height/2, 0, jamb, g.Height, wall),
		box(material.Wood, (g.DoorWidth+jamb)/2, g.Height/2, 0, jamb, g.Height, wall),
		box(material.Wood, 0, g.DoorHeight+lintel/2, 0, g.DoorWidth, lintel, wall),
		{Kind: KindPlane, Material: material.CarbonDark, Center: mgl64.Vec3{0, 0.005, g.Depth / 2}, Size: mgl64.Vec3{g.Width, 0, g.Depth}},
	}
}

// GarageDoor returns the closed door panel in the door frame, hanging from
// the hinge line at the top of the opening.
func GarageDoor(g GarageSpec) []Shape {
	return []Shape{
		box(material.Metal, 0, g.DoorHeight/2, 0, g.DoorWidth, g.DoorHeight, g.DoorThickness),
	}
}

// Tree returns a trunk and crown rooted at the local origin.
func Tree() []Shape {
	return []Shape{
		box(material.Wood, 0, 1.0, 0, 0.25, 4.0, 0.25),
		sphere(material.Grass, 0, 2.3, 0, 1.1),
	}
}

// LampPost returns a pole and bulb rooted at the local origin.
func LampPost() []Shape {
	return []Shape{
		box(material.Metal, 0, 1.5, 0, 0.12, 3.0, 0.12),
		sphere(material.Glass, 0, 3.0, 0, 0.18),
	}
}

// Ground returns a checkered square of the given half size split into
// tiles × tiles quads, alternating light and dark shades.
func Ground(halfSize float64, tiles int) []Shape {
	if tiles < 1 {
		tiles = 1
	}
	step := 2 * halfSize / float64(tiles)
	shapes := make([]Shape, 0, tiles*tiles)
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			shade := float32(0.8)
			if (i+j)%2 == 1 {
				shade = 0.3
			}
			shapes = append(shapes, Shape{
				Kind:     KindPlane,
				Material: material.Wood,
				Center:   mgl64.Vec3{-halfSize + (float64(i)+0.5)*step, -0.01, -halfSize + (float64(j)+0.5)*step},
				Size:     mgl64.Vec3{step, 0, step},
				Shade:    shade,
			})
		}
	}
	return shapes
}

// RingSegments splits a ring shape into n straight tube segments, returned as
// start/end pairs in the shape's frame. Renderers without a torus primitive
// draw each pair as a cylinder of radius s.Radius2.
func RingSegments(s Shape, n int) [][2]mgl64.Vec3 {
	if n < 3 {
		n = 3
	}
	point := func(i int) mgl64.Vec3 {
		a := float64(i) * 2 * math.Pi / float64(n)
		return s.Center.Add(mgl64.Vec3{math.Cos(a) * s.Radius, math.Sin(a) * s.Radius, 0})
	}
	segs := make([][2]mgl64.Vec3, n)
	for i := range segs {
		segs[i] = [2]mgl64.Vec3{point(i), point(i + 1)}
	}
	return segs
}
