package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNew(t *testing.T) {
	cam := New(DefaultParams())

	if cam.Mode != ModeOrbit {
		t.Errorf("expected orbit mode, got %s", cam.Mode)
	}
	if cam.Azimuth != 30 || cam.Elevation != 20 || cam.Distance != 5 {
		t.Errorf("expected (30, 20, 5), got (%f, %f, %f)", cam.Azimuth, cam.Elevation, cam.Distance)
	}
}

func TestCycleModeReturnsAfterThree(t *testing.T) {
	cam := New(DefaultParams())

	want := []Mode{ModeChase, ModeInterior, ModeOrbit}
	for i, m := range want {
		if got := cam.CycleMode(); got != m {
			t.Errorf("cycle %d: expected %s, got %s", i+1, m, got)
		}
	}
}

func TestModeStaysInRange(t *testing.T) {
	cam := New(DefaultParams())
	for i := 0; i < 100; i++ {
		cam.CycleMode()
		if cam.Mode >= modeCount {
			t.Fatalf("mode out of range: %d", cam.Mode)
		}
	}
}

func TestElevationSaturates(t *testing.T) {
	cam := New(DefaultParams())

	for i := 0; i < 50; i++ {
		cam.OrbitUp()
	}
	if cam.Elevation != 89 {
		t.Errorf("expected elevation 89, got %f", cam.Elevation)
	}

	for i := 0; i < 50; i++ {
		cam.OrbitDown()
	}
	if cam.Elevation != -10 {
		t.Errorf("expected elevation -10, got %f", cam.Elevation)
	}
}

func TestAzimuthUnbounded(t *testing.T) {
	cam := New(DefaultParams())

	for i := 0; i < 100; i++ {
		cam.OrbitRight()
	}
	if cam.Azimuth != 530 {
		t.Errorf("expected azimuth 530, got %f", cam.Azimuth)
	}
	cam.OrbitLeft()
	if cam.Azimuth != 525 {
		t.Errorf("expected azimuth 525, got %f", cam.Azimuth)
	}
}

func TestOrbitAdjustIgnoresMode(t *testing.T) {
	cam := New(DefaultParams())
	cam.CycleMode()

	cam.OrbitUp()
	if cam.Elevation != 25 {
		t.Errorf("expected elevation 25 in chase mode, got %f", cam.Elevation)
	}

	// Chase view does not read the orbit parameters
	before := cam.View(mgl64.Vec3{}, 0)
	cam.OrbitRight()
	if after := cam.View(mgl64.Vec3{}, 0); after != before {
		t.Errorf("expected chase view unchanged, got %v vs %v", after, before)
	}
}

func TestOrbitView(t *testing.T) {
	cam := New(DefaultParams())
	cam.Azimuth = 0
	cam.Elevation = 0

	pos := mgl64.Vec3{1, 0, 2}
	v := cam.View(pos, 123)

	if !v.Eye.ApproxEqualThreshold(mgl64.Vec3{6, 1.5, 2}, 1e-9) {
		t.Errorf("expected eye (6, 1.5, 2), got %v", v.Eye)
	}
	if !v.Target.ApproxEqualThreshold(mgl64.Vec3{1, 0.7, 2}, 1e-9) {
		t.Errorf("expected target (1, 0.7, 2), got %v", v.Target)
	}
	if v.Up != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("expected world up, got %v", v.Up)
	}
}

func TestOrbitDistanceFromAnchor(t *testing.T) {
	cam := New(DefaultParams())
	pos := mgl64.Vec3{3, 0, -4}
	anchor := pos.Add(mgl64.Vec3{0, 1.5, 0})

	for _, az := range []float64{0, 30, 135, 270} {
		cam.Azimuth = az
		d := cam.View(pos, 0).Eye.Sub(anchor).Len()
		if math.Abs(d-5) > 1e-9 {
			t.Errorf("azimuth %f: expected distance 5, got %f", az, d)
		}
	}
}

func TestChaseView(t *testing.T) {
	cam := New(DefaultParams())
	cam.Mode = ModeChase

	v := cam.View(mgl64.Vec3{}, 0)
	if !v.Eye.ApproxEqualThreshold(mgl64.Vec3{0, 3, -6}, 1e-9) {
		t.Errorf("expected eye (0, 3, -6), got %v", v.Eye)
	}
	if !v.Target.ApproxEqualThreshold(mgl64.Vec3{0, 0.7, 1}, 1e-9) {
		t.Errorf("expected target (0, 0.7, 1), got %v", v.Target)
	}

	// Eye trails the vehicle when it turns
	v = cam.View(mgl64.Vec3{}, 90)
	if !v.Eye.ApproxEqualThreshold(mgl64.Vec3{-6, 3, 0}, 1e-9) {
		t.Errorf("expected eye (-6, 3, 0), got %v", v.Eye)
	}
}

func TestInteriorView(t *testing.T) {
	cam := New(DefaultParams())
	cam.Mode = ModeInterior

	v := cam.View(mgl64.Vec3{0, 0.2, 0}, 0)
	if !v.Eye.ApproxEqualThreshold(mgl64.Vec3{0.15, 1.1, -0.55}, 1e-9) {
		t.Errorf("expected eye (0.15, 1.1, -0.55), got %v", v.Eye)
	}
	if !v.Target.ApproxEqualThreshold(mgl64.Vec3{0, 1.05, 5}, 1e-9) {
		t.Errorf("expected target (0, 1.05, 5), got %v", v.Target)
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	cam := New(DefaultParams())
	v := cam.View(mgl64.Vec3{2, 0, 2}, 0)
	m := v.Matrix()

	// In view space the target sits on the -Z axis
	p := m.Mul4x1(v.Target.Vec4(1)).Vec3()
	if math.Abs(p.X()) > 1e-9 || math.Abs(p.Y()) > 1e-9 || p.Z() >= 0 {
		t.Errorf("expected target on -Z in view space, got %v", p)
	}
}

func TestReset(t *testing.T) {
	cam := New(DefaultParams())
	cam.CycleMode()
	cam.OrbitRight()
	cam.OrbitDown()

	cam.Reset()
	if cam.Mode != ModeOrbit || cam.Azimuth != 30 || cam.Elevation != 20 {
		t.Errorf("expected defaults after reset, got %s %f %f", cam.Mode, cam.Azimuth, cam.Elevation)
	}
}
