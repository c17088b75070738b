package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/components"
	"github.com/pthm-cable/garage/config"
)

func TestPopulateDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	s := New()
	if err := s.Populate(&cfg.Scene); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	props, lights := s.Counts()
	if props != 6 || lights != 2 {
		t.Errorf("expected 6 props and 2 lights, got %d and %d", props, lights)
	}

	var trees, lamps int
	s.EachProp(func(_ mgl64.Vec3, p components.Prop) {
		switch p.Kind {
		case components.PropTree:
			trees++
		case components.PropLampPost:
			lamps++
		}
	})
	if trees != 4 || lamps != 2 {
		t.Errorf("expected 4 trees and 2 lamp posts, got %d and %d", trees, lamps)
	}

	var point int
	s.EachLight(func(pos mgl64.Vec3, l components.Light) {
		if l.Kind == components.LightPoint {
			point++
			if !pos.ApproxEqualThreshold(mgl64.Vec3{-8, 3.2, 8}, 1e-9) {
				t.Errorf("expected point light at (-8, 3.2, 8), got %v", pos)
			}
		}
	})
	if point != 1 {
		t.Errorf("expected one point light, got %d", point)
	}
}

func TestPopulateRejectsUnknownLight(t *testing.T) {
	s := New()
	err := s.Populate(&config.SceneConfig{
		Lights: []config.LightConfig{{Kind: "spot", Position: []float64{0, 1, 0}}},
	})
	if err == nil {
		t.Error("expected error for unknown light kind")
	}
}

func TestNearestProp(t *testing.T) {
	s := New()
	if _, _, ok := s.NearestProp(mgl64.Vec3{}); ok {
		t.Error("expected no prop in empty scene")
	}

	s.AddProp(components.PropTree, 10, 0)
	s.AddProp(components.PropLampPost, 0, 3)

	prop, dist, ok := s.NearestProp(mgl64.Vec3{0, 5, 0})
	if !ok {
		t.Fatal("expected a prop")
	}
	if prop.Kind != components.PropLampPost {
		t.Errorf("expected lamp post, got %s", prop.Kind)
	}
	if math.Abs(dist-3) > 1e-9 {
		t.Errorf("expected distance 3, got %f", dist)
	}
}
