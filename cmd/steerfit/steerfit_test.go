package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/vehicle"
)

func testEvaluator() Evaluator {
	return Evaluator{Wheelbase: 2.5, Track: 1.56, MaxSteer: 30, Samples: 30}
}

func TestReference(t *testing.T) {
	e := testEvaluator()

	inner, outer := e.Reference(30)
	if math.Abs(inner-35.15) > 0.05 {
		t.Errorf("expected inner ≈ 35.15, got %f", inner)
	}
	if math.Abs(outer-26.06) > 0.05 {
		t.Errorf("expected outer ≈ 26.06, got %f", outer)
	}

	// Small angles converge on the bicycle angle
	inner, outer = e.Reference(0.01)
	if math.Abs(inner-0.01) > 1e-4 || math.Abs(outer-0.01) > 1e-4 {
		t.Errorf("expected ≈ 0.01 for both wheels, got %f / %f", inner, outer)
	}

	if inner, outer := e.Reference(0); inner != 0 || outer != 0 {
		t.Errorf("expected zero for straight ahead, got %f / %f", inner, outer)
	}
}

func TestErrorGrowsWithSteer(t *testing.T) {
	parallel := vehicle.Ackermann{InnerRatio: 1, OuterRatio: 1}
	narrow := Evaluator{Wheelbase: 2.5, Track: 1.56, MaxSteer: 5, Samples: 10}
	wide := testEvaluator()

	if narrow.Error(parallel) <= 0 {
		t.Errorf("expected positive error, got %f", narrow.Error(parallel))
	}
	if narrow.Error(parallel) >= wide.Error(parallel) {
		t.Errorf("expected parallel steering to degrade with angle, got %f >= %f",
			narrow.Error(parallel), wide.Error(parallel))
	}
}

func TestFitImprovesOnDefaults(t *testing.T) {
	e := testEvaluator()
	params := NewParamVector()

	defaultErr := e.Evaluate(params, params.DefaultVector())
	calls := 0
	best, bestErr, _ := Fit(e, params, 300, func([]float64, float64) { calls++ })

	if calls == 0 {
		t.Fatal("expected evaluations")
	}
	if bestErr >= defaultErr {
		t.Errorf("expected fit error below %f, got %f", defaultErr, bestErr)
	}
	if best[0] <= 1 || best[1] >= 1 {
		t.Errorf("expected inner > 1 > outer, got %f / %f", best[0], best[1])
	}
}

func TestEvaluatePenalisesOutOfBounds(t *testing.T) {
	e := testEvaluator()
	params := NewParamVector()
	in := e.Evaluate(params, []float64{1.6, 0.5})
	out := e.Evaluate(params, []float64{2.6, 0.5})
	if out <= in {
		t.Errorf("expected penalty outside bounds, got %f <= %f", out, in)
	}
}

func TestApplyToConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	params := NewParamVector()
	params.ApplyToConfig(cfg, []float64{1.1, 0.3})
	if cfg.Steering.InnerRatio != 1.1 || cfg.Steering.OuterRatio != 0.5 {
		t.Errorf("expected clamped 1.1 / 0.5, got %f / %f", cfg.Steering.InnerRatio, cfg.Steering.OuterRatio)
	}
	got := params.ExtractFromConfig(cfg)
	if got[0] != 1.1 || got[1] != 0.5 {
		t.Errorf("unexpected extract %v", got)
	}
}
