package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Vehicle.MaxSteer != 30 || cfg.Vehicle.MaxWheelRotation != 250 {
		t.Errorf("expected steer/wheel limits 30/250, got %v/%v", cfg.Vehicle.MaxSteer, cfg.Vehicle.MaxWheelRotation)
	}
	if cfg.Steering.InnerRatio != 1.20 || cfg.Steering.OuterRatio != 0.80 {
		t.Errorf("expected ratios 1.20/0.80, got %v/%v", cfg.Steering.InnerRatio, cfg.Steering.OuterRatio)
	}
	if cfg.Camera.MinElevation != -10 || cfg.Camera.MaxElevation != 89 {
		t.Errorf("expected elevation range [-10, 89], got [%v, %v]", cfg.Camera.MinElevation, cfg.Camera.MaxElevation)
	}
	if len(cfg.Keymap["quit"]) != 2 {
		t.Errorf("expected two quit keys, got %v", cfg.Keymap["quit"])
	}
}

func TestDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if math.Abs(cfg.Derived.GarageFrontZ-11) > 1e-9 {
		t.Errorf("expected garage front at z=11, got %f", cfg.Derived.GarageFrontZ)
	}
	if cfg.Derived.RightDoorAngle != -70 {
		t.Errorf("expected right door angle -70, got %f", cfg.Derived.RightDoorAngle)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("expected screen width 1280, got %f", cfg.Derived.ScreenW32)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := "vehicle:\n  max_steer: 40\nkeymap:\n  toggle_help: [f2]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Vehicle.MaxSteer != 40 {
		t.Errorf("expected overridden max_steer 40, got %v", cfg.Vehicle.MaxSteer)
	}
	if cfg.Vehicle.SteerStep != 0.5 {
		t.Errorf("expected default steer_step 0.5, got %v", cfg.Vehicle.SteerStep)
	}
	if got := cfg.Keymap["toggle_help"]; len(got) != 1 || got[0] != "f2" {
		t.Errorf("expected toggle_help [f2], got %v", got)
	}
	if len(cfg.Keymap["forward"]) == 0 {
		t.Error("expected default bindings to survive the merge")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "camera:\n  min_elevation: 50\n  max_elevation: 10\nsteering_wheel:\n  column_end: [1, 2]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"min_elevation", "column_end"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Steering.InnerRatio = 1.33

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if back.Steering.InnerRatio != 1.33 {
		t.Errorf("expected inner ratio 1.33, got %v", back.Steering.InnerRatio)
	}
}
