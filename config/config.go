// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen        ScreenConfig        `yaml:"screen"`
	Vehicle       VehicleConfig       `yaml:"vehicle"`
	Steering      SteeringConfig      `yaml:"steering"`
	Wheels        WheelsConfig        `yaml:"wheels"`
	Doors         DoorsConfig         `yaml:"doors"`
	SteeringWheel SteeringWheelConfig `yaml:"steering_wheel"`
	Garage        GarageConfig        `yaml:"garage"`
	Camera        CameraConfig        `yaml:"camera"`
	Scene         SceneConfig         `yaml:"scene"`
	Keymap        map[string][]string `yaml:"keymap"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	Title     string  `yaml:"title"`
	FOV       float64 `yaml:"fov"` // vertical field of view in degrees
}

// VehicleConfig holds the per-frame integration steps.
type VehicleConfig struct {
	MoveStep          float64 `yaml:"move_step"`
	TurnFactor        float64 `yaml:"turn_factor"`
	SteerStep         float64 `yaml:"steer_step"`
	WheelSpinStep     float64 `yaml:"wheel_spin_step"`
	MaxSteer          float64 `yaml:"max_steer"`
	WheelRotationStep float64 `yaml:"wheel_rotation_step"`
	MaxWheelRotation  float64 `yaml:"max_wheel_rotation"`
	BodyDrop          float64 `yaml:"body_drop"` // vertical offset of the body shell
}

// SteeringConfig holds the per-wheel steering ratios.
type SteeringConfig struct {
	InnerRatio float64 `yaml:"inner_ratio"`
	OuterRatio float64 `yaml:"outer_ratio"`

	// Reference geometry used only by the steerfit tool
	Wheelbase float64 `yaml:"wheelbase"`
	Track     float64 `yaml:"track"`
}

// WheelConfig places one axle's wheels. X is the right wheel's lateral
// offset; the left wheel mirrors it.
type WheelConfig struct {
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
}

// WheelsConfig holds both axles.
type WheelsConfig struct {
	ReferenceRadius float64     `yaml:"reference_radius"`
	Front           WheelConfig `yaml:"front"`
	Rear            WheelConfig `yaml:"rear"`
}

// DoorsConfig holds the door panel outline and swing.
type DoorsConfig struct {
	OpenAngle float64 `yaml:"open_angle"` // left door; the right door mirrors it
	FrontZ    float64 `yaml:"front_z"`
	RearZ     float64 `yaml:"rear_z"`
	BottomY   float64 `yaml:"bottom_y"`
	TopY      float64 `yaml:"top_y"`
	Thickness float64 `yaml:"thickness"`
}

// SteeringWheelConfig holds the steering column end points.
type SteeringWheelConfig struct {
	ColumnStart  []float64 `yaml:"column_start"`
	ColumnEnd    []float64 `yaml:"column_end"`
	ColumnRadius float64   `yaml:"column_radius"`
}

// GarageConfig holds the garage footprint and door.
type GarageConfig struct {
	CenterX       float64 `yaml:"center_x"`
	CenterZ       float64 `yaml:"center_z"`
	Width         float64 `yaml:"width"`
	Depth         float64 `yaml:"depth"`
	Height        float64 `yaml:"height"`
	DoorWidth     float64 `yaml:"door_width"`
	DoorHeight    float64 `yaml:"door_height"`
	DoorThickness float64 `yaml:"door_thickness"`
	OpenAngle     float64 `yaml:"open_angle"`
}

// CameraConfig holds the orbit defaults and per-mode offsets.
type CameraConfig struct {
	Azimuth      float64 `yaml:"azimuth"`
	Elevation    float64 `yaml:"elevation"`
	Distance     float64 `yaml:"distance"`
	Step         float64 `yaml:"step"`
	MinElevation float64 `yaml:"min_elevation"`
	MaxElevation float64 `yaml:"max_elevation"`
	OrbitHeight  float64 `yaml:"orbit_height"`
	LookAtHeight float64 `yaml:"lookat_height"`
	ChaseBack    float64 `yaml:"chase_back"`
	ChaseHeight  float64 `yaml:"chase_height"`
	InteriorBack float64 `yaml:"interior_back"`
	InteriorSide float64 `yaml:"interior_side"`
	EyeHeight    float64 `yaml:"eye_height"`
	LookAhead    float64 `yaml:"look_ahead"`
	LookDown     float64 `yaml:"look_down"`
}

// LightConfig describes one scene light.
type LightConfig struct {
	Kind     string    `yaml:"kind"` // "directional" or "point"
	Position []float64 `yaml:"position"`
	Color    []float64 `yaml:"color"`
}

// SceneConfig holds the static environment.
type SceneConfig struct {
	GroundSize  float64       `yaml:"ground_size"`
	GroundTiles int           `yaml:"ground_tiles"`
	Trees       [][]float64   `yaml:"trees"` // x, z pairs
	LampPosts   [][]float64   `yaml:"lamp_posts"`
	Lights      []LightConfig `yaml:"lights"`
	Background  []float64     `yaml:"background"`
}

// TelemetryConfig holds output and perf collection settings.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	PoseInterval        int `yaml:"pose_interval"` // ticks between pose records
	PerfInterval        int `yaml:"perf_interval"` // ticks between perf records
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32
	ScreenH32      float32
	GarageFrontZ   float64 // z of the garage's front opening
	GroundHalfSize float64
	RightDoorAngle float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.GarageFrontZ = c.Garage.CenterZ - c.Garage.Depth/2
	c.Derived.GroundHalfSize = c.Scene.GroundSize / 2
	c.Derived.RightDoorAngle = -c.Doors.OpenAngle
}

func (c *Config) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Vehicle.MaxSteer > 0, "vehicle.max_steer must be positive, got %v", c.Vehicle.MaxSteer)
	check(c.Vehicle.MaxWheelRotation > 0, "vehicle.max_wheel_rotation must be positive, got %v", c.Vehicle.MaxWheelRotation)
	check(c.Steering.InnerRatio > 0 && c.Steering.OuterRatio > 0, "steering ratios must be positive")
	check(c.Wheels.Front.Radius > 0 && c.Wheels.Rear.Radius > 0, "wheel radii must be positive")
	check(c.Wheels.ReferenceRadius > 0, "wheels.reference_radius must be positive")
	check(c.Doors.FrontZ > c.Doors.RearZ, "doors.front_z must be ahead of doors.rear_z")
	check(c.Doors.TopY > c.Doors.BottomY, "doors.top_y must be above doors.bottom_y")
	check(len(c.SteeringWheel.ColumnStart) == 3, "steering_wheel.column_start needs 3 components")
	check(len(c.SteeringWheel.ColumnEnd) == 3, "steering_wheel.column_end needs 3 components")
	check(c.Garage.DoorWidth <= c.Garage.Width && c.Garage.DoorHeight <= c.Garage.Height, "garage door larger than garage")
	check(c.Camera.MinElevation <= c.Camera.MaxElevation, "camera.min_elevation above camera.max_elevation")
	check(c.Camera.Distance > 0, "camera.distance must be positive")
	for i, p := range c.Scene.Trees {
		check(len(p) == 2, "scene.trees[%d] needs x and z", i)
	}
	for i, p := range c.Scene.LampPosts {
		check(len(p) == 2, "scene.lamp_posts[%d] needs x and z", i)
	}
	for i, l := range c.Scene.Lights {
		check(l.Kind == "directional" || l.Kind == "point", "scene.lights[%d]: unknown kind %q", i, l.Kind)
		check(len(l.Position) == 3, "scene.lights[%d].position needs 3 components", i)
	}
	check(len(c.Keymap) > 0, "keymap is empty")

	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
