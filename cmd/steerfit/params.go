package main

import "github.com/pthm-cable/garage/config"

// ParamSpec defines a single fitted parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the fitted parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the steering ratio parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "inner_ratio", Path: "steering.inner_ratio", Min: 1.0, Max: 1.6, Default: 1.20},
			{Name: "outer_ratio", Path: "steering.outer_ratio", Min: 0.5, Max: 1.0, Default: 0.80},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into the steering section.
// Order matches Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Steering.InnerRatio = clamped[0]
	cfg.Steering.OuterRatio = clamped[1]
}

// ExtractFromConfig reads the current parameter values.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{cfg.Steering.InnerRatio, cfg.Steering.OuterRatio}
}
