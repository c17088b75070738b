package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garage/vehicle"
)

// Evaluator scores fixed-ratio steering against true Ackermann geometry for
// a vehicle with the given wheelbase and track.
type Evaluator struct {
	Wheelbase float64
	Track     float64
	MaxSteer  float64 // degrees
	Samples   int     // steering angles sampled per side
}

// Reference returns the true inner and outer wheel angles in degrees for a
// bicycle-model steering angle of steer degrees (steer > 0).
func (e Evaluator) Reference(steer float64) (inner, outer float64) {
	if steer <= 0 {
		return 0, 0
	}
	radius := e.Wheelbase / math.Tan(mgl64.DegToRad(steer))
	inner = mgl64.RadToDeg(math.Atan(e.Wheelbase / (radius - e.Track/2)))
	outer = mgl64.RadToDeg(math.Atan(e.Wheelbase / (radius + e.Track/2)))
	return inner, outer
}

// Error returns the RMS wheel angle error in degrees over steering angles
// sampled across [-MaxSteer, MaxSteer], both front wheels.
func (e Evaluator) Error(ack vehicle.Ackermann) float64 {
	n := e.Samples
	if n < 1 {
		n = 1
	}
	var sum float64
	var count int
	for i := 1; i <= n; i++ {
		mag := e.MaxSteer * float64(i) / float64(n)
		inner, outer := e.Reference(mag)
		for _, sign := range []float64{1, -1} {
			steer := sign * mag
			// Positive steer turns toward -X, so the left wheel is inside
			wantLeft, wantRight := sign*inner, sign*outer
			if sign < 0 {
				wantLeft, wantRight = sign*outer, sign*inner
			}
			dl := ack.Delta(steer, true, true) - wantLeft
			dr := ack.Delta(steer, false, true) - wantRight
			sum += dl*dl + dr*dr
			count += 2
		}
	}
	return math.Sqrt(sum / float64(count))
}

// Evaluate scores a raw parameter vector (inner, outer). Values outside the
// parameter bounds are clamped and penalised by their squared excess.
func (e Evaluator) Evaluate(params *ParamVector, raw []float64) float64 {
	v := params.Clamp(raw)
	var penalty float64
	for i := range v {
		d := raw[i] - v[i]
		penalty += d * d
	}
	return e.Error(vehicle.Ackermann{InnerRatio: v[0], OuterRatio: v[1]}) + 100*penalty
}
