package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"github.com/pthm-cable/garage/sim"
)

// TripStats summarises a drive.
type TripStats struct {
	Ticks       uint64  `csv:"ticks"`
	MovingTicks uint64  `csv:"moving_ticks"`
	Distance    float64 `csv:"distance"`
	NetHeading  float64 `csv:"net_heading"`

	// Absolute steering angle distribution over all ticks
	SteerP50 float64 `csv:"steer_p50"`
	SteerP90 float64 `csv:"steer_p90"`
	SteerMax float64 `csv:"steer_max"`

	DoorToggles   int `csv:"door_toggles"`
	GarageToggles int `csv:"garage_toggles"`
}

// TripRecorder accumulates TripStats from successive snapshots.
type TripRecorder struct {
	started bool
	last    sim.Snapshot
	first   float64
	steer   []float64
	stats   TripStats
}

// Observe folds one snapshot into the trip.
func (r *TripRecorder) Observe(s sim.Snapshot) {
	if !r.started {
		r.started = true
		r.first = s.Heading
		r.last = s
	}

	step := s.Position.Sub(r.last.Position).Len()
	if step > 0 {
		r.stats.MovingTicks++
		r.stats.Distance += step
	}
	if (s.LeftDoorAngle != 0) != (r.last.LeftDoorAngle != 0) {
		r.stats.DoorToggles++
	}
	if (s.RightDoorAngle != 0) != (r.last.RightDoorAngle != 0) {
		r.stats.DoorToggles++
	}
	if (s.GarageDoorAngle != 0) != (r.last.GarageDoorAngle != 0) {
		r.stats.GarageToggles++
	}

	r.stats.Ticks++
	r.stats.NetHeading = s.Heading - r.first
	r.steer = append(r.steer, math.Abs(s.SteerAngle))
	r.last = s
}

// Stats returns the trip summary so far.
func (r *TripRecorder) Stats() TripStats {
	out := r.stats
	if len(r.steer) == 0 {
		return out
	}
	sorted := make([]float64, len(r.steer))
	copy(sorted, r.steer)
	sort.Float64s(sorted)
	out.SteerP50 = Percentile(sorted, 0.50)
	out.SteerP90 = Percentile(sorted, 0.90)
	out.SteerMax = sorted[len(sorted)-1]
	return out
}

// Percentile calculates the p-th percentile of a sorted slice by linear
// interpolation. p is in [0, 1]. Returns 0 for an empty slice.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	idx := p * float64(n-1)
	lo := int(idx)
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// LogValue implements slog.LogValuer for structured logging.
func (s TripStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("ticks", s.Ticks),
		slog.Uint64("moving_ticks", s.MovingTicks),
		slog.Float64("distance", s.Distance),
		slog.Float64("net_heading", s.NetHeading),
		slog.Float64("steer_p50", s.SteerP50),
		slog.Float64("steer_p90", s.SteerP90),
		slog.Float64("steer_max", s.SteerMax),
		slog.Int("door_toggles", s.DoorToggles),
		slog.Int("garage_toggles", s.GarageToggles),
	)
}
