package game

import (
	"log/slog"

	"github.com/pthm-cable/garage/input"
	"github.com/pthm-cable/garage/telemetry"
)

// recordEvent logs an input event to events.csv as it is applied.
func (g *Game) recordEvent(tick uint64, ev input.Event) {
	if err := g.outputManager.WriteEvent(telemetry.NewEventRecord(tick, ev)); err != nil {
		slog.Error("failed to write event", "error", err)
	}
}

// recordTelemetry folds the current snapshot into the trip and writes pose
// and perf rows at their configured intervals.
func (g *Game) recordTelemetry() {
	g.trip.Observe(g.snap)

	tick := g.snap.Tick
	tc := g.cfg.Telemetry
	if tc.PoseInterval > 0 && tick%uint64(tc.PoseInterval) == 0 {
		if err := g.outputManager.WritePose(telemetry.NewPoseRecord(g.snap)); err != nil {
			slog.Error("failed to write pose", "error", err)
		}
	}

	if tc.PerfInterval <= 0 || tick%uint64(tc.PerfInterval) != 0 {
		return
	}
	perfStats := g.perfCollector.Stats()
	if g.logStats {
		perfStats.LogStats()
	}
	if err := g.outputManager.WritePerf(perfStats, tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
