// Package telemetry records frame timing, per-tick pose and applied input
// events, and writes them as CSV.
package telemetry

import "github.com/pthm-cable/garage/input"

// EventRecord is one applied input event.
type EventRecord struct {
	Tick    uint64 `csv:"tick"`
	Action  string `csv:"action"`
	Pressed bool   `csv:"pressed"`
}

// NewEventRecord captures ev as applied at tick.
func NewEventRecord(tick uint64, ev input.Event) EventRecord {
	return EventRecord{Tick: tick, Action: ev.Action.String(), Pressed: ev.Pressed}
}
