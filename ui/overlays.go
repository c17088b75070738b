package ui

import "github.com/pthm-cable/garage/input"

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayPose OverlayID = "pose"
	OverlayPerf OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Action      input.Action // action that toggles it
	Enabled     bool         // initial state
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.Register(OverlayDescriptor{
		ID:          OverlayPose,
		Name:        "Vehicle Pose",
		Description: "Position, steering and hinge readout",
		Action:      input.ActionTogglePose,
		Enabled:     true,
	})
	reg.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Frame Timing",
		Description: "Per-phase frame timing",
		Action:      input.ActionTogglePerf,
	})
	return reg
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Enabled
}

// Toggle switches an overlay on or off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleAction toggles the overlay bound to a pressed action.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleAction(ev input.Event) (OverlayID, bool, bool) {
	if !ev.Pressed {
		return "", false, false
	}
	for _, desc := range r.descriptors {
		if desc.Action == ev.Action {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
