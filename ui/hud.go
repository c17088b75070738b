package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/sim"
	"github.com/pthm-cable/garage/telemetry"
)

// HUDData holds all the data needed to render the status line.
type HUDData struct {
	Title        string
	Tick         uint64
	FPS          int32
	CameraMode   string
	HelpKey      string
	ScreenHeight int32
}

// HUD renders the always-on status line.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Camera: %s", data.Tick, data.FPS, data.CameraMode),
		10, 35, 16, rl.LightGray,
	)
	if data.HelpKey != "" {
		rl.DrawText(fmt.Sprintf("[%s] help", data.HelpKey), 10, data.ScreenHeight-25, 14, rl.Gray)
	}
}

// PoseData is what the pose panel reads.
type PoseData struct {
	Snapshot    sim.Snapshot
	NearestProp string
	NearestDist float64
}

func pose(data any) *PoseData {
	return data.(*PoseData)
}

// PosePanel describes the vehicle pose readout. Steering bars span the
// configured limits.
func PosePanel(maxSteer, maxWheelRotation, doorAngle, garageAngle float32) PanelDescriptor {
	wheel := func(i int, label string) FieldDescriptor {
		return FieldDescriptor{
			Label:  label,
			Widget: WidgetCenteredBar,
			Range:  Symmetric(maxSteer * 1.2),
			Getter: func(d any) float32 { return float32(pose(d).Snapshot.Wheels[i].Delta) },
		}
	}

	return PanelDescriptor{
		Title:  "Vehicle",
		Width:  280,
		Anchor: AnchorTopRight,
		Sections: []SectionDescriptor{
			{
				Title: "Pose",
				Fields: []FieldDescriptor{
					{Label: "Position", Widget: WidgetText, TextGetter: func(d any) string {
						p := pose(d).Snapshot.Position
						return fmt.Sprintf("%.2f, %.2f, %.2f", p.X(), p.Y(), p.Z())
					}},
					{Label: "Heading", Widget: WidgetText, Format: "%.1f deg", Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.Heading)
					}},
					{Label: "Wheel spin", Widget: WidgetText, Format: "%.0f deg", Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.WheelSpin)
					}},
				},
			},
			{
				Title: "Steering",
				Fields: []FieldDescriptor{
					{Label: "Steer", Widget: WidgetCenteredBar, Range: Symmetric(maxSteer), Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.SteerAngle)
					}},
					wheel(0, "Front left"),
					wheel(1, "Front right"),
					{Label: "Wheel", Widget: WidgetCenteredBar, Range: Symmetric(maxWheelRotation), Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.WheelRotation)
					}},
				},
			},
			{
				Title: "Hinges",
				Fields: []FieldDescriptor{
					{Label: "Left door", Widget: WidgetBar, Range: FieldRange{Max: doorAngle}, Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.LeftDoorAngle)
					}},
					{Label: "Right door", Widget: WidgetBar, Range: FieldRange{Max: doorAngle}, Getter: func(d any) float32 {
						return -float32(pose(d).Snapshot.RightDoorAngle)
					}},
					{Label: "Garage", Widget: WidgetBar, Range: FieldRange{Max: garageAngle}, Getter: func(d any) float32 {
						return float32(pose(d).Snapshot.GarageDoorAngle)
					}},
				},
			},
			{
				Title:   "Surroundings",
				Visible: func(d any) bool { return pose(d).NearestProp != "" },
				Fields: []FieldDescriptor{
					{Label: "Nearest", Widget: WidgetText, TextGetter: func(d any) string {
						p := pose(d)
						return fmt.Sprintf("%s at %.1f", p.NearestProp, p.NearestDist)
					}},
				},
			},
		},
	}
}

// PerfPanel renders the per-phase frame timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y
	phases := telemetry.Phases()
	p.renderer.DrawPanel(x-6, y-6, 250, int32(len(phases))*14+46)

	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Avg: %s | FPS: %.0f", stats.AvgTickDuration.Round(time.Microsecond), stats.FPS), x, y, 14, rl.Yellow)
	y += 16

	for _, ph := range phases {
		pct := stats.PhasePct[ph]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", ph, stats.PhaseAvg[ph].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
