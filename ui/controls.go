package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/input"
)

// actionLabels are the help panel's descriptions of each action.
var actionLabels = map[input.Action]string{
	input.ActionForward:           "Drive forward",
	input.ActionBack:              "Reverse",
	input.ActionTurnLeft:          "Steer left",
	input.ActionTurnRight:         "Steer right",
	input.ActionToggleLeftDoor:    "Left door",
	input.ActionToggleRightDoor:   "Right door",
	input.ActionToggleGarage:      "Garage door",
	input.ActionCycleCamera:       "Cycle camera",
	input.ActionAzimuthDecrease:   "Orbit left",
	input.ActionAzimuthIncrease:   "Orbit right",
	input.ActionElevationIncrease: "Orbit up",
	input.ActionElevationDecrease: "Orbit down",
	input.ActionTogglePose:        "Pose panel",
	input.ActionTogglePerf:        "Timing panel",
	input.ActionReset:             "Reset",
	input.ActionToggleHelp:        "Help",
	input.ActionQuit:              "Quit",
}

// HelpLine is one row of the help panel.
type HelpLine struct {
	Label string
	Keys  string
}

// HelpLines lists every bound action with its keys, in action order.
// Unbound actions are skipped.
func HelpLines(km *input.KeyMap) []HelpLine {
	var lines []HelpLine
	for _, a := range input.Actions() {
		keys := km.Keys(a)
		if len(keys) == 0 {
			continue
		}
		label, ok := actionLabels[a]
		if !ok {
			label = a.String()
		}
		lines = append(lines, HelpLine{Label: label, Keys: strings.ToUpper(strings.Join(keys, " / "))})
	}
	return lines
}

// HelpPanel renders the key binding reference.
type HelpPanel struct {
	renderer *Renderer
	lines    []HelpLine
	width    int32
}

// NewHelpPanel creates a help panel for the given bindings.
func NewHelpPanel(km *input.KeyMap, width int32) *HelpPanel {
	return &HelpPanel{
		renderer: NewRenderer(),
		lines:    HelpLines(km),
		width:    width,
	}
}

// Draw renders the panel centered on screen.
func (h *HelpPanel) Draw(screenW, screenH int32) {
	r := h.renderer
	lineHeight := r.Theme.LineHeight + 2
	height := int32(len(h.lines))*lineHeight + r.Theme.Padding*2 + 24

	x := (screenW - h.width) / 2
	y := (screenH - height) / 2
	gui.Panel(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(h.width), Height: float32(height)}, "Controls")

	cy := y + 24 + r.Theme.Padding
	for _, line := range h.lines {
		gui.Label(rl.Rectangle{X: float32(x + r.Theme.Padding), Y: float32(cy), Width: 160, Height: float32(lineHeight)}, line.Label)
		keyText := fmt.Sprintf("[%s]", line.Keys)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+h.width-r.Theme.Padding-keyWidth, cy+3, r.Theme.FontSize, rl.DarkGray)
		cy += lineHeight
	}
}
