package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/ui"
)

// drawOverlays draws the 2D layer over the scene.
func (g *Game) drawOverlays() {
	g.hud.Draw(ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Tick:         g.snap.Tick,
		FPS:          rl.GetFPS(),
		CameraMode:   g.snap.CameraMode.String(),
		HelpKey:      g.helpKey,
		ScreenHeight: g.screenHeight,
	})

	if g.overlays.IsEnabled(ui.OverlayPose) {
		data := &ui.PoseData{Snapshot: g.snap}
		if prop, dist, ok := g.scene.NearestProp(g.snap.Position); ok {
			data.NearestProp = prop.Kind.String()
			data.NearestDist = dist
		}
		g.uiRenderer.DrawPanelDescriptor(g.posePanel, data, g.screenWidth, g.screenHeight)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if g.snap.ShowHelp {
		g.help.Draw(g.screenWidth, g.screenHeight)
	}
}
