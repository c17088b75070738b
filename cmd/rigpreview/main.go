// Rig preview tool - poses the vehicle rig directly with sliders, without
// driving, to check wheel steering, hinges and camera framing.
//
// Usage: go run ./cmd/rigpreview [-config file.yaml]
package main

import (
	"flag"
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/renderer"
	"github.com/pthm-cable/garage/scene"
	"github.com/pthm-cable/garage/sim"
	"github.com/pthm-cable/garage/vehicle"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 320
)

// slider draws a labelled slider and returns the new value.
func slider(x, y float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 18, Width: panelWidth - 90, Height: 18},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", v), int32(x+panelWidth-80), int32(y+19), 14, rl.DarkGray)
	return v
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	world, err := sim.NewWorld(cfg)
	if err != nil {
		log.Fatalf("failed to build world: %v", err)
	}
	sc := scene.New()
	if err := sc.Populate(&cfg.Scene); err != nil {
		log.Fatalf("failed to populate scene: %v", err)
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Rig Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	background := renderer.NewBackgroundRenderer(windowWidth, windowHeight, cfg.Scene.Background)
	draw := renderer.NewSceneRenderer(cfg, world.Rig())
	maxSteer := float32(cfg.Vehicle.MaxSteer)
	maxWheel := float32(cfg.Vehicle.MaxWheelRotation)

	for !rl.WindowShouldClose() {
		snap := world.Snapshot()

		rl.BeginDrawing()
		background.Draw()
		draw.Draw(snap, sc)

		panelX := float32(windowWidth - panelWidth)
		gui.Panel(rl.Rectangle{X: panelX - 10, Y: 0, Width: panelWidth + 10, Height: windowHeight}, "Rig")
		panelX += 5
		panelY := float32(35)

		v := &world.Vehicle
		v.Heading = float64(slider(panelX, panelY, "Heading", float32(v.Heading), -180, 180))
		panelY += 45
		v.SteerAngle = float64(slider(panelX, panelY, "Steer angle", float32(v.SteerAngle), -maxSteer, maxSteer))
		panelY += 45
		v.WheelSpin = float64(slider(panelX, panelY, "Wheel spin", float32(v.WheelSpin), -720, 720))
		panelY += 45
		v.WheelRotation = float64(slider(panelX, panelY, "Steering wheel", float32(v.WheelRotation), -maxWheel, maxWheel))
		panelY += 45

		ack := world.Steering()
		ack.InnerRatio = float64(slider(panelX, panelY, "Inner ratio", float32(ack.InnerRatio), 1.0, 1.6))
		panelY += 45
		ack.OuterRatio = float64(slider(panelX, panelY, "Outer ratio", float32(ack.OuterRatio), 0.5, 1.0))
		panelY += 50

		cam := world.Camera
		cam.Azimuth = float64(slider(panelX, panelY, "Camera azimuth", float32(cam.Azimuth), 0, 360))
		panelY += 45
		cam.Elevation = float64(slider(panelX, panelY, "Camera elevation", float32(cam.Elevation),
			float32(cam.Params.MinElevation), float32(cam.Params.MaxElevation)))
		panelY += 50

		world.Doors.LeftOpen = gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 18, Height: 18}, "Left door", world.Doors.LeftOpen)
		world.Doors.RightOpen = gui.CheckBox(rl.Rectangle{X: panelX + 110, Y: panelY, Width: 18, Height: 18}, "Right door", world.Doors.RightOpen)
		world.Garage.Open = gui.CheckBox(rl.Rectangle{X: panelX + 220, Y: panelY, Width: 18, Height: 18}, "Garage", world.Garage.Open)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30}, "Camera: "+cam.Mode.String()) {
			cam.CycleMode()
		}
		if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 30}, "Reset All") {
			world.Reset()
			ack = vehicle.Ackermann{InnerRatio: cfg.Steering.InnerRatio, OuterRatio: cfg.Steering.OuterRatio}
		}
		panelY += 45

		// Sliders write the state directly, so the tree is recomposed here
		// rather than by a tick.
		world.SetSteering(ack)

		for i, w := range snap.Wheels {
			rl.DrawText(fmt.Sprintf("%-18s %6.2f  %7.1f", w.Part, w.Delta, w.Spin),
				int32(panelX), int32(panelY)+int32(i)*16, 14, rl.DarkGray)
		}
		panelY += 75

		rl.DrawText("Press C to copy steering YAML", int32(panelX), int32(panelY), 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(fmt.Sprintf("steering:\n  inner_ratio: %.3f\n  outer_ratio: %.3f\n", ack.InnerRatio, ack.OuterRatio))
		}

		rl.EndDrawing()
	}
}
