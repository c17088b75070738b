// Package game runs the visualizer: it owns the window loop, turns key
// transitions into input events and drives the world, renderer and
// telemetry once per frame.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/input"
	"github.com/pthm-cable/garage/renderer"
	"github.com/pthm-cable/garage/scene"
	"github.com/pthm-cable/garage/sim"
	"github.com/pthm-cable/garage/telemetry"
	"github.com/pthm-cable/garage/ui"
)

// Options configures a Game.
type Options struct {
	Config    *config.Config
	Headless  bool
	LogStats  bool
	OutputDir string
	Script    *sim.Script
}

// Game holds the complete program state.
type Game struct {
	cfg   *config.Config
	world *sim.World
	scene *scene.Scene
	snap  sim.Snapshot

	keymap   *input.KeyMap
	bindings []binding
	events   []input.Event

	// Rendering (nil in headless mode)
	background *renderer.BackgroundRenderer
	sceneDraw  *renderer.SceneRenderer
	hud        *ui.HUD
	help       *ui.HelpPanel
	perfPanel  *ui.PerfPanel
	posePanel  ui.PanelDescriptor
	uiRenderer *ui.Renderer
	overlays   *ui.OverlayRegistry
	helpKey    string

	// Telemetry
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	trip          telemetry.TripRecorder
	logStats      bool

	headless bool
	script   *sim.Script
	quit     bool

	screenWidth, screenHeight int32
}

// NewGameWithOptions builds the world and, unless headless, the renderers.
// The raylib window must already be open in graphics mode.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("game: nil config")
	}

	world, err := sim.NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	km, err := input.NewKeyMap(cfg.Keymap)
	if err != nil {
		return nil, err
	}
	sc := scene.New()
	if err := sc.Populate(&cfg.Scene); err != nil {
		return nil, fmt.Errorf("populating scene: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	g := &Game{
		cfg:           cfg,
		world:         world,
		scene:         sc,
		keymap:        km,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: om,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		script:        opts.Script,
		screenWidth:   int32(cfg.Screen.Width),
		screenHeight:  int32(cfg.Screen.Height),
	}
	world.OnApply = g.recordEvent

	if !g.headless {
		if err := g.initGraphics(); err != nil {
			om.Close()
			return nil, err
		}
	}

	g.snap = world.Snapshot()
	props, lights := sc.Counts()
	slog.Info("world ready",
		"headless", g.headless,
		"props", props,
		"lights", lights,
		"output_dir", om.Dir(),
	)
	return g, nil
}

func (g *Game) initGraphics() error {
	bindings, err := resolveBindings(g.keymap)
	if err != nil {
		return err
	}
	g.bindings = bindings

	// Quit is an ordinary binding
	rl.SetExitKey(rl.KeyNull)

	cfg := g.cfg
	g.background = renderer.NewBackgroundRenderer(g.screenWidth, g.screenHeight, cfg.Scene.Background)
	g.sceneDraw = renderer.NewSceneRenderer(cfg, g.world.Rig())
	g.hud = ui.NewHUD()
	g.help = ui.NewHelpPanel(g.keymap, 320)
	g.perfPanel = ui.NewPerfPanel(16, 70)
	g.uiRenderer = ui.NewRenderer()
	g.overlays = ui.NewOverlayRegistry()
	g.posePanel = ui.PosePanel(
		float32(cfg.Vehicle.MaxSteer),
		float32(cfg.Vehicle.MaxWheelRotation),
		float32(cfg.Doors.OpenAngle),
		float32(cfg.Garage.OpenAngle),
	)
	if keys := g.keymap.Keys(input.ActionToggleHelp); len(keys) > 0 {
		g.helpKey = keys[0]
	}
	return nil
}

// World returns the simulated world.
func (g *Game) World() *sim.World {
	return g.world
}

// Tick returns the number of ticks run so far.
func (g *Game) Tick() uint64 {
	return g.world.TickCount()
}

// Quit reports whether a quit action has been applied.
func (g *Game) Quit() bool {
	return g.quit
}

// apply feeds one event to the overlays and the world.
func (g *Game) apply(ev input.Event) {
	if g.overlays != nil {
		if id, on, ok := g.overlays.HandleAction(ev); ok {
			slog.Debug("overlay toggled", "overlay", string(id), "enabled", on)
		}
	}
	if g.world.Apply(ev) {
		g.quit = true
	}
}

// Update runs one interactive frame up to, but not including, drawing.
func (g *Game) Update() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleResize()
	if !rl.IsWindowFocused() {
		// A key released while unfocused never reports its release
		g.world.Input.Reset()
	}
	g.events = pollInput(g.bindings, g.events)
	for _, ev := range g.events {
		g.apply(ev)
	}

	g.step()
}

// step advances the world one tick and records the new pose.
func (g *Game) step() {
	g.perfCollector.StartPhase(telemetry.PhaseSimulate)
	g.world.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseSnapshot)
	g.snap = g.world.Snapshot()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()
}

// UpdateHeadless runs one frame without a window.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.step()
	g.perfCollector.EndTick()
}

// RunScript replays the configured script headlessly. It stops when the
// script ends, a quit fires or maxTicks (if positive) is reached.
func (g *Game) RunScript(maxTicks uint64) {
	if g.script == nil {
		return
	}
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseSimulate)
	g.quit = g.script.Run(g.world, func(w *sim.World) bool {
		g.perfCollector.StartPhase(telemetry.PhaseSnapshot)
		g.snap = w.Snapshot()
		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.recordTelemetry()
		g.perfCollector.EndTick()

		g.perfCollector.StartTick()
		g.perfCollector.StartPhase(telemetry.PhaseSimulate)
		return maxTicks == 0 || w.TickCount() < maxTicks
	})
}

// Draw renders the current snapshot.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	g.background.Draw()
	g.sceneDraw.Draw(g.snap, g.scene)
	g.drawOverlays()
	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.background.Resize(w, h)
}

// Unload flushes the trip summary and closes output files.
func (g *Game) Unload() {
	trip := g.trip.Stats()
	slog.Info("trip", "stats", trip)
	if err := g.outputManager.WriteTrip(trip); err != nil {
		slog.Error("failed to write trip", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
