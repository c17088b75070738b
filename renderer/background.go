package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the screen with a vertical sky gradient, lighter
// toward the horizon.
type BackgroundRenderer struct {
	screenW, screenH int32
	top, horizon     rl.Color
}

// NewBackgroundRenderer creates a background from the configured sky colour
// given as RGB components in [0, 1].
func NewBackgroundRenderer(screenW, screenH int32, rgb []float64) *BackgroundRenderer {
	base := [3]float64{0.53, 0.75, 0.92}
	copy(base[:], rgb)

	channel := func(v, lift float64) uint8 {
		v += (1 - v) * lift
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	return &BackgroundRenderer{
		screenW: screenW,
		screenH: screenH,
		top:     rl.Color{R: channel(base[0], 0), G: channel(base[1], 0), B: channel(base[2], 0), A: 255},
		horizon: rl.Color{R: channel(base[0], 0.5), G: channel(base[1], 0.5), B: channel(base[2], 0.5), A: 255},
	}
}

// Color returns the sky colour at the top of the screen.
func (b *BackgroundRenderer) Color() rl.Color {
	return b.top
}

// Draw clears the frame and paints the gradient.
func (b *BackgroundRenderer) Draw() {
	rl.ClearBackground(b.top)
	rl.DrawRectangleGradientV(0, 0, b.screenW, b.screenH, b.top, b.horizon)
}

// Resize updates the target size after a window resize.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW = screenW
	b.screenH = screenH
}
