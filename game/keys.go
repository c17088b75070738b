package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/garage/input"
)

// keyCodes maps the backend-independent key names used in the keymap to
// raylib key codes.
var keyCodes = map[string]int32{
	"a": rl.KeyA, "b": rl.KeyB, "c": rl.KeyC, "d": rl.KeyD, "e": rl.KeyE,
	"f": rl.KeyF, "g": rl.KeyG, "h": rl.KeyH, "i": rl.KeyI, "j": rl.KeyJ,
	"k": rl.KeyK, "l": rl.KeyL, "m": rl.KeyM, "n": rl.KeyN, "o": rl.KeyO,
	"p": rl.KeyP, "q": rl.KeyQ, "r": rl.KeyR, "s": rl.KeyS, "t": rl.KeyT,
	"u": rl.KeyU, "v": rl.KeyV, "w": rl.KeyW, "x": rl.KeyX, "y": rl.KeyY,
	"z": rl.KeyZ,

	"0": rl.KeyZero, "1": rl.KeyOne, "2": rl.KeyTwo, "3": rl.KeyThree, "4": rl.KeyFour,
	"5": rl.KeyFive, "6": rl.KeySix, "7": rl.KeySeven, "8": rl.KeyEight, "9": rl.KeyNine,

	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"escape":    rl.KeyEscape,
	"space":     rl.KeySpace,
	"enter":     rl.KeyEnter,
	"tab":       rl.KeyTab,
	"backspace": rl.KeyBackspace,
	"home":      rl.KeyHome,
	"end":       rl.KeyEnd,

	"f1": rl.KeyF1, "f2": rl.KeyF2, "f3": rl.KeyF3, "f4": rl.KeyF4,
	"f5": rl.KeyF5, "f6": rl.KeyF6, "f7": rl.KeyF7, "f8": rl.KeyF8,
	"f9": rl.KeyF9, "f10": rl.KeyF10, "f11": rl.KeyF11, "f12": rl.KeyF12,
}

// binding is one polled key.
type binding struct {
	key    int32
	action input.Action
}

// resolveBindings turns the key map into raylib key codes. Key names raylib
// cannot poll are errors.
func resolveBindings(km *input.KeyMap) ([]binding, error) {
	names := km.BoundKeys()
	out := make([]binding, 0, len(names))
	for _, name := range names {
		code, ok := keyCodes[name]
		if !ok {
			return nil, fmt.Errorf("keymap: no key named %q", name)
		}
		a, _ := km.Lookup(name)
		out = append(out, binding{key: code, action: a})
	}
	return out, nil
}

// pollInput converts this frame's key transitions into events. Movement
// keys report both edges; other actions fire on press, and camera
// adjustments also fire on key repeat.
func pollInput(bindings []binding, events []input.Event) []input.Event {
	events = events[:0]
	for _, b := range bindings {
		switch {
		case b.action.Continuous():
			if rl.IsKeyPressed(b.key) {
				events = append(events, input.Press(b.action))
			}
			if rl.IsKeyReleased(b.key) {
				events = append(events, input.Release(b.action))
			}
		case rl.IsKeyPressed(b.key):
			events = append(events, input.Press(b.action))
		case b.action.Repeatable() && rl.IsKeyPressedRepeat(b.key):
			events = append(events, input.Press(b.action))
		}
	}
	return events
}
