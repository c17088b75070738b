package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/garage/input"
)

// ScriptStep is one block of a driving script as written in YAML.
//
//	steps:
//	  - press: [toggle_garage]
//	  - hold: [forward, turn_left]
//	    ticks: 120
type ScriptStep struct {
	// Press emits press events at the start of the step. Movement actions
	// stay held until released.
	Press []string `yaml:"press"`
	// Release emits release events at the start of the step.
	Release []string `yaml:"release"`
	// Hold presses movement actions for this step only.
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

type scriptFile struct {
	Steps []ScriptStep `yaml:"steps"`
}

type step struct {
	press   []input.Action
	release []input.Action
	hold    []input.Action
	ticks   int
}

// Script is a parsed, validated driving script.
type Script struct {
	steps []step
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML script. Unknown action names are errors, and
// only movement actions may be held.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}

	s := &Script{steps: make([]step, 0, len(f.Steps))}
	for i, raw := range f.Steps {
		if raw.Ticks < 0 {
			return nil, fmt.Errorf("step %d: negative ticks %d", i, raw.Ticks)
		}
		st := step{ticks: raw.Ticks}
		var err error
		if st.press, err = parseActions(raw.Press); err != nil {
			return nil, fmt.Errorf("step %d press: %w", i, err)
		}
		if st.release, err = parseActions(raw.Release); err != nil {
			return nil, fmt.Errorf("step %d release: %w", i, err)
		}
		if st.hold, err = parseActions(raw.Hold); err != nil {
			return nil, fmt.Errorf("step %d hold: %w", i, err)
		}
		for _, a := range st.hold {
			if !a.Continuous() {
				return nil, fmt.Errorf("step %d: %s cannot be held", i, a)
			}
		}
		s.steps = append(s.steps, st)
	}
	return s, nil
}

func parseActions(names []string) ([]input.Action, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]input.Action, 0, len(names))
	for _, n := range names {
		a, err := input.ParseAction(n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// TotalTicks returns the number of ticks the script runs if it never quits.
func (s *Script) TotalTicks() int {
	n := 0
	for _, st := range s.steps {
		n += st.ticks
	}
	return n
}

// Run replays the script against w, calling onTick after every tick.
// It stops early and returns true when a quit action fires or onTick
// returns false.
func (s *Script) Run(w *World, onTick func(*World) bool) (quit bool) {
	for _, st := range s.steps {
		for _, a := range st.release {
			w.Apply(input.Release(a))
		}
		for _, a := range st.press {
			if w.Apply(input.Press(a)) {
				return true
			}
		}
		for _, a := range st.hold {
			w.Apply(input.Press(a))
		}

		for i := 0; i < st.ticks; i++ {
			w.Tick()
			if onTick != nil && !onTick(w) {
				return true
			}
		}

		for _, a := range st.hold {
			w.Apply(input.Release(a))
		}
	}
	return false
}
