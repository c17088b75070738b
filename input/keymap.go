package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrKeyConflict is returned when one key is bound to two different actions.
var ErrKeyConflict = errors.New("key bound to multiple actions")

// KeyMap resolves raw key names to actions.
// Key names are lower-case and backend independent ("w", "up", "escape").
type KeyMap struct {
	byKey    map[string]Action
	byAction map[Action][]string
}

// NewKeyMap builds a key map from action name → key names bindings,
// as found in the config keymap section.
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	km := &KeyMap{
		byKey:    make(map[string]Action),
		byAction: make(map[Action][]string),
	}

	// Sorted so conflict errors are deterministic
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		if action == ActionNone {
			continue
		}
		for _, key := range bindings[name] {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			if prev, ok := km.byKey[key]; ok && prev != action {
				return nil, fmt.Errorf("keymap: %w: %q → %s, %s", ErrKeyConflict, key, prev, action)
			}
			if _, ok := km.byKey[key]; ok {
				continue
			}
			km.byKey[key] = action
			km.byAction[action] = append(km.byAction[action], key)
		}
	}

	for action := range km.byAction {
		sort.Strings(km.byAction[action])
	}

	return km, nil
}

// Lookup returns the action bound to a key name.
func (km *KeyMap) Lookup(key string) (Action, bool) {
	a, ok := km.byKey[strings.ToLower(key)]
	return a, ok
}

// Keys returns the sorted key names bound to an action.
func (km *KeyMap) Keys(a Action) []string {
	return km.byAction[a]
}

// BoundKeys returns every bound key name, sorted.
func (km *KeyMap) BoundKeys() []string {
	keys := make([]string, 0, len(km.byKey))
	for k := range km.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
