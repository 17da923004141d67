package keymap

import (
	"fmt"
	"strings"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	// Deduplicate keys per action
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// WithOverrides returns a copy of the default bindings, rebinding every
// action named in overrides. Values are space-separated key names as the
// terminal reports them; "space" stands for the space key. Unknown action
// names, empty key lists, and keys bound to two actions are errors.
func WithOverrides(overrides map[string]string) ([]Binding, error) {
	bindings := make([]Binding, len(Bindings))
	copy(bindings, Bindings)

	for name, value := range overrides {
		idx := -1
		for i := range bindings {
			if bindings[i].Action == Action(name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown binding action %q", name)
		}

		keys := parseKeys(value)
		if len(keys) == 0 {
			return nil, fmt.Errorf("binding %q has no keys", name)
		}
		bindings[idx].Keys = keys
	}

	seen := make(map[string]Action)
	for _, b := range bindings {
		for _, key := range b.Keys {
			if other, ok := seen[key]; ok && other != b.Action {
				return nil, fmt.Errorf("key %q bound to both %q and %q",
					PrintableKey(key), other, b.Action)
			}
			seen[key] = b.Action
		}
	}

	return bindings, nil
}

func parseKeys(value string) []string {
	var keys []string
	for _, tok := range strings.Fields(value) {
		if tok == "space" {
			tok = " "
		}
		keys = append(keys, tok)
	}
	return keys
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
