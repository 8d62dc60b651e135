// Package state holds the mutable story-progress flags for a playthrough.
//
// Unlike an open string-keyed map, the set of keys is fixed and declared in
// keys.go. Writes to unknown keys are programming errors and panic; reads of
// unknown keys panic as well. Loaded snapshots are validated against the
// declared key set before they replace live state.
package state

import (
	"fmt"
	"math"
)

// State is the live flag store. All story progress that is not item or
// location ownership lives here.
type State struct {
	values map[string]interface{}
}

// New returns the fixed initial snapshot for a fresh playthrough.
func New() *State {
	values := make(map[string]interface{}, len(registry))
	for key, def := range registry {
		values[key] = def.initial
	}
	return &State{values: values}
}

// Flag returns the value of a boolean key.
func (s *State) Flag(key string) bool {
	v, ok := s.values[key]
	if !ok {
		panic("state: unknown flag " + key)
	}
	b, ok := v.(bool)
	if !ok {
		panic("state: " + key + " is not a flag")
	}
	return b
}

// SetFlag sets a boolean key. Story-critical flags are monotonic: once true
// they cannot be cleared again during a playthrough.
func (s *State) SetFlag(key string, value bool) {
	def, ok := registry[key]
	if !ok || def.kind != kindFlag {
		panic("state: unknown flag " + key)
	}
	if def.critical && !value && s.Flag(key) {
		return
	}
	s.values[key] = value
}

// Counter returns the value of an integer key.
func (s *State) Counter(key string) int {
	v, ok := s.values[key]
	if !ok {
		panic("state: unknown counter " + key)
	}
	n, ok := v.(int)
	if !ok {
		panic("state: " + key + " is not a counter")
	}
	return n
}

// SetCounter sets an integer key.
func (s *State) SetCounter(key string, value int) {
	def, ok := registry[key]
	if !ok || def.kind != kindCounter {
		panic("state: unknown counter " + key)
	}
	s.values[key] = value
}

// AddCounter increments an integer key and returns the new value.
func (s *State) AddCounter(key string, delta int) int {
	n := s.Counter(key) + delta
	s.SetCounter(key, n)
	return n
}

// Text returns the value of a string key.
func (s *State) Text(key string) string {
	v, ok := s.values[key]
	if !ok {
		panic("state: unknown text key " + key)
	}
	t, ok := v.(string)
	if !ok {
		panic("state: " + key + " is not text")
	}
	return t
}

// SetText sets a string key.
func (s *State) SetText(key, value string) {
	def, ok := registry[key]
	if !ok || def.kind != kindText {
		panic("state: unknown text key " + key)
	}
	s.values[key] = value
}

// Snapshot returns a deep copy of the current values, suitable for
// persistence or rollback.
func (s *State) Snapshot() map[string]interface{} {
	out := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Validate checks a snapshot against the declared key set without mutating
// live state. Every key must be known and carry a value of the declared
// kind. JSON round-trips turn counters into float64; whole-number floats are
// accepted for counter keys.
func Validate(snapshot map[string]interface{}) error {
	for key, v := range snapshot {
		def, ok := registry[key]
		if !ok {
			return fmt.Errorf("unknown game state key %q", key)
		}
		switch def.kind {
		case kindFlag:
			if _, ok := v.(bool); !ok {
				return fmt.Errorf("game state key %q: expected bool, got %T", key, v)
			}
		case kindCounter:
			if _, err := toInt(v); err != nil {
				return fmt.Errorf("game state key %q: %w", key, err)
			}
		case kindText:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("game state key %q: expected string, got %T", key, v)
			}
		}
	}
	return nil
}

// Restore replaces live values with the snapshot. Keys absent from the
// snapshot keep their initial value, so older records load cleanly. The
// snapshot must have been validated first; Restore re-validates and reports
// the first problem without partial mutation.
func (s *State) Restore(snapshot map[string]interface{}) error {
	if err := Validate(snapshot); err != nil {
		return err
	}
	fresh := New()
	for key, v := range snapshot {
		if registry[key].kind == kindCounter {
			n, _ := toInt(v)
			fresh.values[key] = n
			continue
		}
		fresh.values[key] = v
	}
	s.values = fresh.values
	return nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}
