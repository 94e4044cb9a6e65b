package component

import (
	"encoding/json"
	"math"
)

// State is the persisted value of one component subtree. Values must survive a
// JSON round trip, so numbers read back from storage arrive as float64.
type State map[string]any

// Accessor reads and writes the state slice owned by one component.
type Accessor interface {
	GetState() State
	SetState(State)
}

// AccessorFuncs adapts a pair of functions to Accessor.
type AccessorFuncs struct {
	Get func() State
	Set func(State)
}

func (a AccessorFuncs) GetState() State {
	if a.Get == nil {
		return nil
	}
	return a.Get()
}

func (a AccessorFuncs) SetState(s State) {
	if a.Set != nil {
		a.Set(s)
	}
}

// Snapshot is an in-memory accessor. The dispatcher loads persisted state into
// a Snapshot, runs the cycle against it and persists it only on success.
type Snapshot struct {
	state State
}

// NewSnapshot returns a snapshot holding s.
func NewSnapshot(s State) *Snapshot {
	return &Snapshot{state: s}
}

func (s *Snapshot) GetState() State { return s.state }

func (s *Snapshot) SetState(next State) { s.state = next }

// Merge returns a new state holding base overlaid with patch. Neither input is
// modified.
func Merge(base, patch State) State {
	out := make(State, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// AsState converts a stored value into a State. Nested objects decoded from
// JSON arrive as map[string]any.
func AsState(v any) State {
	switch t := v.(type) {
	case State:
		return t
	case map[string]any:
		return State(t)
	default:
		return nil
	}
}

// Bool reads a boolean key, treating anything else as false.
func Bool(s State, key string) bool {
	b, _ := s[key].(bool)
	return b
}

// Int reads an integer key written either directly or through JSON.
func Int(s State, key string) int {
	switch n := s[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	default:
		return 0
	}
}

// String reads a nullable string key. ok is false when the key is missing or
// null.
func String(s State, key string) (value string, ok bool) {
	value, ok = s[key].(string)
	return value, ok
}
