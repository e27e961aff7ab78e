// Package params holds the mutable rendering-parameter store that the rest
// of plotrc reads and writes. A Store is the plotting engine's configuration
// surface: a flat key/value mapping seeded from library defaults, with
// snapshots for full resets and a scope mechanism for temporary overrides.
package params

// Params is a flat mapping from rc key (e.g. "axes.facecolor") to value.
// Values are strings, bools, float64, int, []float64 or []string.
type Params map[string]any

// Clone returns a copy of p with slice values detached from the original.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

// Store is the rendering engine's parameter dictionary. It keeps the live
// parameters plus two immutable snapshots: the library defaults, and the
// "orig" state captured at construction (which preserves any custom seed
// values the caller supplied).
//
// A Store is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
type Store struct {
	current  Params
	defaults Params
	orig     Params
}

// NewStore returns a store seeded with the library defaults.
func NewStore() *Store {
	return NewStoreWith(nil)
}

// NewStoreWith returns a store seeded with the library defaults overlaid
// with custom. The orig snapshot captures the overlaid state, so ResetOrig
// respects the caller's customizations while ResetDefaults does not.
func NewStoreWith(custom Params) *Store {
	seed := Defaults()
	for k, v := range custom {
		seed[k] = cloneValue(v)
	}
	return &Store{
		current:  seed.Clone(),
		defaults: Defaults(),
		orig:     seed.Clone(),
	}
}

// Get returns the current value for key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.current[key]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Snapshot captures the current values of the given keys. Keys that are not
// present in the store are omitted from the result.
func (s *Store) Snapshot(keys []string) Params {
	out := make(Params, len(keys))
	for _, k := range keys {
		if v, ok := s.current[k]; ok {
			out[k] = cloneValue(v)
		}
	}
	return out
}

// Update merges p into the current parameters, overwriting existing keys.
func (s *Store) Update(p Params) {
	for k, v := range p {
		s.current[k] = cloneValue(v)
	}
}

// Replace discards the current parameters entirely and installs p.
func (s *Store) Replace(p Params) {
	s.current = p.Clone()
}

// All returns a copy of every current parameter.
func (s *Store) All() Params {
	return s.current.Clone()
}

// Len reports the number of current parameters.
func (s *Store) Len() int {
	return len(s.current)
}

// ResetDefaults restores every parameter to the library defaults,
// discarding custom seed values.
func (s *Store) ResetDefaults() {
	s.current = s.defaults.Clone()
}

// ResetOrig restores every parameter to the state captured when the store
// was constructed, preserving custom seed values.
func (s *Store) ResetOrig() {
	s.current = s.orig.Clone()
}

// cloneValue detaches slice values so callers cannot mutate store state
// through a shared backing array.
func cloneValue(v any) any {
	switch vv := v.(type) {
	case []float64:
		out := make([]float64, len(vv))
		copy(out, vv)
		return out
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out
	default:
		return v
	}
}
