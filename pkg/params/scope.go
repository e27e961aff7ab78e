package params

// Scope records the prior values of a fixed key set so a temporary override
// can be undone. Obtain one from Push and undo it with Restore, normally via
// defer so the restore also runs during panic unwinding:
//
//	sc := ps.Push(style.Keys(), p)
//	defer sc.Restore()
//
// A Scope owns only its own snapshot, never the store.
type Scope struct {
	store *Store
	saved Params
	done  bool
}

// Push snapshots the store's current values for every key in keys, then
// applies p. Keys outside the snapshot set are untouched by the eventual
// Restore even if p wrote them.
func (s *Store) Push(keys []string, p Params) *Scope {
	sc := &Scope{store: s, saved: s.Snapshot(keys)}
	s.Update(p)
	return sc
}

// Restore re-applies the values captured by Push. Calling Restore more than
// once is a no-op after the first call.
func (sc *Scope) Restore() {
	if sc == nil || sc.done {
		return
	}
	sc.done = true
	sc.store.Update(sc.saved)
}
