package params

import (
	"reflect"
	"testing"
)

// --- Store basics ---

func TestNewStoreSeedsDefaults(t *testing.T) {
	ps := NewStore()
	if ps.Len() != len(Defaults()) {
		t.Fatalf("NewStore() has %d params, want %d", ps.Len(), len(Defaults()))
	}
	v, ok := ps.Get("axes.facecolor")
	if !ok {
		t.Fatal("axes.facecolor missing from fresh store")
	}
	if v != "white" {
		t.Errorf("axes.facecolor = %v, want %q", v, "white")
	}
}

func TestNewStoreWithCustomSeed(t *testing.T) {
	ps := NewStoreWith(Params{"axes.facecolor": "black", "custom.key": 1.5})
	if v, _ := ps.Get("axes.facecolor"); v != "black" {
		t.Errorf("custom seed not applied: axes.facecolor = %v", v)
	}
	if v, _ := ps.Get("custom.key"); v != 1.5 {
		t.Errorf("custom.key = %v, want 1.5", v)
	}
}

func TestUpdateAndGet(t *testing.T) {
	ps := NewStore()
	ps.Update(Params{"axes.grid": true, "grid.color": "red"})
	if v, _ := ps.Get("axes.grid"); v != true {
		t.Errorf("axes.grid = %v, want true", v)
	}
	if v, _ := ps.Get("grid.color"); v != "red" {
		t.Errorf("grid.color = %v, want %q", v, "red")
	}
}

func TestReplaceDiscardsOldKeys(t *testing.T) {
	ps := NewStore()
	ps.Replace(Params{"only.key": 1.0})
	if ps.Len() != 1 {
		t.Errorf("after Replace, Len() = %d, want 1", ps.Len())
	}
	if _, ok := ps.Get("axes.facecolor"); ok {
		t.Error("axes.facecolor survived Replace")
	}
}

func TestSnapshotOmitsMissingKeys(t *testing.T) {
	ps := NewStore()
	snap := ps.Snapshot([]string{"axes.facecolor", "no.such.key"})
	if len(snap) != 1 {
		t.Fatalf("Snapshot returned %d entries, want 1", len(snap))
	}
	if snap["axes.facecolor"] != "white" {
		t.Errorf("snapshot axes.facecolor = %v, want %q", snap["axes.facecolor"], "white")
	}
}

func TestGetDetachesSlices(t *testing.T) {
	ps := NewStore()
	v, _ := ps.Get("figure.figsize")
	fs := v.([]float64)
	fs[0] = 99
	again, _ := ps.Get("figure.figsize")
	if again.([]float64)[0] == 99 {
		t.Error("mutating a Get result leaked into the store")
	}
}

// --- Resets ---

func TestResetDefaults(t *testing.T) {
	ps := NewStoreWith(Params{"axes.facecolor": "black"})
	ps.Update(Params{"grid.color": "red"})
	ps.ResetDefaults()
	if !reflect.DeepEqual(ps.All(), Defaults()) {
		t.Error("ResetDefaults did not restore the pristine defaults")
	}
}

func TestResetOrigKeepsCustomSeed(t *testing.T) {
	ps := NewStoreWith(Params{"axes.facecolor": "black"})
	ps.Update(Params{"axes.facecolor": "green", "grid.color": "red"})
	ps.ResetOrig()
	if v, _ := ps.Get("axes.facecolor"); v != "black" {
		t.Errorf("after ResetOrig, axes.facecolor = %v, want %q (custom seed)", v, "black")
	}
	if v, _ := ps.Get("grid.color"); v != "#b0b0b0" {
		t.Errorf("after ResetOrig, grid.color = %v, want default", v)
	}
}

// --- Scope ---

func TestPushRestoreRoundTrip(t *testing.T) {
	ps := NewStore()
	keys := []string{"axes.facecolor", "axes.grid", "grid.color"}
	before := ps.Snapshot(keys)

	sc := ps.Push(keys, Params{"axes.facecolor": "#EAEAF2", "axes.grid": true})
	if v, _ := ps.Get("axes.facecolor"); v != "#EAEAF2" {
		t.Errorf("inside scope, axes.facecolor = %v", v)
	}
	sc.Restore()

	if !reflect.DeepEqual(ps.Snapshot(keys), before) {
		t.Errorf("after Restore, keys = %v, want %v", ps.Snapshot(keys), before)
	}
}

func TestRestoreLeavesForeignKeysAlone(t *testing.T) {
	ps := NewStore()
	sc := ps.Push([]string{"axes.facecolor"}, Params{"axes.facecolor": "red"})
	ps.Update(Params{"grid.color": "blue"})
	sc.Restore()
	if v, _ := ps.Get("grid.color"); v != "blue" {
		t.Errorf("Restore touched a key outside its set: grid.color = %v", v)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	ps := NewStore()
	sc := ps.Push([]string{"axes.facecolor"}, Params{"axes.facecolor": "red"})
	sc.Restore()
	ps.Update(Params{"axes.facecolor": "green"})
	sc.Restore()
	if v, _ := ps.Get("axes.facecolor"); v != "green" {
		t.Errorf("second Restore overwrote a later update: axes.facecolor = %v", v)
	}
}

func TestRestoreRunsDuringPanicUnwind(t *testing.T) {
	ps := NewStore()
	before, _ := ps.Get("axes.facecolor")

	func() {
		defer func() { _ = recover() }()
		sc := ps.Push([]string{"axes.facecolor"}, Params{"axes.facecolor": "red"})
		defer sc.Restore()
		panic("render failure")
	}()

	if v, _ := ps.Get("axes.facecolor"); v != before {
		t.Errorf("after panic unwind, axes.facecolor = %v, want %v", v, before)
	}
}

// --- Deprecation handler ---

func TestWarnDeprecatedUsesHandler(t *testing.T) {
	var got string
	old := DeprecationHandler
	DeprecationHandler = func(msg string) { got = msg }
	defer func() { DeprecationHandler = old }()

	WarnDeprecated("old name")
	if got != "old name" {
		t.Errorf("handler received %q, want %q", got, "old name")
	}
}

func TestWarnDeprecatedNilHandler(t *testing.T) {
	old := DeprecationHandler
	DeprecationHandler = nil
	defer func() { DeprecationHandler = old }()

	WarnDeprecated("no handler") // must not panic
}

// --- Canonical ---

func TestCanonical(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"int", 3, 3.0},
		{"int64", int64(4), 4.0},
		{"float", 1.5, 1.5},
		{"bool", true, true},
		{"string", "out", "out"},
		{"float slice", []any{int64(8), 5.5}, []float64{8, 5.5}},
		{"string slice", []any{"#fff", "#000"}, []string{"#fff", "#000"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Canonical(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Canonical(%v) = %v (%T), want %v (%T)", tc.in, got, got, tc.want, tc.want)
			}
		})
	}
}
