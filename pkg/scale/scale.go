// Package scale defines the plotting-context registry: named size presets
// that scale every element of a figure (fonts, line widths, markers, tick
// geometry) by a single factor. Contexts affect how big plots are, not how
// they look (that is pkg/style's job).
package scale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// ErrUnknownContext reports a context name outside the preset registry.
var ErrUnknownContext = errors.New("scale: unknown context")

// contextKeys is the fixed closed set of parameters that belong to a
// context definition.
var contextKeys = []string{
	"figure.figsize",

	"axes.labelsize",
	"axes.titlesize",
	"xtick.labelsize",
	"ytick.labelsize",
	"legend.fontsize",

	"grid.linewidth",
	"lines.linewidth",
	"patch.linewidth",
	"lines.markersize",
	"lines.markeredgewidth",

	"xtick.major.width",
	"ytick.major.width",
	"xtick.minor.width",
	"ytick.minor.width",

	"xtick.major.pad",
	"ytick.major.pad",
}

// factors maps each named context to its scaling factor.
var factors = map[string]float64{
	"paper":    0.8,
	"notebook": 1.0,
	"talk":     1.3,
	"poster":   1.6,
}

// Keys returns the context-key set in definition order.
func Keys() []string {
	out := make([]string, len(contextKeys))
	copy(out, contextKeys)
	return out
}

// Names returns the preset context names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(factors))
	for name := range factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Base returns the unscaled context dictionary (the "notebook" values).
func Base() params.Params {
	return params.Params{
		"figure.figsize": []float64{8, 5.5},

		"axes.labelsize":  11.0,
		"axes.titlesize":  12.0,
		"xtick.labelsize": 10.0,
		"ytick.labelsize": 10.0,
		"legend.fontsize": 10.0,

		"grid.linewidth":        1.0,
		"lines.linewidth":       1.75,
		"patch.linewidth":       0.3,
		"lines.markersize":      7.0,
		"lines.markeredgewidth": 0.0,

		"xtick.major.width": 1.0,
		"ytick.major.width": 1.0,
		"xtick.minor.width": 0.5,
		"ytick.minor.width": 0.5,

		"xtick.major.pad": 7.0,
		"ytick.major.pad": 7.0,
	}
}

// Factor returns the scaling factor for a named context.
func Factor(name string) (float64, error) {
	f, ok := factors[name]
	if !ok {
		return 0, fmt.Errorf("%w %q (valid contexts: %s)", ErrUnknownContext, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Named resolves a preset context by name and overlays rc. Every numeric
// base value, including each element of slice values, is multiplied by the
// context's factor before rc is applied. Entries of rc whose keys are
// outside the context-key set are silently dropped.
func Named(name string, rc params.Params) (params.Params, error) {
	f, err := Factor(name)
	if err != nil {
		return nil, err
	}
	p := Base()
	for k, v := range p {
		p[k] = scValue(v, f)
	}
	return Merge(p, rc), nil
}

// Current reads the current context-key values from the store and overlays
// a filtered rc, mirroring Named for the "no preset" case.
func Current(ps *params.Store, rc params.Params) params.Params {
	return Merge(ps.Snapshot(contextKeys), rc)
}

// Merge copies p and overlays rc, dropping rc entries whose keys are
// outside the context-key set.
func Merge(p, rc params.Params) params.Params {
	out := p.Clone()
	for k, v := range rc {
		if scIsContextKey(k) {
			out[k] = v
		}
	}
	return out
}

// Set applies p to the store permanently.
func Set(ps *params.Store, p params.Params) {
	ps.Update(p)
}

// SetNamed resolves name (or the store's current context when name is
// empty) with rc overlays and applies the result permanently.
func SetNamed(ps *params.Store, name string, rc params.Params) error {
	var p params.Params
	if name == "" {
		p = Current(ps, rc)
	} else {
		var err error
		p, err = Named(name, rc)
		if err != nil {
			return err
		}
	}
	Set(ps, p)
	return nil
}

// Push applies p as a scoped override of the context-key set. Restore the
// prior values with the returned scope, normally via defer.
func Push(ps *params.Store, p params.Params) *params.Scope {
	return ps.Push(contextKeys, p)
}

// scValue multiplies a numeric value by f. Slice values scale element-wise;
// non-numeric values pass through unchanged.
func scValue(v any, f float64) any {
	switch vv := v.(type) {
	case float64:
		return vv * f
	case int:
		return float64(vv) * f
	case []float64:
		out := make([]float64, len(vv))
		for i, e := range vv {
			out[i] = e * f
		}
		return out
	default:
		return v
	}
}

func scIsContextKey(k string) bool {
	_, ok := contextKeySet[k]
	return ok
}

var contextKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(contextKeys))
	for _, k := range contextKeys {
		set[k] = struct{}{}
	}
	return set
}()
