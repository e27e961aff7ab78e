// Package style defines the axes-style registry: named aesthetic presets
// controlling axes colors, grid visibility, tick behavior and related
// rendering parameters. Styles affect how plots look, not how big their
// elements are (that is pkg/scale's job).
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// ErrUnknownStyle reports a style name outside the preset registry.
var ErrUnknownStyle = errors.New("style: unknown style")

// styleKeys is the fixed closed set of parameters that belong to a style
// definition. Resolution and scoped restore both operate on exactly this
// set.
var styleKeys = []string{
	"axes.facecolor",
	"axes.edgecolor",
	"axes.grid",
	"axes.axisbelow",
	"axes.linewidth",
	"axes.labelcolor",

	"grid.color",
	"grid.linestyle",

	"text.color",

	"xtick.color",
	"ytick.color",
	"xtick.direction",
	"ytick.direction",
	"xtick.major.size",
	"ytick.major.size",
	"xtick.minor.size",
	"ytick.minor.size",

	"legend.frameon",
	"legend.numpoints",
	"legend.scatterpoints",

	"lines.solid_capstyle",

	"image.cmap",
	params.KeyFontFamily,
}

// Keys returns the style-key set in definition order.
func Keys() []string {
	out := make([]string, len(styleKeys))
	copy(out, styleKeys)
	return out
}

// Names returns the preset style names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named resolves a preset style by name and overlays rc. Entries of rc whose
// keys are outside the style-key set are silently dropped. The legacy name
// "nogrid" resolves as "white" after a deprecation warning.
func Named(name string, rc params.Params) (params.Params, error) {
	if name == "nogrid" {
		params.WarnDeprecated(`style: the "nogrid" style is now named "white"`)
		name = "white"
	}
	if _, ok := presets[name]; !ok {
		return nil, fmt.Errorf("%w %q (valid styles: %s)", ErrUnknownStyle, name, strings.Join(Names(), ", "))
	}
	return Merge(stBuild(name), rc), nil
}

// Current reads the current style-key values from the store and overlays a
// filtered rc, mirroring Named for the "no preset" case.
func Current(ps *params.Store, rc params.Params) params.Params {
	return Merge(ps.Snapshot(styleKeys), rc)
}

// Merge copies p and overlays rc, dropping rc entries whose keys are
// outside the style-key set.
func Merge(p, rc params.Params) params.Params {
	out := p.Clone()
	for k, v := range rc {
		if stIsStyleKey(k) {
			out[k] = v
		}
	}
	return out
}

// Set applies p to the store permanently.
func Set(ps *params.Store, p params.Params) {
	ps.Update(p)
}

// SetNamed resolves name (or the store's current style when name is empty)
// with rc overlays and applies the result permanently.
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

// Push applies p as a scoped override of the style-key set. Restore the
// prior values with the returned scope, normally via defer.
func Push(ps *params.Store, p params.Params) *params.Scope {
	return ps.Push(styleKeys, p)
}

func stIsStyleKey(k string) bool {
	_, ok := styleKeySet[k]
	return ok
}

var styleKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(styleKeys))
	for _, k := range styleKeys {
		set[k] = struct{}{}
	}
	return set
}()
