// Package plotrc manages the aesthetic parameters of a plotting engine:
// named style presets, element-scaling contexts, color palettes, and scoped
// temporary overrides, all applied to an explicit parameter store.
//
// The usual entry point is Set, which configures everything in one call:
//
//	ps := params.NewStore()
//	if err := plotrc.Set(ps, plotrc.Options{}); err != nil { ... }
//
// Individual knobs live in the subpackages (pkg/style, pkg/scale,
// pkg/palette) and are re-exported here under the traditional operation
// names: AxesStyle, SetStyle, PlottingContext, SetContext, SetPalette.
package plotrc

import (
	"fmt"

	"gitlab.com/tinyland/lab/plotrc/pkg/palette"
	"gitlab.com/tinyland/lab/plotrc/pkg/params"
	"gitlab.com/tinyland/lab/plotrc/pkg/scale"
	"gitlab.com/tinyland/lab/plotrc/pkg/style"
)

// Defaults used by Set when the corresponding Options field is zero.
const (
	DefaultContext = "notebook"
	DefaultStyle   = "darkgrid"
	DefaultPalette = "deep"
	DefaultFont    = "Arial"
	DefaultNColors = 6
)

// Options configures a Set call. Zero-value fields fall back to the
// package defaults above.
type Options struct {
	Context string        // named scaling context
	Style   string        // named style preset
	Palette string        // named color palette
	Font    string        // font family forced onto the style
	NColors int           // number of colors in the cycle
	Desat   float64       // palette desaturation in (0, 1]; 0 = none
	RC      params.Params // final unfiltered overrides
}

func (o Options) withDefaults() Options {
	if o.Context == "" {
		o.Context = DefaultContext
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.NColors == 0 {
		o.NColors = DefaultNColors
	}
	return o
}

// Set configures context, style, and palette in one step, in that fixed
// order, so later stages win for overlapping keys (only the font key
// overlaps by construction: the style stage forces o.Font onto the
// font-family key). o.RC, when present, is merged last and unfiltered, so
// it may carry arbitrary keys.
func Set(ps *params.Store, o Options) error {
	o = o.withDefaults()
	if err := scale.SetNamed(ps, o.Context, nil); err != nil {
		return fmt.Errorf("plotrc: set context: %w", err)
	}
	font := params.Params{params.KeyFontFamily: o.Font}
	if err := style.SetNamed(ps, o.Style, font); err != nil {
		return fmt.Errorf("plotrc: set style: %w", err)
	}
	if err := palette.Set(ps, o.Palette, o.NColors, o.Desat); err != nil {
		return fmt.Errorf("plotrc: set palette: %w", err)
	}
	if o.RC != nil {
		ps.Update(o.RC)
	}
	return nil
}

// ResetDefaults restores every parameter to the library defaults.
func ResetDefaults(ps *params.Store) {
	ps.ResetDefaults()
}

// ResetOrig restores every parameter to the state captured at store
// construction, which respects custom seed values.
func ResetOrig(ps *params.Store) {
	ps.ResetOrig()
}

// AxesStyle resolves a style dictionary without applying it. An empty name
// reads the store's current style parameters. The result can be applied
// permanently with SetStyle or temporarily with style.Push.
func AxesStyle(ps *params.Store, name string, rc params.Params) (params.Params, error) {
	if name == "" {
		return style.Current(ps, rc), nil
	}
	return style.Named(name, rc)
}

// SetStyle applies a named style (or re-applies the current one when name
// is empty) with rc overlays.
func SetStyle(ps *params.Store, name string, rc params.Params) error {
	return style.SetNamed(ps, name, rc)
}

// PlottingContext resolves a context dictionary without applying it. An
// empty name reads the store's current context parameters.
func PlottingContext(ps *params.Store, name string, rc params.Params) (params.Params, error) {
	if name == "" {
		return scale.Current(ps, rc), nil
	}
	return scale.Named(name, rc)
}

// SetContext applies a named context (or re-applies the current one when
// name is empty) with rc overlays.
func SetContext(ps *params.Store, name string, rc params.Params) error {
	return scale.SetNamed(ps, name, rc)
}

// SetPalette installs the named palette as the store's color cycle and
// default patch face color.
func SetPalette(ps *params.Store, name string, n int, desat float64) error {
	return palette.Set(ps, name, n, desat)
}

// SetColorPalette is the legacy name for SetPalette.
//
// Deprecated: Use SetPalette.
func SetColorPalette(ps *params.Store, name string, n int, desat float64) error {
	params.WarnDeprecated("plotrc: SetColorPalette is deprecated, use SetPalette instead")
	return SetPalette(ps, name, n, desat)
}

// PaletteContext is the legacy name for building a palette without
// touching the store.
//
// Deprecated: Use palette.Colors.
func PaletteContext(name string, n int, desat float64) (palette.Palette, error) {
	params.WarnDeprecated("plotrc: PaletteContext is deprecated, use palette.Colors instead")
	return palette.Colors(name, n, desat)
}
