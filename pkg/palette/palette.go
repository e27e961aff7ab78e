// Package palette builds ordered color sequences for the plot color cycle.
// It knows the named builtin palettes, the ColorBrewer qualitative
// sets, and two generated spaces ("hls", "husl") with evenly spaced hues.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// ErrUnknownPalette reports a palette name outside the registry.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Palette is an ordered color sequence.
type Palette []colorful.Color

// Hex returns the palette as lowercase #rrggbb strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// First returns the hex value of the first color, or "" for an empty
// palette.
func (p Palette) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].Hex()
}

// Colors builds a palette of n colors. Fixed palettes cycle their base
// sequence when n exceeds its length; the generated "hls" and "husl"
// spaces produce exactly n evenly spaced hues. A desat in (0, 1] scales
// every color's saturation down; 0 leaves colors untouched.
func Colors(name string, n int, desat float64) (Palette, error) {
	if n <= 0 {
		return nil, fmt.Errorf("palette: n must be positive, got %d", n)
	}
	if desat < 0 || desat > 1 {
		return nil, fmt.Errorf("palette: desat must be in [0, 1], got %v", desat)
	}

	var p Palette
	switch name {
	case "hls":
		p = hlsPalette(n)
	case "husl":
		p = huslPalette(n)
	default:
		base, ok := fixed[name]
		if !ok {
			return nil, fmt.Errorf("%w %q (valid palettes: %s)", ErrUnknownPalette, name, strings.Join(Names(), ", "))
		}
		p = make(Palette, n)
		for i := range p {
			p[i] = base[i%len(base)]
		}
	}

	if desat > 0 {
		for i, c := range p {
			p[i] = Desaturate(c, desat)
		}
	}
	return p, nil
}

// Desaturate scales a color's HSL saturation by prop.
func Desaturate(c colorful.Color, prop float64) colorful.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*prop, l)
}

// Names returns every registered palette name sorted alphabetically,
// including the generated spaces.
func Names() []string {
	names := make([]string, 0, len(fixed)+2)
	for name := range fixed {
		names = append(names, name)
	}
	names = append(names, "hls", "husl")
	sort.Strings(names)
	return names
}

// Set builds the named palette and installs it on the store: the color
// cycle key receives the full hex sequence and the patch face color key
// receives the first color. Errors from Colors propagate unchanged.
func Set(ps *params.Store, name string, n int, desat float64) error {
	p, err := Colors(name, n, desat)
	if err != nil {
		return err
	}
	ps.Update(params.Params{
		params.KeyColorCycle:     p.Hex(),
		params.KeyPatchFaceColor: p.First(),
	})
	return nil
}

// hlsPalette spaces n hues evenly around the HSL wheel
// (lightness .6, saturation .65, hue offset .01).
func hlsPalette(n int) Palette {
	const (
		hueOffset  = 0.01
		lightness  = 0.6
		saturation = 0.65
	)
	p := make(Palette, n)
	for i := range p {
		h := hueOffset + float64(i)/float64(n)
		p[i] = colorful.Hsl(h*360, saturation, lightness)
	}
	return p
}

// huslPalette spaces n hues evenly in HSLuv space, which keeps perceived
// intensity uniform across hues (saturation .9, lightness .65, hue
// offset .01).
func huslPalette(n int) Palette {
	const (
		hueOffset  = 0.01
		lightness  = 0.65
		saturation = 0.9
	)
	p := make(Palette, n)
	for i := range p {
		h := hueOffset + float64(i)/float64(n)
		p[i] = colorful.HSLuv(h*360, saturation, lightness)
	}
	return p
}
