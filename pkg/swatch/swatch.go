// Package swatch renders styles, contexts, and palettes as terminal
// previews: color blocks for palettes and aligned key/value cards for
// parameter dictionaries.
package swatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/plotrc/pkg/palette"
	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// swBlock is the cell rendered once per palette color.
const swBlock = "   "

var (
	swKeyStyle   = lipgloss.NewStyle().Faint(true)
	swTitleStyle = lipgloss.NewStyle().Bold(true)
)

// PaletteRow renders one row of color blocks, one block per palette color.
func PaletteRow(p palette.Palette) string {
	var b strings.Builder
	for _, hex := range p.Hex() {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swBlock))
	}
	return b.String()
}

// PaletteCard renders a titled palette preview: the color row followed by
// the hex value of each color.
func PaletteCard(name string, p palette.Palette) string {
	lines := []string{
		swTitleStyle.Render(name),
		PaletteRow(p),
	}
	for _, hex := range p.Hex() {
		lines = append(lines, fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■"), hex))
	}
	return strings.Join(lines, "\n")
}

// ParamsCard renders a titled, alphabetically sorted key/value table for a
// parameter dictionary.
func ParamsCard(title string, p params.Params) string {
	keys := make([]string, 0, len(p))
	width := 0
	for k := range p {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, swTitleStyle.Render(title))
	for _, k := range keys {
		pad := strings.Repeat(" ", width-len(k))
		lines = append(lines, fmt.Sprintf("%s%s  %s", swKeyStyle.Render(k), pad, swValue(p[k])))
	}
	return strings.Join(lines, "\n")
}

// ProfileName reports the terminal's detected color capability, for
// surfacing in preview headers.
func ProfileName() string {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256-color"
	case termenv.ANSI:
		return "16-color"
	default:
		return "monochrome"
	}
}

// NoColor reports whether the environment asks for color-free output
// (NO_COLOR et al.).
func NoColor() bool {
	return termenv.EnvNoColor()
}

// swValue formats a parameter value compactly.
func swValue(v any) string {
	switch vv := v.(type) {
	case []float64:
		parts := make([]string, len(vv))
		for i, e := range vv {
			parts[i] = fmt.Sprintf("%g", e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		return "[" + strings.Join(vv, ", ") + "]"
	case float64:
		return fmt.Sprintf("%g", vv)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
