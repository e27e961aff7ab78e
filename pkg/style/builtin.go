package style

import (
	"strings"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// Preset registry. The values are markers; the actual dictionaries come
// from stBuild so every resolution starts from a fresh copy.
var presets = map[string]struct{}{
	"white":     {},
	"dark":      {},
	"whitegrid": {},
	"darkgrid":  {},
	"ticks":     {},
}

// Grayscale constants shared by every preset.
const (
	stDarkGray  = ".15"
	stLightGray = ".8"
)

// stBuild constructs a preset style dictionary by layering rules onto a
// common base: grid visibility comes from the name containing "grid",
// background/edge/grid colors from the dark/whitegrid/white-ticks family,
// and tick mark sizes from whether the style is "ticks".
func stBuild(name string) params.Params {
	p := params.Params{
		"text.color":           stDarkGray,
		"axes.labelcolor":      stDarkGray,
		"legend.frameon":       false,
		"legend.numpoints":     1,
		"legend.scatterpoints": 1,
		"xtick.direction":      "out",
		"ytick.direction":      "out",
		"xtick.color":          stDarkGray,
		"ytick.color":          stDarkGray,
		"axes.axisbelow":       true,
		"image.cmap":           "Greys",
		params.KeyFontFamily:   "Arial",
		"grid.linestyle":       "-",
		"lines.solid_capstyle": "round",
	}

	p["axes.grid"] = stHasGrid(name)

	switch {
	case stIsDark(name):
		p["axes.facecolor"] = "#EAEAF2"
		p["axes.edgecolor"] = "white"
		p["axes.linewidth"] = 0.0
		p["grid.color"] = "white"
	case name == "whitegrid":
		p["axes.facecolor"] = "white"
		p["axes.edgecolor"] = stLightGray
		p["axes.linewidth"] = 1.0
		p["grid.color"] = stLightGray
	default: // "white", "ticks"
		p["axes.facecolor"] = "white"
		p["axes.edgecolor"] = stDarkGray
		p["axes.linewidth"] = 1.25
		p["grid.color"] = stLightGray
	}

	tickSize := func(major, minor float64) {
		p["xtick.major.size"] = major
		p["ytick.major.size"] = major
		p["xtick.minor.size"] = minor
		p["ytick.minor.size"] = minor
	}
	if name == "ticks" {
		tickSize(6, 3)
	} else {
		tickSize(0, 0)
	}

	return p
}

func stHasGrid(name string) bool {
	return strings.Contains(name, "grid")
}

func stIsDark(name string) bool {
	return strings.HasPrefix(name, "dark")
}
