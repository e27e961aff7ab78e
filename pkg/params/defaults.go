package params

// Well-known keys written by more than one package.
const (
	KeyColorCycle     = "axes.color_cycle"
	KeyPatchFaceColor = "patch.facecolor"
	KeyFontFamily     = "font.family"
)

// Defaults returns the library-provided default parameter snapshot. It
// covers every style key, every context key, the palette keys, and a few
// general figure settings.
func Defaults() Params {
	return Params{
		// Axes style.
		"axes.facecolor":       "white",
		"axes.edgecolor":       "black",
		"axes.grid":            false,
		"axes.axisbelow":       false,
		"axes.linewidth":       1.0,
		"axes.labelcolor":      "black",
		"grid.color":           "#b0b0b0",
		"grid.linestyle":       "-",
		"text.color":           "black",
		"xtick.color":          "black",
		"ytick.color":          "black",
		"xtick.direction":      "out",
		"ytick.direction":      "out",
		"xtick.major.size":     3.5,
		"ytick.major.size":     3.5,
		"xtick.minor.size":     2.0,
		"ytick.minor.size":     2.0,
		"legend.frameon":       true,
		"legend.numpoints":     1,
		"legend.scatterpoints": 1,
		"lines.solid_capstyle": "projecting",
		"image.cmap":           "viridis",
		KeyFontFamily:          "sans-serif",

		// Element scaling.
		"figure.figsize":        []float64{8, 5.5},
		"axes.labelsize":        11.0,
		"axes.titlesize":        12.0,
		"xtick.labelsize":       10.0,
		"ytick.labelsize":       10.0,
		"legend.fontsize":       10.0,
		"grid.linewidth":        1.0,
		"lines.linewidth":       1.75,
		"patch.linewidth":       0.3,
		"lines.markersize":      7.0,
		"lines.markeredgewidth": 0.0,
		"xtick.major.width":     1.0,
		"ytick.major.width":     1.0,
		"xtick.minor.width":     0.5,
		"ytick.minor.width":     0.5,
		"xtick.major.pad":       7.0,
		"ytick.major.pad":       7.0,

		// Color cycle.
		KeyColorCycle: []string{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		},
		KeyPatchFaceColor: "#1f77b4",

		// General figure settings.
		"font.size":   10.0,
		"figure.dpi":  100.0,
		"savefig.dpi": 100.0,
	}
}
