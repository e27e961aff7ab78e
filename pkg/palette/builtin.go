package palette

import "github.com/lucasb-eyer/go-colorful"

// fixed maps palette names to their base color sequences.
var fixed = map[string]Palette{
	// Seaborn house palettes.
	"deep":       plHexes("#4C72B0", "#55A868", "#C44E52", "#8172B2", "#CCB974", "#64B5CD"),
	"muted":      plHexes("#4878CF", "#6ACC65", "#D65F5F", "#B47CC7", "#C4AD66", "#77BEDB"),
	"pastel":     plHexes("#92C6FF", "#97F0AA", "#FF9F9A", "#D0BBFF", "#FFFEA3", "#B0E0E6"),
	"bright":     plHexes("#003FFF", "#03ED3A", "#E8000B", "#8A2BE2", "#FFC400", "#00D7FF"),
	"dark":       plHexes("#001C7F", "#017517", "#8C0900", "#7600A1", "#B8860B", "#006374"),
	"colorblind": plHexes("#0072B2", "#009E73", "#D55E00", "#CC79A7", "#F0E442", "#56B4E9"),

	// ColorBrewer qualitative sets.
	"Set1": plHexes("#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999"),
	"Set2": plHexes("#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
		"#ffd92f", "#e5c494", "#b3b3b3"),
	"Set3": plHexes("#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
		"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f"),
	"Pastel1": plHexes("#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
		"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2"),
	"Pastel2": plHexes("#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9",
		"#fff2ae", "#f1e2cc", "#cccccc"),
	"Paired": plHexes("#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
		"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928"),
	"Dark2": plHexes("#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e",
		"#e6ab02", "#a6761d", "#666666"),
	"Accent": plHexes("#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0",
		"#f0027f", "#bf5b17", "#666666"),
}

// plHexes parses a list of #rrggbb literals into a Palette. The inputs are
// compile-time constants validated by the package tests, so parse errors
// collapse to black rather than aborting.
func plHexes(hexes ...string) Palette {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, _ := colorful.Hex(h)
		p[i] = c
	}
	return p
}
