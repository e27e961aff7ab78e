package config

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

func TestLoadFromReader(t *testing.T) {
	src := `
[defaults]
context = "talk"
style = "whitegrid"
palette = "muted"
n_colors = 8

[rc]
"figure.dpi" = 200
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if cfg.Defaults.Context != "talk" {
		t.Errorf("Context = %q, want talk", cfg.Defaults.Context)
	}
	if cfg.Defaults.Style != "whitegrid" {
		t.Errorf("Style = %q, want whitegrid", cfg.Defaults.Style)
	}
	if cfg.Defaults.NColors != 8 {
		t.Errorf("NColors = %d, want 8", cfg.Defaults.NColors)
	}
	// Unset fields keep their defaults.
	if cfg.Defaults.Font != "Arial" {
		t.Errorf("Font = %q, want default Arial", cfg.Defaults.Font)
	}
	if cfg.RC["figure.dpi"] != int64(200) {
		t.Errorf("rc figure.dpi = %v (%T), want 200", cfg.RC["figure.dpi"], cfg.RC["figure.dpi"])
	}
}

func TestLoadFromReaderBadTOML(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("defaults = [")); err == nil {
		t.Error("LoadFromReader accepted malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PLOTRC_STYLE", "ticks")
	t.Setenv("PLOTRC_N_COLORS", "9")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Defaults.Style != "ticks" {
		t.Errorf("Style = %q, want env override ticks", cfg.Defaults.Style)
	}
	if cfg.Defaults.NColors != 9 {
		t.Errorf("NColors = %d, want env override 9", cfg.Defaults.NColors)
	}
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Style = "white"
	cfg.RC = map[string]any{"figure.dpi": int64(300)}

	ps := params.NewStore()
	if err := Apply(cfg, ps); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if v, _ := ps.Get("axes.facecolor"); v != "white" {
		t.Errorf("axes.facecolor = %v, want white", v)
	}
	if v, _ := ps.Get("figure.dpi"); v != 300.0 {
		t.Errorf("figure.dpi = %v (%T), want float64 300 (canonicalized)", v, v)
	}
}

func TestApplyUnknownStyleFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Style = "purple"
	if err := Apply(cfg, params.NewStore()); err == nil {
		t.Error("Apply accepted an unknown style name")
	}
}
