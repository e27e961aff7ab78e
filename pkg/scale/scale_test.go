package scale

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"

	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

const scEps = 1e-9

// --- Preset resolution ---

func TestNamedCoversExactKeySet(t *testing.T) {
	want := Keys()
	sort.Strings(want)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Named(name, nil)
			if err != nil {
				t.Fatalf("Named(%q) error: %v", name, err)
			}
			got := make([]string, 0, len(p))
			for k := range p {
				got = append(got, k)
			}
			sort.Strings(got)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Named(%q) keys = %v, want %v", name, got, want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"notebook", "paper", "poster", "talk"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestEveryValueScalesByFactor(t *testing.T) {
	base := Base()
	for _, name := range Names() {
		f, err := Factor(name)
		if err != nil {
			t.Fatal(err)
		}
		p, err := Named(name, nil)
		if err != nil {
			t.Fatal(err)
		}
		t.Run(name, func(t *testing.T) {
			for k, bv := range base {
				switch want := bv.(type) {
				case float64:
					got := p[k].(float64)
					if math.Abs(got-want*f) > scEps {
						t.Errorf("%s = %v, want %v (base %v x %v)", k, got, want*f, want, f)
					}
				case []float64:
					got := p[k].([]float64)
					for i := range want {
						if math.Abs(got[i]-want[i]*f) > scEps {
							t.Errorf("%s[%d] = %v, want %v", k, i, got[i], want[i]*f)
						}
					}
				}
			}
		})
	}
}

func TestNotebookEqualsBase(t *testing.T) {
	p, err := Named("notebook", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p, Base()) {
		t.Error("Named(\"notebook\") differs from Base()")
	}
}

func TestFactorValues(t *testing.T) {
	cases := map[string]float64{"paper": 0.8, "notebook": 1.0, "talk": 1.3, "poster": 1.6}
	for name, want := range cases {
		f, err := Factor(name)
		if err != nil {
			t.Errorf("Factor(%q) error: %v", name, err)
			continue
		}
		if f != want {
			t.Errorf("Factor(%q) = %v, want %v", name, f, want)
		}
	}
}

// --- Overrides ---

func TestOverridesDropForeignKeys(t *testing.T) {
	p, err := Named("talk", params.Params{
		"lines.linewidth": 2.0,
		"axes.facecolor":  "pink", // style key, must be dropped
	})
	if err != nil {
		t.Fatal(err)
	}
	if p["lines.linewidth"] != 2.0 {
		t.Errorf("valid override ignored: lines.linewidth = %v", p["lines.linewidth"])
	}
	if _, ok := p["axes.facecolor"]; ok {
		t.Error("style key leaked through context overrides")
	}
}

// --- Errors ---

func TestUnknownContext(t *testing.T) {
	_, err := Named("xlarge", nil)
	if !errors.Is(err, ErrUnknownContext) {
		t.Fatalf("Named(\"xlarge\") error = %v, want ErrUnknownContext", err)
	}
	if _, err := Factor("xlarge"); !errors.Is(err, ErrUnknownContext) {
		t.Fatalf("Factor(\"xlarge\") error = %v, want ErrUnknownContext", err)
	}
}

// --- Store interaction ---

func TestSetNamedAppliesToStore(t *testing.T) {
	ps := params.NewStore()
	if err := SetNamed(ps, "poster", nil); err != nil {
		t.Fatalf("SetNamed error: %v", err)
	}
	v, _ := ps.Get("axes.labelsize")
	if math.Abs(v.(float64)-11.0*1.6) > scEps {
		t.Errorf("store axes.labelsize = %v, want %v", v, 11.0*1.6)
	}
	fs, _ := ps.Get("figure.figsize")
	got := fs.([]float64)
	if math.Abs(got[0]-8*1.6) > scEps || math.Abs(got[1]-5.5*1.6) > scEps {
		t.Errorf("store figure.figsize = %v, want scaled [12.8 8.8]", got)
	}
}

func TestPushRestoresContextKeys(t *testing.T) {
	ps := params.NewStore()
	before := ps.Snapshot(Keys())

	p, _ := Named("poster", nil)
	sc := Push(ps, p)
	if v, _ := ps.Get("axes.titlesize"); math.Abs(v.(float64)-12.0*1.6) > scEps {
		t.Errorf("inside scope, axes.titlesize = %v", v)
	}
	sc.Restore()

	if !reflect.DeepEqual(ps.Snapshot(Keys()), before) {
		t.Error("context keys differ from pre-scope capture after Restore")
	}
}

// --- Sheets ---

func TestLoadFromTOMLSheet(t *testing.T) {
	p, err := LoadFromTOML([]byte(`
"lines.linewidth" = 2
"figure.figsize" = [10, 6]
`))
	if err != nil {
		t.Fatalf("LoadFromTOML error: %v", err)
	}
	if p["lines.linewidth"] != 2.0 {
		t.Errorf("lines.linewidth = %v (%T), want float64 2", p["lines.linewidth"], p["lines.linewidth"])
	}
	if !reflect.DeepEqual(p["figure.figsize"], []float64{10, 6}) {
		t.Errorf("figure.figsize = %v, want [10 6]", p["figure.figsize"])
	}
}

func TestSheetRejectsStyleKey(t *testing.T) {
	if _, err := LoadFromTOML([]byte(`"axes.grid" = true`)); err == nil {
		t.Error("context sheet accepted a style key")
	}
}

func TestSheetRejectsNonNumericValue(t *testing.T) {
	if _, err := LoadFromYAML([]byte("lines.linewidth: thick\n")); err == nil {
		t.Error("context sheet accepted a non-numeric value")
	}
}
