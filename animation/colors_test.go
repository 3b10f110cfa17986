package animation

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jtanningbed/nfl-play-animate/models"
)

func TestDistance(t *testing.T) {
	pairs := [][2]string{
		{"#E31837", "#AA0000"},
		{"#00338D", "#FFB612"},
		{"#000000", "#FFFFFF"},
		{"#203731", "#FFB612"},
	}

	for _, p := range pairs {
		d1 := Distance(p[0], p[1])
		d2 := Distance(p[1], p[0])
		if !(math.IsNaN(d1) && math.IsNaN(d2)) && d1 != d2 {
			t.Errorf("Distance(%s, %s) = %v, reversed = %v", p[0], p[1], d1, d2)
		}
		if d := Distance(p[0], p[0]); d != 0 {
			t.Errorf("Distance(%s, %s) = %v, want 0", p[0], p[0], d)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// KC vs SF: (2+198.5)*57² + 4*24² + (3-198.5)*55²
	if d, want := Distance("#E31837", "#AA0000"), math.Sqrt(62341); math.Abs(d-want) > 1e-9 {
		t.Errorf("Distance KC/SF = %v, want %v", d, want)
	}
	// BUF vs PIT: (2+127.5)*255² + 4*131² + (3-127.5)*123²
	if d, want := Distance("#00338D", "#FFB612"), math.Sqrt(6605821); math.Abs(d-want) > 1e-9 {
		t.Errorf("Distance BUF/PIT = %v, want %v", d, want)
	}
}

func TestContrastingPairsSwapsSimilarPrimaries(t *testing.T) {
	r := NewResolver(nil)
	got := r.ContrastingPairs("KC", "SF")

	if got["KC"] != (TeamColors{"#E31837", "#FFB81C"}) {
		t.Errorf("KC = %v, want stored pair unchanged", got["KC"])
	}
	if got["SF"] != (TeamColors{"#B3995D", "#AA0000"}) {
		t.Errorf("SF = %v, want stored pair reversed", got["SF"])
	}
	if got[models.Football] != FootballColors {
		t.Errorf("football = %v, want %v", got[models.Football], FootballColors)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 entries, got %d", len(got))
	}
}

func TestContrastingPairsKeepsDistinctPrimaries(t *testing.T) {
	got := NewResolver(nil).ContrastingPairs("BUF", "PIT")

	if got["BUF"] != (TeamColors{"#00338D", "#C60C30"}) {
		t.Errorf("BUF = %v", got["BUF"])
	}
	if got["PIT"] != (TeamColors{"#FFB612", "#101820"}) {
		t.Errorf("PIT = %v", got["PIT"])
	}
}

func TestContrastingPairsUnknownTeams(t *testing.T) {
	got := NewResolver(nil).ContrastingPairs("AAA", "BBB")

	if got["AAA"] != DefaultColors {
		t.Errorf("AAA = %v, want %v", got["AAA"], DefaultColors)
	}
	// identical defaults are as similar as it gets, so team2 is swapped
	if got["BBB"] != (TeamColors{"#000000", "#FFFFFF"}) {
		t.Errorf("BBB = %v", got["BBB"])
	}
	if _, ok := got[models.Football]; !ok {
		t.Error("football entry missing")
	}
}

func TestLookupSingleColor(t *testing.T) {
	r := NewResolver(Palette{"ONE": {"#123456"}})
	if got := r.Lookup("ONE"); got != (TeamColors{"#123456", "#000000"}) {
		t.Errorf("Lookup(ONE) = %v", got)
	}
}

func TestFallback(t *testing.T) {
	override := Palette{"KC": {"#010101", "#020202"}}
	r := NewResolver(Fallback(override, DefaultPalette))

	if got := r.Lookup("KC"); got != (TeamColors{"#010101", "#020202"}) {
		t.Errorf("KC should come from the first source, got %v", got)
	}
	if got := r.Lookup("SF"); got != (TeamColors{"#AA0000", "#B3995D"}) {
		t.Errorf("SF should fall through to the default palette, got %v", got)
	}
	if got := r.Lookup("NOPE"); got != DefaultColors {
		t.Errorf("NOPE = %v, want defaults", got)
	}
}

func TestLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	data := `KC: ["e31837", "#FFB81C"]
SF: ["#AA0000", "", "nothex"]
XX: ["zzzzzz"]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	palette, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette failed: %v", err)
	}

	want := Palette{
		"KC": {"#E31837", "#FFB81C"},
		"SF": {"#AA0000"},
	}
	if !reflect.DeepEqual(palette, want) {
		t.Errorf("palette = %v, want %v", palette, want)
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	if _, err := LoadPalette(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
