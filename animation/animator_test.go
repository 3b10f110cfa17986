package animation

import (
	"errors"
	"strings"
	"testing"

	"github.com/jtanningbed/nfl-play-animate/models"
)

var (
	testGame = models.Game{GameID: 2022091100, HomeTeamAbbr: "KC", VisitorTeamAbbr: "SF"}
	testPlay = models.Play{
		GameID:                 2022091100,
		PlayID:                 56,
		PlayDescription:        "(15:00) P.Mahomes pass short right to T.Kelce to KC 35 for 10 yards.",
		Down:                   3,
		Quarter:                1,
		AbsoluteYardlineNumber: 35,
		YardsToGo:              7,
	}
)

func sample(frame int, club, name string, x float64) models.TrackingRow {
	return models.TrackingRow{
		GameID:        testGame.GameID,
		PlayID:        testPlay.PlayID,
		PlayDirection: "right",
		Club:          club,
		FrameID:       frame,
		S:             1.0,
		A:             2.0,
		Dir:           90.5,
		DisplayName:   name,
		X:             x,
		Y:             20,
	}
}

// trackingFor returns two players per team and the ball for each frame, in
// the frame order given.
func trackingFor(frames ...int) []models.TrackingRow {
	var rows []models.TrackingRow
	for _, f := range frames {
		rows = append(rows,
			sample(f, "SF", "N.Bosa", 40),
			sample(f, "KC", "P.Mahomes", 30),
			sample(f, models.Football, "football", 35),
			sample(f, "KC", "T.Kelce", 31),
			sample(f, "SF", "F.Warner", 41),
		)
	}
	return rows
}

func TestFirstDownMarker(t *testing.T) {
	tests := []struct {
		los, togo float64
		dir       Direction
		want      float64
	}{
		{35, 10, Right, 45},
		{35, 10, Left, 25},
		{80, 3, Right, 83},
		{80, 3, Left, 77},
		{50, 0, Right, 50},
	}

	for _, tt := range tests {
		if got := FirstDownMarker(tt.los, tt.togo, tt.dir); got != tt.want {
			t.Errorf("FirstDownMarker(%v, %v, %s) = %v, want %v", tt.los, tt.togo, tt.dir, got, tt.want)
		}
	}
}

func TestFormatDescription(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("abcdef ", 20))
	words := strings.Fields(long)
	wantLong := strings.Join(words[:16], " ") + LineBreak + strings.Join(words[16:], " ")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "Short pass.", "Short pass."},
		{"many short words", strings.TrimSpace(strings.Repeat("ab ", 20)), strings.TrimSpace(strings.Repeat("ab ", 20))},
		{"few long words", strings.TrimSpace(strings.Repeat("abcdefghijklmn ", 10)), strings.TrimSpace(strings.Repeat("abcdefghijklmn ", 10))},
		{"long", long, wantLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDescription(tt.in); got != tt.want {
				t.Errorf("FormatDescription = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHoverText(t *testing.T) {
	got := HoverText(PlayerSample{DisplayName: "T.Kelce", Speed: 1.0, Acceleration: 2.0, Direction: 90.5})
	want := "Name: T.Kelce<br>Speed: 2.05 MPH<br>Acceleration: 4.09 MPH/s<br>Direction: 90.50°<br>"
	if got != want {
		t.Errorf("HoverText = %q, want %q", got, want)
	}
}

func TestNewPlayInfo(t *testing.T) {
	info := NewPlayInfo(testPlay, Left)

	if info.LineOfScrimmage != 35 || info.FirstDownMarker != 28 {
		t.Errorf("los/first down = %v/%v, want 35/28", info.LineOfScrimmage, info.FirstDownMarker)
	}
	if info.Down != 3 || info.Quarter != 1 || info.PlayDirection != Left {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestBuildOrdersFrames(t *testing.T) {
	anim, err := NewAnimator(nil).Build(testGame, testPlay, trackingFor(3, 1, 2), DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	all := append([]Frame{{Name: "1", Data: anim.Data}}, anim.Frames...)
	if len(all) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(all))
	}
	for i, name := range []string{"1", "2", "3"} {
		if all[i].Name != name {
			t.Errorf("frame %d name = %s, want %s", i, all[i].Name, name)
		}
	}
	if anim.Frames[0].ID != 2 || anim.Frames[1].ID != 3 {
		t.Errorf("frame ids = %d,%d, want 2,3", anim.Frames[0].ID, anim.Frames[1].ID)
	}

	for _, f := range all {
		var groups []Primitive
		for _, p := range f.Data {
			if p.Kind == KindMarkers {
				groups = append(groups, p)
			}
		}
		if len(groups) != 3 {
			t.Fatalf("frame %s: expected 3 marker groups, got %d", f.Name, len(groups))
		}
		for i, club := range []string{"KC", "SF", models.Football} {
			g := groups[i]
			if g.Name != club {
				t.Errorf("frame %s group %d = %s, want %s", f.Name, i, g.Name, club)
			}
			if club == models.Football {
				if g.Hover || len(g.Text) != 0 {
					t.Errorf("frame %s: football should carry no hover text", f.Name)
				}
				continue
			}
			if !g.Hover || len(g.Text) != 2 || len(g.X) != 2 {
				t.Errorf("frame %s: %s should have 2 players with hover text, got %+v", f.Name, club, g)
			}
		}
	}

	steps := anim.Layout.Controls.Slider.Steps
	if len(steps) != 3 || steps[0].Frame != "1" || steps[2].Frame != "3" {
		t.Errorf("unexpected slider steps %+v", steps)
	}
}

func TestBuildStaticScene(t *testing.T) {
	anim, err := NewAnimator(nil).Build(testGame, testPlay, trackingFor(1, 2), DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 2 yard number rows + 21 yard lines + 2 guide lines + 2 endzones
	const static = 27
	if len(anim.Data) != static+3 {
		t.Fatalf("expected %d primitives, got %d", static+3, len(anim.Data))
	}
	for i := 0; i < static; i++ {
		if anim.Data[i].Kind != anim.Frames[0].Data[i].Kind {
			t.Errorf("static primitive %d differs between frames", i)
		}
	}

	los, first := anim.Data[23], anim.Data[24]
	if los.X[0] != 35 || los.Style.Color != "blue" || !los.Style.Dash {
		t.Errorf("unexpected scrimmage line %+v", los)
	}
	if first.X[0] != 42 || first.Style.Color != "yellow" {
		t.Errorf("unexpected first down line %+v", first)
	}

	home, visitor := anim.Data[25], anim.Data[26]
	if home.Kind != KindPolygon || home.Style.Fill != "#E31837" {
		t.Errorf("home endzone = %+v, want KC primary", home)
	}
	if visitor.X[0] != 110 || visitor.Style.Fill != "#B3995D" {
		t.Errorf("visitor endzone = %+v, want swapped SF primary", visitor)
	}
	if got := anim.Data[0].Text; strings.Join(got, ",") != "10,20,30,40,50,40,30,20,10" {
		t.Errorf("yard numbers = %v", got)
	}
}

func TestBuildAnnotationsAndLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameDuration = 250
	cfg.FieldColor = "#123456"

	anim, err := NewAnimator(nil).Build(testGame, testPlay, trackingFor(1), cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(anim.Frames) != 0 {
		t.Errorf("single frame play should have no remaining frames, got %d", len(anim.Frames))
	}
	if len(anim.Annotations) != 4 {
		t.Fatalf("expected 4 annotations, got %d", len(anim.Annotations))
	}
	for _, a := range anim.Annotations[:2] {
		if a.Text != "3" || a.X != 42 {
			t.Errorf("first down annotation = %+v", a)
		}
	}
	if anim.Annotations[2].Text != "KC" || anim.Annotations[2].TextAngle != 270 {
		t.Errorf("home annotation = %+v", anim.Annotations[2])
	}
	if anim.Annotations[3].Text != "SF" || anim.Annotations[3].X != 115 {
		t.Errorf("visitor annotation = %+v", anim.Annotations[3])
	}

	layout := anim.Layout
	if layout.XRange != [2]float64{0, 120} || layout.YRange != [2]float64{0, 53.3} {
		t.Errorf("unexpected ranges %v %v", layout.XRange, layout.YRange)
	}
	if layout.FieldColor != "#123456" || layout.Controls.Play.FrameDuration != 250 {
		t.Errorf("config not applied: %+v", layout)
	}
	if layout.Controls.Pause.FrameDuration != 0 || layout.Controls.Pause.Redraw {
		t.Errorf("pause should stop immediately: %+v", layout.Controls.Pause)
	}
}

func TestBuildColorsIndependentOfRowOrder(t *testing.T) {
	rows := trackingFor(1, 2)
	reversed := make([]models.TrackingRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	a := NewAnimator(nil)
	first, err := a.Build(testGame, testPlay, rows, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Build(testGame, testPlay, reversed, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for team, c := range first.Colors {
		if second.Colors[team] != c {
			t.Errorf("%s colors changed with row order: %v vs %v", team, c, second.Colors[team])
		}
	}
}

func TestBuildErrors(t *testing.T) {
	a := NewAnimator(nil)

	if _, err := a.Build(testGame, testPlay, nil, DefaultConfig()); !errors.Is(err, ErrNoTracking) {
		t.Errorf("empty tracking: got %v, want ErrNoTracking", err)
	}

	oneTeam := []models.TrackingRow{sample(1, "KC", "P.Mahomes", 30), sample(1, models.Football, "football", 35)}
	if _, err := a.Build(testGame, testPlay, oneTeam, DefaultConfig()); !errors.Is(err, ErrTeamCount) {
		t.Errorf("one team: got %v, want ErrTeamCount", err)
	}

	if _, err := a.BuildPlay(models.PlayData{TrackingData: trackingFor(1)}, DefaultConfig()); !errors.Is(err, ErrMissingRow) {
		t.Errorf("missing rows: got %v, want ErrMissingRow", err)
	}
}
