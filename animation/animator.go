package animation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jtanningbed/nfl-play-animate/models"
)

const (
	// YardsPerSecondToMPH converts tracking speed (yd/s) and acceleration
	// (yd/s²) to mph and mph/s.
	YardsPerSecondToMPH = 2.04545

	FieldLength = 120.0
	FieldWidth  = 53.3

	// LineBreak separates lines inside descriptions and hover text.
	LineBreak = "<br>"

	lineTop    = 53.5
	fontFamily = "Courier New, monospace"
)

// Animator turns the rows of one play into an Animation.
type Animator struct {
	resolver *Resolver
}

// NewAnimator returns an Animator that colors teams with resolver, or with
// the default palette when resolver is nil.
func NewAnimator(resolver *Resolver) *Animator {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Animator{resolver: resolver}
}

// BuildPlay builds the animation from an API play payload, which must hold
// at least one game and one play row.
func (a *Animator) BuildPlay(data models.PlayData, cfg Config) (*Animation, error) {
	if len(data.GameData) == 0 || len(data.PlayData) == 0 {
		return nil, ErrMissingRow
	}
	return a.Build(data.GameData[0], data.PlayData[0], data.TrackingData, cfg)
}

// Build assembles one frame per distinct frame id, in ascending order. The
// first frame becomes Animation.Data and the rest Animation.Frames.
func (a *Animator) Build(game models.Game, play models.Play, tracking []models.TrackingRow, cfg Config) (*Animation, error) {
	if len(tracking) == 0 {
		return nil, ErrNoTracking
	}

	info := NewPlayInfo(play, Direction(tracking[0].PlayDirection))

	teams, err := Teams(tracking)
	if err != nil {
		return nil, err
	}
	colors := a.resolver.ContrastingPairs(teams[0], teams[1])

	static := slices.Concat(
		fieldMarkers(),
		guideLines(info),
		a.endzones(game, colors),
	)

	byFrame := make(map[int][]models.TrackingRow)
	for _, row := range tracking {
		byFrame[row.FrameID] = append(byFrame[row.FrameID], row)
	}
	ids := make([]int, 0, len(byFrame))
	for id := range byFrame {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	clubs := append(teams[:], models.Football)
	frames := make([]Frame, len(ids))
	for i, id := range ids {
		data := make([]Primitive, 0, len(static)+len(clubs))
		data = append(data, static...)
		data = append(data, playerMarkers(byFrame[id], clubs, colors, cfg)...)
		frames[i] = Frame{ID: id, Name: strconv.Itoa(id), Data: data}
	}

	return &Animation{
		Info:        info,
		Colors:      colors,
		Data:        frames[0].Data,
		Frames:      frames[1:],
		Layout:      newLayout(cfg, frames),
		Annotations: annotations(info, game),
	}, nil
}

// NewPlayInfo derives the static facts of a play.
func NewPlayInfo(play models.Play, dir Direction) PlayInfo {
	los := float64(play.AbsoluteYardlineNumber)
	return PlayInfo{
		GameID:          play.GameID,
		PlayID:          play.PlayID,
		LineOfScrimmage: los,
		FirstDownMarker: FirstDownMarker(los, float64(play.YardsToGo), dir),
		Down:            play.Down,
		Quarter:         play.Quarter,
		PlayDescription: FormatDescription(play.PlayDescription),
		PlayDirection:   dir,
	}
}

// FirstDownMarker is the yard line the offense must reach. Anything other
// than Right counts as moving left.
func FirstDownMarker(lineOfScrimmage, yardsToGo float64, dir Direction) float64 {
	if dir == Right {
		return lineOfScrimmage + yardsToGo
	}
	return lineOfScrimmage - yardsToGo
}

// FormatDescription breaks descriptions longer than 15 words and 115
// characters after the 16th word.
func FormatDescription(description string) string {
	words := strings.Fields(description)
	if len(words) > 15 && utf8.RuneCountInString(description) > 115 {
		return strings.Join(words[:16], " ") + LineBreak + strings.Join(words[16:], " ")
	}
	return description
}

// Teams returns the two non-football clubs in the tracking rows, sorted.
func Teams(tracking []models.TrackingRow) ([2]string, error) {
	var clubs []string
	for _, row := range tracking {
		if row.Club == models.Football || slices.Contains(clubs, row.Club) {
			continue
		}
		clubs = append(clubs, row.Club)
	}
	if len(clubs) != 2 {
		return [2]string{}, fmt.Errorf("%w: found %d", ErrTeamCount, len(clubs))
	}
	slices.Sort(clubs)
	return [2]string{clubs[0], clubs[1]}, nil
}

// HoverText is the tooltip shown for a player marker.
func HoverText(p PlayerSample) string {
	return fmt.Sprintf("Name: %s%sSpeed: %.2f MPH%sAcceleration: %.2f MPH/s%sDirection: %.2f°%s",
		p.DisplayName, LineBreak,
		p.Speed*YardsPerSecondToMPH, LineBreak,
		p.Acceleration*YardsPerSecondToMPH, LineBreak,
		p.Direction, LineBreak,
	)
}

func fieldMarkers() []Primitive {
	var markers []Primitive

	numbers := Primitive{Kind: KindText}
	for i := 0; i < 9; i++ {
		x := float64(20 + 10*i)
		label := 10 * (i + 1)
		if label > 50 {
			label = 100 - label
		}
		numbers.X = append(numbers.X, x)
		numbers.Text = append(numbers.Text, strconv.Itoa(label))
	}
	numbers.Style.Font = &Font{Family: fontFamily, Size: 30, Color: "#ffffff"}
	for _, y := range []float64{5, lineTop - 5} {
		row := numbers
		row.Y = make([]float64, len(numbers.X))
		for i := range row.Y {
			row.Y[i] = y
		}
		markers = append(markers, row)
	}

	for x := 10; x <= 110; x += 5 {
		markers = append(markers, Primitive{
			Kind:  KindLine,
			X:     []float64{float64(x), float64(x)},
			Y:     []float64{0, FieldWidth},
			Style: Style{Color: "white", Width: 1},
		})
	}
	return markers
}

func guideLines(info PlayInfo) []Primitive {
	line := func(x float64, color string) Primitive {
		return Primitive{
			Kind:  KindLine,
			X:     []float64{x, x},
			Y:     []float64{0, lineTop},
			Style: Style{Color: color, Dash: true},
		}
	}
	return []Primitive{
		line(info.LineOfScrimmage, "blue"),
		line(info.FirstDownMarker, "yellow"),
	}
}

func (a *Animator) endzones(game models.Game, colors TeamColorMap) []Primitive {
	fill := func(team string) string {
		if c, ok := colors[team]; ok {
			return c.Primary()
		}
		return a.resolver.Lookup(team).Primary()
	}

	var zones []Primitive
	for _, z := range []struct {
		x0   float64
		team string
	}{
		{0, game.HomeTeamAbbr},
		{110, game.VisitorTeamAbbr},
	} {
		zones = append(zones, Primitive{
			Kind: KindPolygon,
			X:    []float64{z.x0, z.x0, z.x0 + 10, z.x0 + 10, z.x0},
			Y:    []float64{0, lineTop, lineTop, 0, 0},
			Style: Style{
				Color:   "white",
				Width:   3,
				Fill:    fill(z.team),
				Opacity: 1,
			},
		})
	}
	return zones
}

// playerMarkers emits one marker set per club present in rows, in clubs
// order. Only players get hover text.
func playerMarkers(rows []models.TrackingRow, clubs []string, colors TeamColorMap, cfg Config) []Primitive {
	var out []Primitive
	for _, club := range clubs {
		p := Primitive{
			Kind: KindMarkers,
			Name: club,
			Style: Style{
				Color:   colors[club].Primary(),
				Outline: colors[club].Accent(),
				Width:   2,
				Size:    cfg.MarkerSize,
			},
		}
		for _, row := range rows {
			if row.Club != club {
				continue
			}
			p.X = append(p.X, row.X)
			p.Y = append(p.Y, row.Y)
			if club == models.Football {
				continue
			}
			p.Text = append(p.Text, HoverText(PlayerSample{
				X:            row.X,
				Y:            row.Y,
				Speed:        row.S,
				Acceleration: row.A,
				Direction:    row.Dir,
				DisplayName:  row.DisplayName,
			}))
		}
		if len(p.X) == 0 {
			continue
		}
		if club != models.Football {
			p.Hover = true
			p.Style.HoverFont = 16
		}
		out = append(out, p)
	}
	return out
}

func annotations(info PlayInfo, game models.Game) []Annotation {
	var notes []Annotation
	for _, y := range []float64{0, 53} {
		notes = append(notes, Annotation{
			X:           info.FirstDownMarker,
			Y:           y,
			Text:        strconv.Itoa(info.Down),
			Font:        Font{Family: fontFamily, Size: 16, Color: "black"},
			BorderColor: "black",
			BorderWidth: 2,
			BorderPad:   4,
			Background:  "#ff7f0e",
		})
	}
	notes = append(notes,
		Annotation{
			X:         5,
			Y:         lineTop / 2,
			Text:      game.HomeTeamAbbr,
			Font:      Font{Family: fontFamily, Size: 32, Color: "White"},
			TextAngle: 270,
		},
		Annotation{
			X:         115,
			Y:         lineTop / 2,
			Text:      game.VisitorTeamAbbr,
			Font:      Font{Family: fontFamily, Size: 32, Color: "White"},
			TextAngle: 90,
		},
	)
	return notes
}
