package animation

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jtanningbed/nfl-play-animate/models"
)

// SimilarityThreshold is the distance under which two primaries are treated
// as indistinguishable on the field.
const SimilarityThreshold = 500.0

var (
	FootballColors = TeamColors{"#CBB67C", "#663831"}
	DefaultColors  = TeamColors{"#FFFFFF", "#000000"}
)

// TeamColors is an ordered [primary, accent] pair.
type TeamColors [2]string

// Primary is the fill color of a team's markers and endzone.
func (c TeamColors) Primary() string { return c[0] }

// Accent is the outline color of a team's markers.
func (c TeamColors) Accent() string { return c[1] }

// TeamColorMap maps a club (including "football") to its pair.
type TeamColorMap map[string]TeamColors

// ColorSource returns the declared color list of a team, primary first.
// Unknown teams return nil.
type ColorSource interface {
	TeamColors(team string) []string
}

type fallbackSource []ColorSource

func (f fallbackSource) TeamColors(team string) []string {
	for _, src := range f {
		if src == nil {
			continue
		}
		if colors := src.TeamColors(team); len(colors) > 0 {
			return colors
		}
	}
	return nil
}

// Fallback asks each source in turn and returns the first non-empty answer.
func Fallback(sources ...ColorSource) ColorSource {
	return fallbackSource(sources)
}

// Resolver picks team color pairs that stay distinguishable on the field.
type Resolver struct {
	source ColorSource
}

// NewResolver returns a Resolver backed by source, or by DefaultPalette when
// source is nil.
func NewResolver(source ColorSource) *Resolver {
	if source == nil {
		source = DefaultPalette
	}
	return &Resolver{source: source}
}

// Lookup returns the stored pair for team. It never fails: unknown teams get
// DefaultColors and single-color teams get a black accent.
func (r *Resolver) Lookup(team string) TeamColors {
	colors := r.source.TeamColors(team)
	switch len(colors) {
	case 0:
		return DefaultColors
	case 1:
		return TeamColors{colors[0], "#000000"}
	default:
		return TeamColors{colors[0], colors[1]}
	}
}

// ContrastingPairs returns the pairs for both teams plus the football. When
// the two primaries are too close, team2's pair is swapped so its accent
// becomes the primary.
func (r *Resolver) ContrastingPairs(team1, team2 string) TeamColorMap {
	c1 := r.Lookup(team1)
	c2 := r.Lookup(team2)

	if Distance(c1.Primary(), c2.Primary()) < SimilarityThreshold {
		c2 = TeamColors{c2.Accent(), c2.Primary()}
	}

	return TeamColorMap{
		team1:           c1,
		team2:           c2,
		models.Football: FootballColors,
	}
}

// Distance is a red-mean weighted euclidean distance between two hex colors.
// The weights use the raw channel mean, so for reddish pairs the blue weight
// goes negative and the result can be NaN; NaN never compares below the
// threshold.
func Distance(hex1, hex2 string) float64 {
	if hex1 == hex2 {
		return 0
	}

	rgb1 := hexToRGB(hex1)
	rgb2 := hexToRGB(hex2)
	rm := 0.5 * (rgb1[0] + rgb2[0])
	weights := [3]float64{2 + rm, 4, 3 - rm}

	var sum float64
	for i := range rgb1 {
		d := rgb1[i] - rgb2[i]
		sum += weights[i] * d * d
	}
	return math.Sqrt(sum)
}

// hexToRGB parses #RRGGBB into 0-255 channels. Unparseable input is black.
func hexToRGB(hex string) [3]float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]float64{}
	}
	r, g, b := c.RGB255()
	return [3]float64{float64(r), float64(g), float64(b)}
}
