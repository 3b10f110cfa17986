package animation

import "errors"

var (
	ErrNoTracking = errors.New("animation: no tracking rows for play")
	ErrTeamCount  = errors.New("animation: tracking must contain exactly two clubs besides the football")
	ErrMissingRow = errors.New("animation: missing game or play row")
)

// Direction is the way the offense is moving on the field.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// Config holds playback timing and field styling. It is passed by value and
// never modified once built.
type Config struct {
	FrameDuration            int    `json:"frameDuration" yaml:"frame_duration"`
	TransitionDuration       int    `json:"transitionDuration" yaml:"transition_duration"`
	SliderTransitionDuration int    `json:"sliderTransitionDuration" yaml:"slider_transition_duration"`
	Redraw                   bool   `json:"redraw" yaml:"redraw"`
	MarkerSize               int    `json:"markerSize" yaml:"marker_size"`
	FieldColor               string `json:"fieldColor" yaml:"field_color"`
}

// DefaultConfig returns the stock playback settings.
func DefaultConfig() Config {
	return Config{
		FrameDuration:            100,
		TransitionDuration:       0,
		SliderTransitionDuration: 300,
		Redraw:                   true,
		MarkerSize:               15,
		FieldColor:               "#00B140",
	}
}

// PlayInfo holds the static facts of a play, derived once per build.
type PlayInfo struct {
	GameID          int64     `json:"gameId" yaml:"game_id"`
	PlayID          int64     `json:"playId" yaml:"play_id"`
	LineOfScrimmage float64   `json:"lineOfScrimmage" yaml:"line_of_scrimmage"`
	FirstDownMarker float64   `json:"firstDownMarker" yaml:"first_down_marker"`
	Down            int       `json:"down" yaml:"down"`
	Quarter         int       `json:"quarter" yaml:"quarter"`
	PlayDescription string    `json:"playDescription" yaml:"play_description"`
	PlayDirection   Direction `json:"playDirection" yaml:"play_direction"`
}

// PlayerSample is one tracked player at one frame, as shown on hover.
type PlayerSample struct {
	X            float64
	Y            float64
	Speed        float64
	Acceleration float64
	Direction    float64
	DisplayName  string
}

// Frame is one self-contained scene of the animation.
type Frame struct {
	ID   int         `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Data []Primitive `json:"data" yaml:"data"`
}

// Animation is everything a renderer needs to play a play back.
type Animation struct {
	Info        PlayInfo     `json:"info" yaml:"info"`
	Colors      TeamColorMap `json:"colors" yaml:"colors"`
	Data        []Primitive  `json:"data" yaml:"data"`
	Frames      []Frame      `json:"frames" yaml:"frames"`
	Layout      Layout       `json:"layout" yaml:"layout"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
}
