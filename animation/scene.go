package animation

// Kind names a drawable primitive.
type Kind string

const (
	KindText    Kind = "text"
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
	KindMarkers Kind = "markers"
)

// Primitive is one renderer-neutral drawable. X and Y are field coordinates
// in yards; Text is either one label per point (KindText) or one hover
// string per point (KindMarkers).
type Primitive struct {
	Kind  Kind      `json:"kind" yaml:"kind"`
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	X     []float64 `json:"x" yaml:"x"`
	Y     []float64 `json:"y" yaml:"y"`
	Text  []string  `json:"text,omitempty" yaml:"text,omitempty"`
	Hover bool      `json:"hover" yaml:"hover"`
	Style Style     `json:"style" yaml:"style"`
}

// Style is the union of the styling any primitive kind uses.
type Style struct {
	Color      string  `json:"color,omitempty" yaml:"color,omitempty"`
	Width      float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Dash       bool    `json:"dash,omitempty" yaml:"dash,omitempty"`
	Fill       string  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Outline    string  `json:"outline,omitempty" yaml:"outline,omitempty"`
	Opacity    float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Size       int     `json:"size,omitempty" yaml:"size,omitempty"`
	Font       *Font   `json:"font,omitempty" yaml:"font,omitempty"`
	HoverFont  int     `json:"hoverFont,omitempty" yaml:"hover_font,omitempty"`
	TextAngle  int     `json:"textAngle,omitempty" yaml:"text_angle,omitempty"`
	Background string  `json:"background,omitempty" yaml:"background,omitempty"`
}

// Font describes text rendering.
type Font struct {
	Family string `json:"family" yaml:"family"`
	Size   int    `json:"size" yaml:"size"`
	Color  string `json:"color" yaml:"color"`
}

// Annotation is a fixed text label over the field, shared by all frames.
type Annotation struct {
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Text        string  `json:"text" yaml:"text"`
	Font        Font    `json:"font" yaml:"font"`
	TextAngle   int     `json:"textAngle,omitempty" yaml:"text_angle,omitempty"`
	BorderColor string  `json:"borderColor,omitempty" yaml:"border_color,omitempty"`
	BorderWidth int     `json:"borderWidth,omitempty" yaml:"border_width,omitempty"`
	BorderPad   int     `json:"borderPad,omitempty" yaml:"border_pad,omitempty"`
	Background  string  `json:"background,omitempty" yaml:"background,omitempty"`
}

// Rect is an axis aligned rectangle in field coordinates.
type Rect struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

// Layout is the shared viewport and controls of an animation.
type Layout struct {
	XRange     [2]float64 `json:"xRange" yaml:"x_range"`
	YRange     [2]float64 `json:"yRange" yaml:"y_range"`
	Field      Rect       `json:"field" yaml:"field"`
	FieldColor string     `json:"fieldColor" yaml:"field_color"`
	PaperColor string     `json:"paperColor" yaml:"paper_color"`
	DragMode   string     `json:"dragMode" yaml:"drag_mode"`
	Controls   Controls   `json:"controls" yaml:"controls"`
}

// Controls are the transport buttons and the frame scrubber.
type Controls struct {
	Play   Button `json:"play" yaml:"play"`
	Pause  Button `json:"pause" yaml:"pause"`
	Slider Slider `json:"slider" yaml:"slider"`
}

// Button starts or stops playback with the given timing.
type Button struct {
	Label              string `json:"label" yaml:"label"`
	FrameDuration      int    `json:"frameDuration" yaml:"frame_duration"`
	TransitionDuration int    `json:"transitionDuration" yaml:"transition_duration"`
	Redraw             bool   `json:"redraw" yaml:"redraw"`
	FromCurrent        bool   `json:"fromCurrent" yaml:"from_current"`
}

// Slider jumps to a frame. Steps follow frame order.
type Slider struct {
	Prefix             string       `json:"prefix" yaml:"prefix"`
	TransitionDuration int          `json:"transitionDuration" yaml:"transition_duration"`
	Easing             string       `json:"easing" yaml:"easing"`
	Steps              []SliderStep `json:"steps" yaml:"steps"`
}

// SliderStep references one frame by name.
type SliderStep struct {
	Label         string `json:"label" yaml:"label"`
	Frame         string `json:"frame" yaml:"frame"`
	FrameDuration int    `json:"frameDuration" yaml:"frame_duration"`
	Redraw        bool   `json:"redraw" yaml:"redraw"`
}
