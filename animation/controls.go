package animation

func newLayout(cfg Config, frames []Frame) Layout {
	return Layout{
		XRange:     [2]float64{0, FieldLength},
		YRange:     [2]float64{0, FieldWidth},
		Field:      Rect{X0: 0, Y0: 0, X1: FieldLength, Y1: FieldWidth},
		FieldColor: cfg.FieldColor,
		PaperColor: "rgba(0,0,0,0)",
		DragMode:   "pan",
		Controls:   newControls(cfg, frames),
	}
}

func newControls(cfg Config, frames []Frame) Controls {
	steps := make([]SliderStep, len(frames))
	for i, f := range frames {
		steps[i] = SliderStep{
			Label:         f.Name,
			Frame:         f.Name,
			FrameDuration: cfg.FrameDuration,
			Redraw:        cfg.Redraw,
		}
	}

	return Controls{
		Play: Button{
			Label:              "Play",
			FrameDuration:      cfg.FrameDuration,
			TransitionDuration: cfg.TransitionDuration,
			Redraw:             cfg.Redraw,
			FromCurrent:        true,
		},
		Pause: Button{Label: "Pause"},
		Slider: Slider{
			Prefix:             "Frame:",
			TransitionDuration: cfg.SliderTransitionDuration,
			Easing:             "cubic-in-out",
			Steps:              steps,
		},
	}
}
