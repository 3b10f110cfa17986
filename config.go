package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jtanningbed/nfl-play-animate/animation"
)

const (
	dbFlag                 = "db"
	colorsFlag             = "team-colors"
	addrFlag               = "addr"
	frameDurationFlag      = "frame-duration"
	transitionDurationFlag = "transition-duration"
	sliderTransitionFlag   = "slider-transition-duration"
	redrawFlag             = "redraw"
	markerSizeFlag         = "marker-size"
	fieldColorFlag         = "field-color"
)

// defaultDBPath keeps the database on the Railway volume when one is mounted.
func defaultDBPath() string {
	if mountPath := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); mountPath != "" {
		return filepath.Join(mountPath, "nfl_play_animate.db")
	}
	return "./nfl_play_animate.db"
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    dbFlag,
			Usage:   "Path to the sqlite database",
			Value:   defaultDBPath(),
			EnvVars: []string{"DB_PATH"},
		},
		&cli.StringFlag{
			Name:    colorsFlag,
			Usage:   "YAML team color dataset; the built-in table is used for teams it lacks",
			EnvVars: []string{"TEAM_COLORS_FILE"},
		},
	}
}

func animationFlags() []cli.Flag {
	defaults := animation.DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    frameDurationFlag,
			Usage:   "Milliseconds each frame is shown",
			Value:   defaults.FrameDuration,
			EnvVars: []string{"FRAME_DURATION"},
		},
		&cli.IntFlag{
			Name:    transitionDurationFlag,
			Usage:   "Milliseconds of transition between frames",
			Value:   defaults.TransitionDuration,
			EnvVars: []string{"TRANSITION_DURATION"},
		},
		&cli.IntFlag{
			Name:    sliderTransitionFlag,
			Usage:   "Milliseconds of slider transition",
			Value:   defaults.SliderTransitionDuration,
			EnvVars: []string{"SLIDER_TRANSITION_DURATION"},
		},
		&cli.BoolFlag{
			Name:    redrawFlag,
			Usage:   "Redraw the whole scene on every frame",
			Value:   defaults.Redraw,
			EnvVars: []string{"REDRAW"},
		},
		&cli.IntFlag{
			Name:    markerSizeFlag,
			Usage:   "Player marker size",
			Value:   defaults.MarkerSize,
			EnvVars: []string{"MARKER_SIZE"},
		},
		&cli.StringFlag{
			Name:    fieldColorFlag,
			Usage:   "Field background color",
			Value:   defaults.FieldColor,
			EnvVars: []string{"FIELD_COLOR"},
		},
	}
}

func animationConfig(cCtx *cli.Context) animation.Config {
	return animation.Config{
		FrameDuration:            cCtx.Int(frameDurationFlag),
		TransitionDuration:       cCtx.Int(transitionDurationFlag),
		SliderTransitionDuration: cCtx.Int(sliderTransitionFlag),
		Redraw:                   cCtx.Bool(redrawFlag),
		MarkerSize:               cCtx.Int(markerSizeFlag),
		FieldColor:               cCtx.String(fieldColorFlag),
	}
}

// newResolver layers the optional dataset over the built-in table.
func newResolver(colorsFile string) (*animation.Resolver, error) {
	if colorsFile == "" {
		return animation.NewResolver(animation.DefaultPalette), nil
	}
	palette, err := animation.LoadPalette(colorsFile)
	if err != nil {
		return nil, fmt.Errorf("load team colors: %w", err)
	}
	fmt.Fprintf(os.Stderr, "🎨 Loaded colors for %d teams from %s\n", len(palette), colorsFile)
	return animation.NewResolver(animation.Fallback(palette, animation.DefaultPalette)), nil
}
