package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jtanningbed/nfl-play-animate/animation"
)

const stdoutName = "-"

// renderPlay builds the animation of one stored play and encodes it to w as
// json or yaml.
func renderPlay(ctx context.Context, q querier, animator *animation.Animator, gameID, playID int64, cfg animation.Config, format string, w io.Writer) error {
	data, err := getPlayData(ctx, q, gameID, playID)
	if err != nil {
		return err
	}
	anim, err := animator.BuildPlay(*data, cfg)
	if err != nil {
		return fmt.Errorf("game %d play %d: %w", gameID, playID, err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(anim)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(anim); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderToOutput renders fully in memory, so a failed build never creates or
// truncates the output file.
func renderToOutput(ctx context.Context, q querier, animator *animation.Animator, gameID, playID int64, cfg animation.Config, format, output string) error {
	var buf bytes.Buffer
	if err := renderPlay(ctx, q, animator, gameID, playID, cfg, format, &buf); err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func openOutput(name string) (io.WriteCloser, error) {
	if name == stdoutName || name == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
