package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jtanningbed/nfl-play-animate/animation"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func main() {
	// .env is optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "nfl-play-animate",
		Usage:   "Browse and animate NFL player tracking plays",
		Version: semanticVersion,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			serveCommand(),
			ingestCommand(),
			renderCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the query API and the play player",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  addrFlag,
				Usage: "Address to listen on",
				Value: defaultAddr(),
			},
		}, animationFlags()...),
		Action: func(cCtx *cli.Context) error {
			db, err := openDB(cCtx.String(dbFlag))
			if err != nil {
				return err
			}
			defer db.Close()

			resolver, err := newResolver(cCtx.String(colorsFlag))
			if err != nil {
				return err
			}

			srv := newServer(db, resolver, animationConfig(cCtx))
			httpServer := &http.Server{
				Addr:              cCtx.String(addrFlag),
				Handler:           srv.routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ln, err := net.Listen("tcp", httpServer.Addr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("🏈 NFL Play Animator is running on http://localhost%s\n", httpServer.Addr)
			if err := serveUntil(ctx, httpServer, ln); err != nil {
				return err
			}
			fmt.Println("👋 Server stopped")
			return nil
		},
	}
}

// serveUntil serves on ln until ctx ends and returns once in-flight
// requests have drained.
func serveUntil(ctx context.Context, srv *http.Server, ln net.Listener) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		drained <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-drained
}

func ingestCommand() *cli.Command {
	return &cli.Command{
		Name:  "ingest",
		Usage: "Load games, plays and tracking CSVs into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "games", Usage: "games.csv"},
			&cli.StringFlag{Name: "plays", Usage: "plays.csv"},
			&cli.StringSliceFlag{Name: "tracking", Usage: "tracking_week_N.csv, repeatable"},
		},
		Action: func(cCtx *cli.Context) error {
			var sources []ingestSource
			if path := cCtx.String("games"); path != "" {
				sources = append(sources, ingestSource{path: path, table: gamesTable})
			}
			if path := cCtx.String("plays"); path != "" {
				sources = append(sources, ingestSource{path: path, table: playsTable})
			}
			for _, path := range cCtx.StringSlice("tracking") {
				sources = append(sources, ingestSource{path: path, table: trackingTable})
			}
			if len(sources) == 0 {
				return fmt.Errorf("nothing to ingest: pass --games, --plays or --tracking")
			}

			db, err := openDB(cCtx.String(dbFlag))
			if err != nil {
				return err
			}
			defer db.Close()

			start := time.Now()
			counts, err := ingest(cCtx.Context, db, sources)
			if err != nil {
				return err
			}
			for _, table := range []string{gamesTable.name, playsTable.name, trackingTable.name} {
				if n, ok := counts[table]; ok {
					fmt.Printf("✅ %s: %d rows\n", table, n)
				}
			}
			fmt.Printf("📦 Ingest finished in %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Write the animation of one play as json or yaml",
		Flags: append([]cli.Flag{
			&cli.Int64Flag{Name: "game", Usage: "Game id", Required: true},
			&cli.Int64Flag{Name: "play", Usage: "Play id", Required: true},
			&cli.StringFlag{Name: "format", Usage: "json or yaml", Value: "json"},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write, or \"-\" for stdout",
				Value:   stdoutName,
			},
		}, animationFlags()...),
		Action: func(cCtx *cli.Context) error {
			db, err := openDB(cCtx.String(dbFlag))
			if err != nil {
				return err
			}
			defer db.Close()

			resolver, err := newResolver(cCtx.String(colorsFlag))
			if err != nil {
				return err
			}

			return renderToOutput(cCtx.Context, db, animation.NewAnimator(resolver),
				cCtx.Int64("game"), cCtx.Int64("play"), animationConfig(cCtx), cCtx.String("format"), cCtx.String("output"))
		},
	}
}
