package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-tileblit/tileblit"
	"github.com/valerio/go-tileblit/tileblit/backend"
	"github.com/valerio/go-tileblit/tileblit/backend/headless"
	"github.com/valerio/go-tileblit/tileblit/backend/sdl2"
	"github.com/valerio/go-tileblit/tileblit/backend/terminal"
	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/statsview"
	"github.com/valerio/go-tileblit/tileblit/tiles"
	"github.com/valerio/go-tileblit/tileblit/timing"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		slog.Error("Error running tileblit", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tileblit"
	app.Description = "Compares blitting tile images against filling rectangles, with a live FPS readout"
	app.Usage = "tileblit [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Output backend: terminal, headless or sdl2",
			Value: "terminal",
		},
		cli.StringFlag{
			Name:  "scene",
			Usage: "Scene to draw: showcase (tile grid) or stress (one tile drawn many times)",
			Value: "showcase",
		},
		cli.StringFlag{
			Name:  "mode",
			Usage: "Initial paint mode: image or fill (default: image for showcase, fill for stress)",
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Target frames per second",
			Value: display.DefaultTargetFPS,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame limiter: delay, ticker, adaptive or none (default: none when headless)",
			Value: "delay",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "tiles-x",
			Usage: "Tile columns",
			Value: display.DefaultTilesX,
		},
		cli.IntFlag{
			Name:  "tiles-y",
			Usage: "Tile rows",
			Value: display.DefaultTilesY,
		},
		cli.IntFlag{
			Name:  "tile-width",
			Usage: "Tile width in pixels",
			Value: display.DefaultTileWidth,
		},
		cli.IntFlag{
			Name:  "tile-height",
			Usage: "Tile height in pixels",
			Value: display.DefaultTileHeight,
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "Seed for tile colors",
			Value: display.DefaultSeed,
		},
		cli.IntFlag{
			Name:  "stress-count",
			Usage: "Draws per frame in the stress scene",
			Value: display.DefaultStressCount,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Show the stats pane and debug logs",
		},
		cli.BoolFlag{
			Name:  "statsview",
			Usage: "Serve runtime charts while running (requires -tags statsview)",
		},
		cli.StringFlag{
			Name:  "statsview-addr",
			Usage: "Listen address of the runtime charts server",
			Value: statsview.DefaultAddress,
		},
	}
	app.Action = runDemo
	return app
}

func runDemo(c *cli.Context) error {
	backendName := c.String("backend")
	if backendName == "headless" {
		level := slog.LevelInfo
		if c.Bool("debug") {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	}

	if c.Bool("statsview") {
		viewer := statsview.New(c.String("statsview-addr"), statsview.DefaultRefresh)
		viewer.Start()
		defer viewer.Stop()
	}

	limiterName := c.String("limiter")
	if backendName == "headless" && !c.IsSet("limiter") {
		limiterName = "none"
	}
	limiter, err := timing.New(limiterName, c.Int("fps"))
	if err != nil {
		return err
	}
	if stopper, ok := limiter.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	scene, sceneName, err := buildScene(c, limiter)
	if err != nil {
		return err
	}

	b, err := buildBackend(c, sceneName)
	if err != nil {
		return err
	}

	config := backend.BackendConfig{
		Title:     "tileblit " + sceneName,
		Scale:     display.DefaultPixelScale,
		ShowDebug: c.Bool("debug"),
	}
	return tileblit.Run(scene, b, config)
}

func buildScene(c *cli.Context, limiter timing.Limiter) (tileblit.Scene, string, error) {
	sceneName := c.String("scene")

	var mode *tiles.Mode
	if s := c.String("mode"); s != "" {
		m, err := tiles.ParseMode(s)
		if err != nil {
			return nil, "", err
		}
		mode = &m
	}

	switch sceneName {
	case "showcase":
		config := tileblit.DefaultShowcaseConfig()
		config.Grid.TilesX = c.Int("tiles-x")
		config.Grid.TilesY = c.Int("tiles-y")
		config.Grid.TileWidth = c.Int("tile-width")
		config.Grid.TileHeight = c.Int("tile-height")
		config.Grid.Seed = c.Uint64("seed")
		config.ReportEvery = c.Int("fps")
		config.Limiter = limiter
		if mode != nil {
			config.Mode = *mode
		}
		scene, err := tileblit.NewShowcase(config)
		return scene, sceneName, err
	case "stress":
		config := tileblit.DefaultStressConfig()
		config.Count = c.Int("stress-count")
		config.TileWidth = c.Int("tile-width")
		config.TileHeight = c.Int("tile-height")
		config.Seed = c.Uint64("seed")
		config.ReportEvery = c.Int("fps")
		config.Limiter = limiter
		if mode != nil {
			config.Mode = *mode
		}
		scene, err := tileblit.NewStress(config)
		return scene, sceneName, err
	default:
		return nil, "", fmt.Errorf("unknown scene %q", sceneName)
	}
}

func buildBackend(c *cli.Context, sceneName string) (backend.Backend, error) {
	switch c.String("backend") {
	case "terminal":
		return terminal.New(), nil
	case "sdl2":
		return sdl2.New(), nil
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames option with a positive value")
		}
		snapshotConfig, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), "tileblit_"+sceneName)
		if err != nil {
			return nil, err
		}
		return headless.New(frames, snapshotConfig), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.String("backend"))
	}
}
