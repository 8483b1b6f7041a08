// cmd/asteroids/main.go
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"
	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
	"github.com/opd-ai/go-asteroids/pkg/rng"
	"github.com/opd-ai/go-asteroids/pkg/tui"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "terminal", "Renderer type: 'terminal' or 'engo'")
	logPath := flag.String("log", "", "Write logs to this file (terminal renderer discards logs without it)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 1280, "Window width (Engo only)")
	height := flag.Int("height", 720, "Window height (Engo only)")
	font := flag.String("font", "", "TrueType font for the score display (Engo only)")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	seed, err := gameSeed(gameConfig)
	if err != nil {
		logger.Error(ctx, "Failed to seed game", err)
		os.Exit(1)
	}

	game, err := engine.NewGame(gameConfig, rng.New(seed), engine.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	switch *renderer {
	case "engo":
		startEngoRenderer(game, logger, *font, *width, *height, *fullscreen)
	case "terminal":
		if err := startTerminalRenderer(ctx, game, logger); err != nil {
			logger.Error(ctx, "Terminal renderer failed", err)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	default:
		logger.Error(ctx, "Unknown renderer", nil, "renderer", *renderer)
		os.Exit(2)
	}

	fmt.Printf("Final score %s, reached wave %d\n", humanize.Comma(int64(game.Score())), game.Wave())
}

// newLogger picks the log destination. The terminal renderer owns stdout,
// so it only logs when given a file.
func newLogger(path, renderer string) (*logging.Logger, func(), error) {
	if path == "" {
		if renderer == "terminal" {
			return logging.NewDiscardLogger(), func() {}, nil
		}
		return logging.NewLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
}

// loadConfig reads path, falling back to defaults when it does not exist,
// then applies environment overrides
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var gameConfig *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		return nil, logging.WrapError(err, "applying environment overrides")
	}
	return gameConfig, nil
}

// gameSeed uses the configured seed when there is one and fresh entropy
// otherwise
func gameSeed(cfg *config.Config) (rng.Seed, error) {
	if cfg.Seed != nil {
		return rng.SeedFromUint64(*cfg.Seed), nil
	}
	return rng.NewSeed(rand.Reader)
}

// startEngoRenderer opens a window and runs the game in it until closed
func startEngoRenderer(game *engine.Game, logger *logging.Logger, font string, width, height int, fullscreen bool) {
	scene := engorender.NewGameScene(game, logger)
	scene.FontURL = font

	opts := engo.RunOptions{
		Title:      "Go Asteroids",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// startTerminalRenderer runs the game in the terminal until the player
// quits or the process is signalled
func startTerminalRenderer(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	host := tui.NewHost(screen, game, tui.Options{Logger: logger})
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
