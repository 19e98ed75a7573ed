package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/inconvenience/internal/game"
	"github.com/vovakirdan/inconvenience/internal/platform/tui"
	"github.com/vovakirdan/inconvenience/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the intro screen. From the menu pick New to start
at the first level, or Continue to pick up at the saved level.

Controls:
  Arrow keys / hjkl  - Move, climb and drop
  Enter              - Select menu item
  R                  - Restart the current level
  Esc                - Quit
  Ctrl+C             - Quit immediately

Examples:
  inconvenience play
  inconvenience play --levels ./levels --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files from --levels when they change")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	// Check terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && (width < cfg.Window.Width || height < cfg.Window.Height+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
			width, height, cfg.Window.Width, cfg.Window.Height+1)
	}

	logger, closer := newLogger(cfg, "inconvenience")
	defer closer.Close()

	tuiOpts := tui.Options{Logger: logger}
	if flagWatch {
		watcher, err := openWatcher(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching levels: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		tuiOpts.Watcher = watcher
		logger.Info("watching levels", "dir", cfg.Levels.Dir)
	}

	table, err := openLevels(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading levels: %v\n", err)
		os.Exit(1)
	}

	progress, err := storage.NewProgressFile(cfg.Progress.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := game.Options{
		Config:   cfg.Runtime(),
		Levels:   table,
		Progress: progress,
		Logger:   logger,
	}

	// Records are optional; play on without them.
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	engine, err := game.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game started", "levels", table.Count())
	if err := tui.Run(engine, cfg.Runtime(), tuiOpts); err != nil {
		logger.Error("game error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game ended", "level", engine.LevelIndex(), "ticks", engine.Tick())
}
