package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/inconvenience/internal/config"
	"github.com/vovakirdan/inconvenience/internal/core"
	"github.com/vovakirdan/inconvenience/internal/game"
	"github.com/vovakirdan/inconvenience/internal/levels"
)

var (
	flagReplayLevel    int
	flagReplayKeys     string
	flagReplayRealTime bool
	flagReplayQuiet    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a key script without a terminal",
	Long: `Start a level and feed it a script of keys, then print the final
screen and engine state. Progress and records are left untouched.

Script keys:
  h <  left     l >  right    k ^  up      j v  down
  !    enter    q    escape   r    reset   .    no key

Examples:
  inconvenience replay --level 0 --keys "lllllllllll"
  inconvenience replay --level 1 --keys "llllll kk llll" --quiet`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayLevel, "level", 0, "Level index to start at")
	replayCmd.Flags().StringVar(&flagReplayKeys, "keys", "", "Key script to play")
	replayCmd.Flags().BoolVar(&flagReplayRealTime, "realtime", false, "Honor intro and fall delays")
	replayCmd.Flags().BoolVarP(&flagReplayQuiet, "quiet", "q", false, "Print only the final state, not the screen")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	table, err := openLevels(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading levels: %v\n", err)
		os.Exit(1)
	}

	logger, closer := newLogger(cfg, "replay")
	defer closer.Close()

	in := game.ParseScript(flagReplayKeys)
	in.RealTime = flagReplayRealTime

	snap, err := replay(cmd.Context(), os.Stdout, cfg, table, game.Options{Logger: logger}, flagReplayLevel, in, !flagReplayQuiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("replay finished", "level", snap.Level, "tick", snap.Tick, "state", snap.State)
}

// replay plays in on level index and writes the result to w. Options
// supplies everything except the config and the level table.
func replay(ctx context.Context, w io.Writer, cfg config.GameConfig, table *levels.Table,
	opts game.Options, index int, in game.Input, showScreen bool) (game.Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts.Config = cfg.Runtime()
	opts.Levels = table
	engine, err := game.New(opts)
	if err != nil {
		return game.Snapshot{}, err
	}
	if err := engine.StartGame(index); err != nil {
		return game.Snapshot{}, err
	}

	screen := core.NewScreen(cfg.Window.Width, cfg.Window.Height)
	if err := game.Run(ctx, engine, in, screen); err != nil {
		return game.Snapshot{}, err
	}

	snap := engine.Snapshot()
	if showScreen {
		for y := range screen.Height() {
			fmt.Fprintln(w, strings.TrimRight(screen.Row(y), " "))
		}
	}
	fmt.Fprintf(w, "state %s  level %d  tick %d  frames %d\n", snap.State, snap.Level, snap.Tick, screen.Frames())
	fmt.Fprintf(w, "player %d,%d  fall %d  gems %d  keys %d  trail %d\n",
		snap.PlayerX, snap.PlayerY, snap.Fall, snap.Gems, snap.Keys, snap.Trail)
	return snap, nil
}
