// inconvenience is a wrapping tile platformer for the terminal.
//
// Usage:
//
//	inconvenience play               - Play from the intro and menu
//	inconvenience levels list        - List the level table
//	inconvenience levels validate    - Parse every level and report problems
//	inconvenience records            - Show the best clear of every level
//	inconvenience progress show      - Print the saved level index
//	inconvenience progress reset     - Forget the saved level index
//	inconvenience replay             - Run scripted keys headlessly
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--levels <dir>     - Play levels from a directory instead of the built-in ones
//	--db <path>        - Records database path
//	--progress <path>  - Progress file path
//	--log <path>       - Log file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagDBPath   string
	flagProgress string
	flagLogPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inconvenience",
	Short: "A platformer on a level that wraps around at every edge",
	Long: `Inconvenience is a terminal platformer played on a toroidal grid:
walk off one edge and you come back on the other. Every step you take
leaves a wall behind, so plan your route.

Available commands:
  play      - Play the game
  levels    - List or validate the level table
  records   - View the best clear of every level
  progress  - Show or reset the saved level
  replay    - Run a key script without a terminal

Examples:
  inconvenience play
  inconvenience play --levels ./levels --watch
  inconvenience levels validate --levels ./levels
  inconvenience replay --level 0 --keys "lllllllllll"`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagProgress, "progress", "", "Path to progress file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(replayCmd)
}
