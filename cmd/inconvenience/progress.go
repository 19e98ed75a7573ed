package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/inconvenience/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset the saved level",
	Long: `The progress file holds the index of the level the player reached.
Continue in the menu starts there.

Examples:
  inconvenience progress show
  inconvenience progress reset`,
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved level index",
	Args:  cobra.NoArgs,
	Run:   runProgressShow,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved level index",
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

func init() {
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func mustOpenProgress() *storage.ProgressFile {
	cfg := mustLoadConfig()
	progress, err := storage.NewProgressFile(cfg.Progress.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return progress
}

func runProgressShow(cmd *cobra.Command, args []string) {
	progress := mustOpenProgress()

	level, err := progress.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("No progress saved yet (%s)\n", progress.Path())
	case errors.Is(err, storage.ErrCorruptProgress):
		fmt.Printf("Progress file is corrupt, Continue will start at level 0 (%s)\n", progress.Path())
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("Saved level: %d (%s)\n", level, progress.Path())
	}
}

func runProgressReset(cmd *cobra.Command, args []string) {
	progress := mustOpenProgress()

	if err := progress.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Progress reset.")
}
