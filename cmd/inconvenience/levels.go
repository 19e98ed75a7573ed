package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/inconvenience/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or validate the level table",
	Long: `Inspect the level table: the built-in levels, or the files in the
directory given with --levels.

Examples:
  inconvenience levels list
  inconvenience levels validate --levels ./levels`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse every level and report problems",
	Long: `Load and parse every level of the table. Exits with status 1 if a
level is missing, malformed, or uses glyphs the game does not know.`,
	Args: cobra.NoArgs,
	Run:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func mustOpenLevels() *levels.Table {
	table, err := openLevels(mustLoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading levels: %v\n", err)
		os.Exit(1)
	}
	return table
}

func runLevelsList(cmd *cobra.Command, args []string) {
	reports := levels.Check(mustOpenLevels())

	fmt.Println("Levels:")
	fmt.Println()
	for _, r := range reports {
		if r.Err != nil {
			fmt.Printf("  %2d  %-16s  (unreadable)\n", r.Index, r.Name)
			continue
		}
		fmt.Printf("  %2d  %-16s  %3dx%-3d  gems %d  keys %d  locks %d\n",
			r.Index, r.Name, r.Width, r.Height, r.Gems, r.Keys, r.Locks)
	}
	fmt.Println()
	fmt.Println("Run 'inconvenience play' to start.")
}

func runLevelsValidate(cmd *cobra.Command, args []string) {
	reports := levels.Check(mustOpenLevels())

	failed := 0
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("FAIL  %s: %v\n", r.Name, r.Err)
		case len(r.Unknown) > 0:
			failed++
			fmt.Printf("FAIL  %s: unknown glyphs %q\n", r.Name, string(r.Unknown))
		case r.Gems == 0:
			fmt.Printf("warn  %s: no gems, the exit is open from the start\n", r.Name)
		case r.Keys < r.Locks:
			fmt.Printf("warn  %s: %d locks but only %d keys\n", r.Name, r.Locks, r.Keys)
		default:
			fmt.Printf("ok    %s\n", r.Name)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed\n", failed, len(reports))
		os.Exit(1)
	}
}
