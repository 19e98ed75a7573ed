package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/inconvenience/internal/platform/tui"
	"github.com/vovakirdan/inconvenience/internal/storage"
)

var (
	flagRecordsLevel int
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show level clear records",
	Long: `Display the best clear of every level. With --level, list the
fastest clears of that level instead.

Examples:
  inconvenience records
  inconvenience records --level 2
  inconvenience records --level 2 --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLevel, "level", -1, "Show the top clears of one level")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete records (of --level, or all)")
}

func runRecords(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsClear {
		clearRecords(store)
		return
	}
	if flagRecordsLevel >= 0 {
		showLevelRecords(store, flagRecordsLevel)
		return
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunRecords(stats, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Records")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No levels cleared yet.")
		return
	}
	fmt.Printf("  %-5s  %-16s  %-6s  %-10s  %-6s  %s\n", "Level", "Name", "Clears", "Best ticks", "Resets", "Last")
	fmt.Printf("  %-5s  %-16s  %-6s  %-10s  %-6s  %s\n", "-----", "----", "------", "----------", "------", "----")
	for _, s := range stats {
		fmt.Printf("  %-5d  %-16s  %-6d  %-10d  %-6d  %s\n",
			s.Level, s.Name, s.Clears, s.BestTicks, s.FewestResets, s.LastClear.Format("2006-01-02 15:04"))
	}
}

func showLevelRecords(store *storage.Store, level int) {
	clears, err := store.TopClears(level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest clears - level %d\n", level)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Ticks", "Resets", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, c := range clears {
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, c.Ticks, c.Resets, c.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func clearRecords(store *storage.Store) {
	var err error
	if flagRecordsLevel >= 0 {
		err = store.DeleteClears(flagRecordsLevel)
	} else {
		err = store.DeleteAllClears()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting records: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Records deleted.")
}
