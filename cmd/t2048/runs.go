package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagRunsBest  bool
	flagRunsTUI   bool
	flagRunsLimit int
	flagRunsClear bool
	flagRunsBoard bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show finished runs",
	Long: `Display finished runs, newest first or best first.

Examples:
  t2048 runs
  t2048 runs --best --limit 5
  t2048 runs --best --board
  t2048 runs --tui
  t2048 runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsBest, "best", false, "Order by max tile instead of date")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in an interactive table")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all stored runs")
	runsCmd.Flags().BoolVar(&flagRunsBoard, "board", false, "Print the final board of the first listed run")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(t2048.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		view := tui.ViewRecent
		if flagRunsBest {
			view = tui.ViewBest
		}
		if err := tui.RunHistory(store, t2048.GameID, view, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history screen: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagRunsBest {
		title = "Best runs"
		runs, err = store.BestRuns(t2048.GameID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(t2048.GameID, flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - 2048\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' until the board fills up!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "#", "Max", "Moves", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "--", "---", "-----", "---", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-9s  %s\n", i+1, r.MaxTile, r.Moves, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagRunsBoard {
		fmt.Println()
		if err := writeRunBoard(os.Stdout, runs[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading board: %v\n", err)
		}
	}

	if stats, err := store.RunStats(t2048.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best tile: %d  Avg moves: %.0f\n", stats.Runs, stats.BestTile, stats.AvgMoves)
	}
}

// writeRunBoard prints the stored final board of r.
func writeRunBoard(w io.Writer, r storage.Run) error {
	rows, err := storage.DecodeBoard(r.Board)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No board stored for this run.")
		return nil
	}
	fmt.Fprintf(w, "Final board (max %d, %d moves):\n", r.MaxTile, r.Moves)
	writeGrid(w, rows)
	return nil
}
