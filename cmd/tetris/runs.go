package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `Show the most recent runs from the journal.

In the browser, Enter verifies the selected run by replaying it and
X deletes it. Use --plain to print the list instead.

Examples:
  tetris runs
  tetris runs --limit 50
  tetris runs --plain`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs instead of opening the browser")
}

func runRuns(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		if err := printRuns(store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	selected, err := tui.RunRunsBrowser(store, flagLimit, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	if selected == "" {
		return
	}

	snap, err := verifyRun(store, selected)
	if err != nil {
		logger.Error("replay failed", "id", selected, "error", err)
		store.Close()
		os.Exit(1)
	}
	logger.Info("replay verified", "id", selected, "ticks", snap.Tick, "score", snap.Score)
}

func printRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %8s  %3s  %5s  %s\n", "ID", "DATE", "SCORE", "LVL", "LINES", "END")
	for _, r := range runs {
		fmt.Printf("%-36s  %-16s  %8d  %3d  %5d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Level, r.Lines, r.EndReason)
	}
	return nil
}
