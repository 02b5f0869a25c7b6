package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// errDiverged is returned when a re-simulated run does not end where the
// journal says it did.
var errDiverged = errors.New("replay diverged from the recorded result")

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run and verify its result",
	Long: `Replay a run from the journal headlessly, using its stored seed,
tick rate, configuration and input log, and check that the final
score, level and lines match what was recorded.

Exits with status 1 if the replay diverges.

Examples:
  tetris replay 3f1c2a9e-7b7d-4d0e-9c55-0d1f1d1a2b3c`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := verifyRun(store, args[0])
	if err != nil {
		logger.Error("replay failed", "id", args[0], "error", err)
		store.Close()
		os.Exit(1)
	}
	logger.Info("replay verified", "id", args[0], "ticks", snap.Tick, "score", snap.Score, "lines", snap.Lines)
	fmt.Printf("OK  score %d  level %d  lines %d  (%d ticks)\n", snap.Score, snap.Level, snap.Lines, snap.Tick)
}

// runSource is the part of the journal a replay reads.
type runSource interface {
	Run(id string) (storage.Run, error)
	RunInputs(id string) ([]storage.InputEvent, error)
}

// verifyRun re-simulates a run and compares the outcome with the journal.
func verifyRun(src runSource, id string) (tetris.Snapshot, error) {
	run, err := src.Run(id)
	if err != nil {
		return tetris.Snapshot{}, err
	}
	inputs, err := src.RunInputs(run.ID)
	if err != nil {
		return tetris.Snapshot{}, err
	}

	cfg, err := config.Parse([]byte(run.ConfigYAML))
	if err != nil {
		return tetris.Snapshot{}, fmt.Errorf("stored config: %w", err)
	}
	rules, err := tetris.RulesFromConfig(cfg)
	if err != nil {
		return tetris.Snapshot{}, fmt.Errorf("stored config: %w", err)
	}
	game, err := tetris.New(rules)
	if err != nil {
		return tetris.Snapshot{}, err
	}

	snap := tetris.Replay(game, run.Seed, run.TickRate, run.Ticks, tui.Frames(inputs))

	switch {
	case snap.Score != run.Score:
		return snap, fmt.Errorf("%w: score %d, recorded %d", errDiverged, snap.Score, run.Score)
	case snap.Level != run.Level:
		return snap, fmt.Errorf("%w: level %d, recorded %d", errDiverged, snap.Level, run.Level)
	case snap.Lines != run.Lines:
		return snap, fmt.Errorf("%w: lines %d, recorded %d", errDiverged, snap.Lines, run.Lines)
	case run.EndReason == "game_over" && snap.State != tetris.StateGameOver.String():
		return snap, fmt.Errorf("%w: run ended in game over, replay is %s", errDiverged, snap.State)
	}
	return snap, nil
}
