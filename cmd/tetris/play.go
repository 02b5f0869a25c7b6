package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a tetris session.

Controls:
  Left/Right, A/D   - Shift piece
  Down, S           - Soft drop
  Space             - Hard drop
  Up, X / Z         - Rotate clockwise / counterclockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart with a new seed
  Ctrl+S            - Screenshot to ~/.arcade/screenshots
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower gravity, gentle speedup
  normal - Standard curve (900ms, -70ms per level, 80ms floor)
  hard   - Fast gravity from level 1
  fixed  - No per-level speedup

Every finished session is written to the run journal and can be
verified later with 'tetris replay'.

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42 --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.TetrisConfig, config.DifficultyPreset, config.Source, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.TetrisConfig{}, "", "", fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	cfg, src, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, "", "", err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, preset, src, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, preset, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules, err := tetris.RulesFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	game, err := tetris.New(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	configYAML, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	logger.Debug("config resolved", "source", src, "preset", preset)

	rcfg := core.DefaultConfig()
	rcfg.TickRate = flagFPS
	rcfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	// A missing journal never blocks play.
	var runs tui.RunStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("could not open run journal", "error", err)
	} else {
		runs = store
	}

	lastRun, runErr := tui.Run(game, runs, logger, rcfg, tui.RunInfo{
		Preset:     string(preset),
		ConfigYAML: string(configYAML),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	state := game.State()
	fmt.Printf("Score %d  Level %d  Lines %d\n", state.Score, state.Level, state.Lines)
	if lastRun != "" {
		fmt.Printf("Run saved as %s\n", lastRun)
	}
}
