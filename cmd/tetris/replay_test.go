package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// playRecorded plays a scripted session and returns the game and its input log.
func playRecorded(t *testing.T, cfg config.TetrisConfig, seed int64, ticks int) (*tetris.Game, []storage.InputEvent) {
	t.Helper()
	rules, err := tetris.RulesFromConfig(cfg)
	require.NoError(t, err)
	g, err := tetris.New(rules)
	require.NoError(t, err)

	w, h := g.MinSize()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: seed})

	actions := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionRotateCW,
		core.ActionRotateCCW, core.ActionSoftDrop, core.ActionHardDrop, core.ActionHold,
	}
	rng := rand.New(rand.NewSource(seed))
	rec := tui.NewRecorder()
	for range ticks {
		frame := core.NewInputFrame()
		if rng.Intn(3) == 0 {
			frame.Set(actions[rng.Intn(len(actions))])
		}
		g.Step(frame)
		rec.Record(g.Tick(), frame)
	}
	return g, rec.Events()
}

func saveRecorded(t *testing.T, store *storage.Store, cfg config.TetrisConfig, g *tetris.Game, seed int64, inputs []storage.InputEvent) string {
	t.Helper()
	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	state := g.State()
	id, err := store.SaveRun(storage.Run{
		Seed:       seed,
		TickRate:   60,
		ConfigYAML: string(data),
		Ticks:      g.Tick(),
		Score:      state.Score,
		Level:      state.Level,
		Lines:      state.Lines,
		EndReason:  "quit",
	}, inputs)
	require.NoError(t, err)
	return id
}

func TestVerifyRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := config.DefaultTetrisConfig()
	config.ApplyTetrisPreset(&cfg, config.DifficultyHard)

	g, inputs := playRecorded(t, cfg, 31337, 2500)
	id := saveRecorded(t, store, cfg, g, 31337, inputs)

	snap, err := verifyRun(store, id)
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), snap)
}

func TestVerifyRunDetectsDivergence(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := config.DefaultTetrisConfig()
	g, inputs := playRecorded(t, cfg, 5, 1500)

	id := saveRecorded(t, store, cfg, g, 5, inputs)

	run, err := store.Run(id)
	require.NoError(t, err)
	run.ID = ""
	run.Score++
	bad, err := store.SaveRun(run, inputs)
	require.NoError(t, err)

	_, err = verifyRun(store, bad)
	assert.ErrorIs(t, err, errDiverged)
}

func TestVerifyRunNotFound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = verifyRun(store, "missing")
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}
