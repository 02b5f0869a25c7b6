package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	id, err := store.SaveRun(Run{Seed: 1, TickRate: 60}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	r, err := store.Run(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Seed)
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		Seed:       42,
		TickRate:   60,
		Preset:     "hard",
		ConfigYAML: "board:\n  cols: 10\n",
		Ticks:      1234,
		Score:      4200,
		Level:      3,
		Lines:      21,
		EndReason:  "game_over",
	}
	inputs := []InputEvent{
		{Tick: 3, Mask: 1 << 1},
		{Tick: 10, Mask: 1<<4 | 1<<5},
		{Tick: 1200, Mask: 1 << 4},
	}

	id, err := store.SaveRun(run, inputs)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Run(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, run.Seed, got.Seed)
	assert.Equal(t, run.TickRate, got.TickRate)
	assert.Equal(t, run.Preset, got.Preset)
	assert.Equal(t, run.ConfigYAML, got.ConfigYAML)
	assert.Equal(t, run.Ticks, got.Ticks)
	assert.Equal(t, run.Score, got.Score)
	assert.Equal(t, run.Level, got.Level)
	assert.Equal(t, run.Lines, got.Lines)
	assert.Equal(t, run.EndReason, got.EndReason)
	assert.False(t, got.CreatedAt.IsZero(), "created_at should be set")

	gotInputs, err := store.RunInputs(id)
	require.NoError(t, err)
	assert.Equal(t, inputs, gotInputs)
}

func TestSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Seed: 7, TickRate: 30}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	_, err = store.SaveRun(Run{ID: "fixed-id", Seed: 8, TickRate: 30}, nil)
	assert.Error(t, err, "duplicate IDs must be rejected")
}

func TestSaveRunRollsBackOnBadInput(t *testing.T) {
	store := openTestStore(t)

	// Duplicate ticks violate the primary key; the run row must not survive.
	_, err := store.SaveRun(Run{ID: "broken", Seed: 1, TickRate: 60}, []InputEvent{
		{Tick: 5, Mask: 2},
		{Tick: 5, Mask: 4},
	})
	require.Error(t, err)

	_, err = store.Run("broken")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Run("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	inputs, err := store.RunInputs("missing")
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.SaveRun(Run{Seed: int64(i), TickRate: 60, Score: i * 100}, nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Same-second inserts fall back to insertion order, newest first.
	assert.Equal(t, ids[4], runs[0].ID)
	assert.Equal(t, ids[3], runs[1].ID)
	assert.Equal(t, ids[2], runs[2].ID)

	all, err := store.RecentRuns(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Seed: 3, TickRate: 60}, []InputEvent{{Tick: 1, Mask: 2}})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRun(id))

	_, err = store.Run(id)
	assert.ErrorIs(t, err, ErrRunNotFound)
	inputs, err := store.RunInputs(id)
	require.NoError(t, err)
	assert.Empty(t, inputs)

	assert.ErrorIs(t, store.DeleteRun(id), ErrRunNotFound)
}
