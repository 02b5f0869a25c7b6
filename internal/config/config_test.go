package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  cols: 12\ngravity:\n  base_ms: 500\ncolors:\n  T: bright_magenta\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, src, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)

	assert.Equal(t, 12, cfg.Board.Cols)
	assert.Equal(t, 20, cfg.Board.Rows, "unset fields keep defaults")
	assert.Equal(t, 500, cfg.Gravity.BaseMS)
	assert.Equal(t, 70, cfg.Gravity.StepMS)
	assert.Equal(t, "bright_magenta", cfg.Colors["T"])
	assert.Equal(t, "cyan", cfg.Colors["I"], "color map merges over defaults")
}

func TestLoadTetrisCustomErrors(t *testing.T) {
	_, _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, _, err = LoadTetris(bad)
	require.Error(t, err)
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, src, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, 10, cfg.Board.Cols)

	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "tetris.yaml"), []byte("board:\n  cols: 11\n"), 0o600))
	cfg, src, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 11, cfg.Board.Cols)

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "tetris.yaml"), []byte("board:\n  cols: 14\n"), 0o600))
	cfg, src, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src)
	assert.Equal(t, 14, cfg.Board.Cols)
}

func TestMarshalParse(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Rotation.Kicks = []int{0, -1, 1}
	ApplyTetrisPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   GravityConfig
	}{
		{DifficultyEasy, GravityConfig{BaseMS: 1100, StepMS: 60, MinMS: 120}},
		{DifficultyNormal, GravityConfig{BaseMS: 900, StepMS: 70, MinMS: 80}},
		{DifficultyHard, GravityConfig{BaseMS: 600, StepMS: 50, MinMS: 60}},
		{DifficultyFixed, GravityConfig{BaseMS: 900, StepMS: 0, MinMS: 80}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			assert.Equal(t, tc.want, cfg.Gravity)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)

	p, ok = ParsePreset("hard")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, p)

	_, ok = ParsePreset("nightmare")
	assert.False(t, ok)
}
