package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols: 10,
			Rows: 20,
		},
		Queue: QueueConfig{
			Depth: 5,
		},
		Scoring: ScoringConfig{
			LineClear: []int{100, 300, 500, 800},
			Fallback:  1000,
			SoftDrop:  1,
			HardDrop:  2,
		},
		Leveling: LevelingConfig{
			LinesPerLevel: 10,
		},
		Gravity: GravityConfig{
			BaseMS: 900,
			StepMS: 70,
			MinMS:  80,
		},
		Rotation: RotationConfig{
			Kicks: []int{0, 1, -1, 2, -2},
		},
		Colors: map[string]string{
			"I": "cyan",
			"J": "blue",
			"L": "orange",
			"O": "yellow",
			"S": "green",
			"T": "magenta",
			"Z": "red",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
