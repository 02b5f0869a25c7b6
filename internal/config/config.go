// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

// TetrisConfig contains all tunable rules of the tetris engine.
// Values are fixed for the life of one engine.
type TetrisConfig struct {
	Board    BoardConfig       `yaml:"board"`
	Queue    QueueConfig       `yaml:"queue"`
	Scoring  ScoringConfig     `yaml:"scoring"`
	Leveling LevelingConfig    `yaml:"leveling"`
	Gravity  GravityConfig     `yaml:"gravity"`
	Rotation RotationConfig    `yaml:"rotation"`
	Colors   map[string]string `yaml:"colors"` // piece kind letter -> color name
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// QueueConfig defines the next-piece lookahead.
type QueueConfig struct {
	Depth int `yaml:"depth"`
}

// ScoringConfig defines points awarded by the engine.
type ScoringConfig struct {
	LineClear []int `yaml:"line_clear"` // index k-1 = points for k rows, times level
	Fallback  int   `yaml:"fallback"`   // any other row count, times level
	SoftDrop  int   `yaml:"soft_drop"`  // per successful soft drop row
	HardDrop  int   `yaml:"hard_drop"`  // flat bonus per hard drop
}

// LevelingConfig defines how the level follows total lines.
type LevelingConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// GravityConfig defines the drop interval: max(min_ms, base_ms - (level-1)*step_ms).
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"`
	StepMS int `yaml:"step_ms"`
	MinMS  int `yaml:"min_ms"`
}

// RotationConfig defines the horizontal wall-kick search order.
type RotationConfig struct {
	Kicks []int `yaml:"kicks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}
