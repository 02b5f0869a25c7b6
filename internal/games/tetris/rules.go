package tetris

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Validation errors returned by Rules.Validate and NewEngine.
var (
	ErrBoardTooSmall = errors.New("tetris: board too small for every piece")
	ErrInvalidRules  = errors.New("tetris: invalid rules")
)

// Rules are the contract constants of one engine: board size, queue depth,
// score table, gravity curve, kick order and piece colors.
type Rules struct {
	Cols, Rows     int
	QueueDepth     int
	LineScores     []int // LineScores[k-1] is awarded for k rows, times level
	FallbackScore  int   // any other non-zero row count, times level
	SoftDropPoints int
	HardDropPoints int
	LinesPerLevel  int
	BaseDrop       time.Duration
	DropStep       time.Duration
	MinDrop        time.Duration
	Kicks          []int
	Colors         [len(Kinds)]core.Color
}

// DefaultRules returns the standard 10×20 rules.
func DefaultRules() Rules {
	r, err := RulesFromConfig(config.DefaultTetrisConfig())
	if err != nil {
		panic(err) // built-in defaults are always valid
	}
	return r
}

// RulesFromConfig converts a loaded configuration and validates the result.
func RulesFromConfig(cfg config.TetrisConfig) (Rules, error) {
	r := Rules{
		Cols:           cfg.Board.Cols,
		Rows:           cfg.Board.Rows,
		QueueDepth:     cfg.Queue.Depth,
		LineScores:     append([]int(nil), cfg.Scoring.LineClear...),
		FallbackScore:  cfg.Scoring.Fallback,
		SoftDropPoints: cfg.Scoring.SoftDrop,
		HardDropPoints: cfg.Scoring.HardDrop,
		LinesPerLevel:  cfg.Leveling.LinesPerLevel,
		BaseDrop:       time.Duration(cfg.Gravity.BaseMS) * time.Millisecond,
		DropStep:       time.Duration(cfg.Gravity.StepMS) * time.Millisecond,
		MinDrop:        time.Duration(cfg.Gravity.MinMS) * time.Millisecond,
		Kicks:          append([]int(nil), cfg.Rotation.Kicks...),
	}

	for letter, name := range cfg.Colors {
		k, ok := ParseKind(letter)
		if !ok {
			return Rules{}, fmt.Errorf("%w: unknown piece %q in colors", ErrInvalidRules, letter)
		}
		c, ok := core.ParseColor(name)
		if !ok || c == core.ColorDefault {
			return Rules{}, fmt.Errorf("%w: bad color %q for piece %s", ErrInvalidRules, name, k)
		}
		r.Colors[k] = c
	}
	for _, k := range Kinds {
		if r.Colors[k] == core.ColorDefault {
			return Rules{}, fmt.Errorf("%w: no color for piece %s", ErrInvalidRules, k)
		}
	}

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate rejects rules the engine cannot run with.
func (r Rules) Validate() error {
	if r.Cols < 4 || r.Rows < 4 {
		return fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, r.Cols, r.Rows)
	}
	switch {
	case r.QueueDepth < 1:
		return fmt.Errorf("%w: queue depth %d", ErrInvalidRules, r.QueueDepth)
	case len(r.LineScores) == 0:
		return fmt.Errorf("%w: empty line score table", ErrInvalidRules)
	case r.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines per level %d", ErrInvalidRules, r.LinesPerLevel)
	case r.MinDrop <= 0 || r.BaseDrop < r.MinDrop:
		return fmt.Errorf("%w: drop interval base %v min %v", ErrInvalidRules, r.BaseDrop, r.MinDrop)
	case r.DropStep < 0:
		return fmt.Errorf("%w: negative drop step %v", ErrInvalidRules, r.DropStep)
	case len(r.Kicks) == 0:
		return fmt.Errorf("%w: empty kick table", ErrInvalidRules)
	}
	for _, c := range r.Colors {
		if c == core.ColorDefault {
			return fmt.Errorf("%w: piece color unset", ErrInvalidRules)
		}
	}
	return nil
}

// LineClearScore is the score for clearing n rows at once at level.
func (r Rules) LineClearScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n <= len(r.LineScores) {
		return r.LineScores[n-1] * level
	}
	return r.FallbackScore * level
}

// LevelFor returns 1 + lines/LinesPerLevel.
func (r Rules) LevelFor(lines int) int {
	return 1 + lines/r.LinesPerLevel
}

// DropInterval returns max(MinDrop, BaseDrop - (level-1)*DropStep).
func (r Rules) DropInterval(level int) time.Duration {
	return max(r.MinDrop, r.BaseDrop-time.Duration(level-1)*r.DropStep)
}
