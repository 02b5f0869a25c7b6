package tetris

import (
	"math/rand"
	"time"
)

// State is the engine's top-level mode.
type State int

const (
	StateFalling State = iota
	StatePaused
	StateGameOver
)

// String returns the snake_case name used in snapshots and the run journal.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Direction selects a rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

// Engine owns one play session. All methods are synchronous and must be
// called from a single goroutine. Rejected actions leave state untouched.
type Engine struct {
	rules Rules
	seed  int64

	board  *Board
	bag    *Randomizer
	active Piece

	held     Kind
	hasHeld  bool
	holdUsed bool

	score int
	level int
	lines int

	gravity      time.Duration // time since the last forced descent
	dropInterval time.Duration

	paused   bool
	gameOver bool
	spawns   int
}

// NewEngine validates rules and starts a session seeded with seed.
func NewEngine(rules Rules, seed int64) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{rules: rules}
	e.Reset(seed)
	return e, nil
}

// Reset starts a fresh session with a new seed.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.Restart()
}

// Restart reinitializes every piece of session state as if newly
// constructed. The piece sequence repeats because the seed is kept.
func (e *Engine) Restart() {
	e.board = NewBoard(e.rules.Cols, e.rules.Rows)
	e.bag = NewRandomizer(rand.New(rand.NewSource(e.seed)), e.rules.QueueDepth)
	e.hasHeld = false
	e.held = 0
	e.holdUsed = false
	e.score = 0
	e.lines = 0
	e.level = 1
	e.gravity = 0
	e.dropInterval = e.rules.DropInterval(e.level)
	e.paused = false
	e.gameOver = false
	e.spawns = 0
	e.spawn()
}

// newPiece builds a piece of kind at the spawn position.
func (e *Engine) newPiece(kind Kind) Piece {
	p := NewPiece(kind, e.rules.Colors[kind])
	p.MoveToSpawn(e.rules.Cols)
	return p
}

// spawn activates the next queued kind. A spawn that collides ends the game.
func (e *Engine) spawn() {
	e.active = e.newPiece(e.bag.Next())
	e.holdUsed = false
	e.spawns++
	if e.board.Collides(e.active) {
		e.gameOver = true
	}
}

func (e *Engine) playing() bool {
	return !e.paused && !e.gameOver
}

// lock merges the active piece, clears lines and spawns the next piece.
// It returns the number of rows cleared.
func (e *Engine) lock() int {
	e.board.Merge(e.active)
	n := e.board.ClearFullLines()
	if n > 0 {
		e.score += e.rules.LineClearScore(n, e.level)
		e.lines += n
		if level := e.rules.LevelFor(e.lines); level != e.level {
			e.level = level
			e.dropInterval = e.rules.DropInterval(level)
		}
	}
	e.spawn()
	return n
}

// Move shifts the active piece dx columns. A colliding move is reverted.
func (e *Engine) Move(dx int) bool {
	if !e.playing() {
		return false
	}
	e.active.X += dx
	if e.board.Collides(e.active) {
		e.active.X -= dx
		return false
	}
	return true
}

// SoftDrop moves the piece one row down for SoftDropPoints. A blocked soft
// drop is reverted and never locks; only gravity and hard drop lock.
func (e *Engine) SoftDrop() bool {
	if !e.playing() {
		return false
	}
	e.active.Y++
	if e.board.Collides(e.active) {
		e.active.Y--
		return false
	}
	e.score += e.rules.SoftDropPoints
	return true
}

// HardDrop drops the piece to its landing row, locks it, spawns the next
// piece and awards HardDropPoints. It returns the rows cleared.
func (e *Engine) HardDrop() (cleared int, ok bool) {
	if !e.playing() {
		return 0, false
	}
	e.active.Y = LandingRow(e.board, e.active)
	cleared = e.lock()
	e.score += e.rules.HardDropPoints
	return cleared, true
}

// Rotate turns the active piece and tries the kick offsets in order.
// If every offset collides the matrix and position are restored.
func (e *Engine) Rotate(dir Direction) bool {
	if !e.playing() {
		return false
	}
	prev := e.active.Clone()
	if dir == Counterclockwise {
		e.active.RotateCounterclockwise()
	} else {
		e.active.RotateClockwise()
	}

	for _, off := range e.rules.Kicks {
		e.active.X = prev.X + off
		if !e.board.Collides(e.active) {
			return true
		}
	}
	e.active = prev
	return false
}

// HoldSwap stores the active kind in the hold slot, once per spawn.
// An empty slot spawns the next queued piece; otherwise the held kind comes
// back as a fresh piece at the spawn position.
func (e *Engine) HoldSwap() bool {
	if !e.playing() || e.holdUsed {
		return false
	}
	kind := e.active.Kind
	if !e.hasHeld {
		e.held, e.hasHeld = kind, true
		e.spawn()
	} else {
		swapped := e.held
		e.held = kind
		e.active = e.newPiece(swapped)
		if e.board.Collides(e.active) {
			e.gameOver = true
		}
	}
	e.holdUsed = true
	return true
}

// TogglePause flips between falling and paused. Ignored after game over.
func (e *Engine) TogglePause() bool {
	if e.gameOver {
		return false
	}
	e.paused = !e.paused
	return true
}

// StepGravity advances the gravity timer by dt. When the drop interval is
// reached the piece descends one row, locking if it cannot.
// It reports whether a lock happened and how many rows were cleared.
func (e *Engine) StepGravity(dt time.Duration) (locked bool, cleared int) {
	if !e.playing() {
		return false, 0
	}
	e.gravity += dt
	if e.gravity < e.dropInterval {
		return false, 0
	}
	e.gravity = 0
	e.active.Y++
	if !e.board.Collides(e.active) {
		return false, 0
	}
	e.active.Y--
	return true, e.lock()
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() *Board { return e.board.Clone() }

// Active returns a copy of the falling piece.
func (e *Engine) Active() Piece { return e.active.Clone() }

// GhostY is the row a hard drop would land the active piece on.
func (e *Engine) GhostY() int { return LandingRow(e.board, e.active) }

// Next returns up to n upcoming kinds.
func (e *Engine) Next(n int) []Kind { return e.bag.Peek(n) }

// Held returns the hold slot.
func (e *Engine) Held() (Kind, bool) { return e.held, e.hasHeld }

// HoldUsed reports whether hold was used since the last spawn.
func (e *Engine) HoldUsed() bool { return e.holdUsed }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Paused reports whether the session is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// DropInterval returns the current gravity interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Seed returns the seed of the current session.
func (e *Engine) Seed() int64 { return e.seed }

// Spawns counts pieces spawned this session, including the first.
func (e *Engine) Spawns() int { return e.spawns }

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// State returns the current mode.
func (e *Engine) State() State {
	switch {
	case e.gameOver:
		return StateGameOver
	case e.paused:
		return StatePaused
	default:
		return StateFalling
	}
}
