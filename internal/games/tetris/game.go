package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts the Engine to the platform's fixed-tick loop: each Step
// applies the frame's actions, then feeds one tick of time to gravity.
type Game struct {
	engine *Engine
	tick   uint64
	tickDt time.Duration

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given rules. The session starts on Reset.
func New(rules Rules) (*Game, error) {
	e, err := NewEngine(rules, 0)
	if err != nil {
		return nil, err
	}
	return &Game{
		engine: e,
		tickDt: time.Second / 60,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Engine exposes the underlying engine for read-only queries.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine.Reset(cfg.Seed)
	g.tick = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDt = time.Second / time.Duration(tickRate)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. While the window is too small the
// simulation is frozen and the tick counter does not advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var res core.StepResult
	e := g.engine

	if in.Has(core.ActionPause) {
		e.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		e.Restart()
	}

	if in.Has(core.ActionHold) {
		e.HoldSwap()
	}
	if in.Has(core.ActionRotateCCW) {
		e.Rotate(Counterclockwise)
	}
	if in.Has(core.ActionRotateCW) {
		e.Rotate(Clockwise)
	}
	if in.Has(core.ActionLeft) {
		e.Move(-1)
	}
	if in.Has(core.ActionRight) {
		e.Move(1)
	}
	if in.Has(core.ActionSoftDrop) {
		e.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		if n, ok := e.HardDrop(); ok {
			res.Locked = true
			res.Cleared += n
		}
	}

	if locked, n := e.StepGravity(g.tickDt); locked {
		res.Locked = true
		res.Cleared += n
	}

	res.State = g.State()
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	e := g.engine
	return core.GameState{
		Score:    e.Score(),
		Level:    e.Level(),
		Lines:    e.Lines(),
		GameOver: e.GameOver(),
		Paused:   e.Paused() || g.tooSmall,
	}
}
