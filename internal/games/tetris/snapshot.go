package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Seed        int64
	State       string // "falling", "paused" or "game_over"
	Score       int
	Level       int
	Lines       int
	Active      string // kind letter
	ActiveX     int
	ActiveY     int
	ActiveCells []core.Point
	GhostY      int
	Held        string // kind letter, empty when the slot is empty
	HoldUsed    bool
	Next        []string
	Spawns      int
	Board       [][]core.Color
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine

	held := ""
	if k, ok := e.Held(); ok {
		held = k.String()
	}

	next := make([]string, 0, e.rules.QueueDepth)
	for _, k := range e.Next(e.rules.QueueDepth) {
		next = append(next, k.String())
	}

	return Snapshot{
		Tick:        g.tick,
		Seed:        e.Seed(),
		State:       e.State().String(),
		Score:       e.Score(),
		Level:       e.Level(),
		Lines:       e.Lines(),
		Active:      e.active.Kind.String(),
		ActiveX:     e.active.X,
		ActiveY:     e.active.Y,
		ActiveCells: e.active.Cells(),
		GhostY:      e.GhostY(),
		Held:        held,
		HoldUsed:    e.HoldUsed(),
		Next:        next,
		Spawns:      e.Spawns(),
		Board:       e.board.Grid(),
	}
}
