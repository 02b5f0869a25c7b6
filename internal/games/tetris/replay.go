package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Replay restarts g with seed and tickRate and feeds it ticks frames.
// frames is keyed by tick number (1-based); missing ticks are empty frames.
// The screen is sized to the minimum so the simulation never freezes.
func Replay(g *Game, seed int64, tickRate int, ticks uint64, frames map[uint64]core.InputFrame) Snapshot {
	w, h := g.MinSize()
	g.Reset(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: tickRate,
		Seed:     seed,
	})

	for t := uint64(1); t <= ticks; t++ {
		g.Step(frames[t])
	}
	return g.Snapshot()
}
