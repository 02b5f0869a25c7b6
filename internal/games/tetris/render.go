package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants. Every board cell is two characters wide.
const (
	cellW        = 2
	sidebarGap   = 2
	sidebarWidth = 18
	previewSlots = 5

	// NEXT previews start 11 rows below the sidebar top, three rows apart,
	// and each piece is up to two rows tall.
	sidebarHeight = 11 + (previewSlots-1)/2*3 + 2
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// MinSize returns the smallest screen that fits the well and the sidebar.
func (g *Game) MinSize() (int, int) {
	r := g.engine.rules
	return r.Cols*cellW + 2 + sidebarGap + sidebarWidth, max(r.Rows+2, sidebarHeight)
}

// Render draws the current game state into the provided screen buffer.
// It only reads engine state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	e := g.engine
	w, h := g.MinSize()
	ox := core.Clamp((dst.Width()-w)/2, 0, dst.Width())
	oy := core.Clamp((dst.Height()-h)/2, 0, dst.Height())

	well := core.NewRect(ox, oy, e.rules.Cols*cellW+2, e.rules.Rows+2)
	dst.DrawBox(well, core.ColorGray)

	// Locked cells
	for y := 0; y < e.board.Rows(); y++ {
		for x := 0; x < e.board.Cols(); x++ {
			if c, ok := e.board.Cell(x, y); ok {
				g.drawCell(dst, well, x, y, BlockChar, c)
			} else {
				g.drawCell(dst, well, x, y, EmptyChar, core.ColorGray)
			}
		}
	}

	// Ghost, then the active piece on top of it
	if !e.gameOver {
		ghost := e.active
		ghost.Y = e.GhostY()
		for _, c := range ghost.Cells() {
			g.drawCell(dst, well, c.X, c.Y, GhostChar, ghost.Color)
		}
	}
	for _, c := range e.active.Cells() {
		g.drawCell(dst, well, c.X, c.Y, BlockChar, e.active.Color)
	}

	g.renderSidebar(dst, well.Right()+sidebarGap, oy)

	switch {
	case e.gameOver:
		g.drawBanner(dst, well, 0, " GAME OVER ", core.ColorBrightRed)
		g.drawBanner(dst, well, 1, " R: restart ", core.ColorWhite)
	case e.paused:
		g.drawBanner(dst, well, 0, " PAUSED ", core.ColorBrightYellow)
	}
}

// drawCell paints one board cell. Rows above the well are skipped.
func (g *Game) drawCell(dst *core.Screen, well core.Rect, x, y int, r rune, c core.Color) {
	sx := well.X + 1 + x*cellW
	sy := well.Y + 1 + y
	if y < 0 || !well.Contains(sx, sy) {
		return
	}
	if r == EmptyChar {
		dst.SetCell(sx, sy, r, c)
		dst.SetCell(sx+1, sy, ' ', c)
		return
	}
	dst.SetCell(sx, sy, r, c)
	dst.SetCell(sx+1, sy, r, c)
}

func (g *Game) drawBanner(dst *core.Screen, well core.Rect, line int, text string, c core.Color) {
	cx, cy := well.Center()
	dst.DrawTextColor(cx-len(text)/2, cy+line, text, c)
}

func (g *Game) renderSidebar(dst *core.Screen, sx, sy int) {
	e := g.engine

	dst.DrawTextColor(sx, sy, "SCORE", core.ColorGray)
	dst.DrawTextColor(sx, sy+1, fmt.Sprintf("%d", e.Score()), core.ColorBrightWhite)
	dst.DrawTextColor(sx, sy+3, fmt.Sprintf("LEVEL %d", e.Level()), core.ColorWhite)
	dst.DrawTextColor(sx, sy+4, fmt.Sprintf("LINES %d", e.Lines()), core.ColorWhite)

	dst.DrawTextColor(sx, sy+6, "HOLD", core.ColorGray)
	if k, ok := e.Held(); ok {
		color := e.rules.Colors[k]
		if e.holdUsed {
			color = core.ColorGray
		}
		drawPreview(dst, sx, sy+7, NewPiece(k, color))
	}

	dst.DrawTextColor(sx, sy+10, "NEXT", core.ColorGray)
	for i, k := range e.Next(previewSlots) {
		px := sx + (i%2)*(4*cellW+1)
		py := sy + 11 + (i/2)*3
		drawPreview(dst, px, py, NewPiece(k, e.rules.Colors[k]))
	}
}

// drawPreview draws a spawn-orientation piece with its top-left at (x, y).
func drawPreview(dst *core.Screen, x, y int, p Piece) {
	for _, c := range p.Cells() {
		dst.SetCell(x+c.X*cellW, y+c.Y, BlockChar, p.Color)
		dst.SetCell(x+c.X*cellW+1, y+c.Y, BlockChar, p.Color)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.MinSize()
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}
