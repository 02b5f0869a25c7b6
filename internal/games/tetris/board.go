package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board is the grid of locked cells. core.ColorDefault marks an empty cell.
// Cells fill only through Merge and empty only through ClearFullLines.
type Board struct {
	cols  int
	rows  int
	cells [][]core.Color // cells[y][x], y = 0 is the top visible row
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.cells = make([][]core.Color, rows)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, cols)
	}
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cell returns the color at (x, y) and whether the cell is occupied.
// Out-of-range positions read as empty.
func (b *Board) Cell(x, y int) (core.Color, bool) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return core.ColorDefault, false
	}
	c := b.cells[y][x]
	return c, c != core.ColorDefault
}

// Collides reports whether any solid cell of p is out of bounds horizontally,
// below the floor, or on an occupied cell. Rows above the board are only
// checked against the side walls.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.cols || c.Y >= b.rows {
			return true
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// Merge locks p into the board. Cells above the visible area are dropped.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		if c.Y >= 0 && c.Y < b.rows && c.X >= 0 && c.X < b.cols {
			b.cells[c.Y][c.X] = p.Color
		}
	}
}

// ClearFullLines removes every full row, bottom to top, inserting an empty
// row at the top for each. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	y := b.rows - 1
	for y >= 0 {
		if !b.rowFull(y) {
			y--
			continue
		}
		// Shift everything above down by one; row y is re-checked next.
		copy(b.cells[1:y+1], b.cells[0:y])
		b.cells[0] = make([]core.Color, b.cols)
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// Grid returns a copy of the cell colors, row-major.
func (b *Board) Grid() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for y, row := range b.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{cols: b.cols, rows: b.rows, cells: b.Grid()}
}

// LandingRow returns the lowest Y that p can occupy by falling straight
// down from its current position. p is taken by value and never mutated.
func LandingRow(b *Board, p Piece) int {
	if len(p.Cells()) == 0 {
		return p.Y
	}
	y := p.Y
	for {
		p.Y = y + 1
		if b.Collides(p) {
			return y
		}
		y++
	}
}
