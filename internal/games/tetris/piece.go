package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino: a trimmed 0/1 matrix at a board-relative origin.
// Y may be negative while the piece scrolls in above the visible rows.
type Piece struct {
	Kind   Kind
	Matrix [][]bool // Matrix[row][col], always trimmed to its bounding box
	X, Y   int
	Color  core.Color
}

// NewPiece creates a piece of the given kind at the origin.
func NewPiece(kind Kind, color core.Color) Piece {
	return Piece{
		Kind:   kind,
		Matrix: trim(copyMatrix(baseShapes[kind])),
		Color:  color,
	}
}

// Width returns the matrix width in cells.
func (p Piece) Width() int {
	if len(p.Matrix) == 0 {
		return 0
	}
	return len(p.Matrix[0])
}

// Height returns the matrix height in cells.
func (p Piece) Height() int {
	return len(p.Matrix)
}

// MoveToSpawn centers the piece horizontally on a board of cols columns
// and places it one row above the visible area.
func (p *Piece) MoveToSpawn(cols int) {
	p.X = cols/2 - p.Width()/2
	p.Y = -1
}

// RotateClockwise rotates the matrix a quarter turn clockwise in place.
// The origin does not move.
func (p *Piece) RotateClockwise() {
	p.Matrix = rotateCW(p.Matrix)
}

// RotateCounterclockwise is three clockwise turns.
func (p *Piece) RotateCounterclockwise() {
	for range 3 {
		p.Matrix = rotateCW(p.Matrix)
	}
}

// Clone returns a piece that shares no memory with p.
func (p Piece) Clone() Piece {
	c := p
	c.Matrix = copyMatrix(p.Matrix)
	return c
}

// Cells returns the board positions of the solid sub-cells, row-major.
func (p Piece) Cells() []core.Point {
	origin := core.Point{X: p.X, Y: p.Y}
	cells := make([]core.Point, 0, 4)
	for y, row := range p.Matrix {
		for x, solid := range row {
			if solid {
				cells = append(cells, origin.Add(x, y))
			}
		}
	}
	return cells
}

// Equal reports whether two pieces have the same kind, shape, position and color.
func (p Piece) Equal(o Piece) bool {
	if p.Kind != o.Kind || p.X != o.X || p.Y != o.Y || p.Color != o.Color {
		return false
	}
	if len(p.Matrix) != len(o.Matrix) {
		return false
	}
	for y := range p.Matrix {
		if len(p.Matrix[y]) != len(o.Matrix[y]) {
			return false
		}
		for x := range p.Matrix[y] {
			if p.Matrix[y][x] != o.Matrix[y][x] {
				return false
			}
		}
	}
	return true
}

// rotateCW pads m to a square n×n, maps (x, y) to (n-1-y, x) and trims.
func rotateCW(m [][]bool) [][]bool {
	h := len(m)
	if h == 0 {
		return m
	}
	n := max(h, len(m[0]))

	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for y := range h {
		for x, solid := range m[y] {
			out[x][n-1-y] = solid
		}
	}
	return trim(out)
}

// trim drops fully empty border rows and columns.
// An all-empty matrix trims to nothing.
func trim(m [][]bool) [][]bool {
	top, bottom := 0, len(m)-1
	for top <= bottom && rowEmpty(m[top]) {
		top++
	}
	for bottom >= top && rowEmpty(m[bottom]) {
		bottom--
	}
	if top > bottom {
		return [][]bool{}
	}

	left, right := 0, len(m[0])-1
	for left <= right && colEmpty(m[top:bottom+1], left) {
		left++
	}
	for right >= left && colEmpty(m[top:bottom+1], right) {
		right--
	}

	out := make([][]bool, 0, bottom-top+1)
	for _, row := range m[top : bottom+1] {
		out = append(out, append([]bool(nil), row[left:right+1]...))
	}
	return out
}

func rowEmpty(row []bool) bool {
	for _, v := range row {
		if v {
			return false
		}
	}
	return true
}

func colEmpty(rows [][]bool, col int) bool {
	for _, row := range rows {
		if row[col] {
			return false
		}
	}
	return true
}

func copyMatrix(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
