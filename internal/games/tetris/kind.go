// Package tetris implements the falling-block puzzle engine: board, pieces,
// bag randomizer, rotation with wall kicks, gravity locking, line clears,
// scoring and leveling, plus the fixed-tick adapter the TUI platform drives.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every kind in canonical order. A bag is a permutation of it.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

var kindLetters = [...]string{"I", "J", "L", "O", "S", "T", "Z"}

// String returns the kind's letter.
func (k Kind) String() string {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return "?"
}

// ParseKind resolves a single letter to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, l := range kindLetters {
		if l == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// baseShapes are the spawn orientations before trimming.
var baseShapes = [...][][]bool{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
}
