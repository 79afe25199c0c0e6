package game

import "errors"

// Cell is the occupant of a board position. White and Black double as the
// colors passed to the move generator and the mill counters.
type Cell byte

const (
	White Cell = 'W'
	Black Cell = 'B'
	Empty Cell = 'x'
)

// Opponent returns the other color. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return c
	}
}

// Symbol returns the single character encoding of c.
func (c Cell) Symbol() string {
	return string(rune(c))
}

func (c Cell) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

var (
	ErrBoardLength      = errors.New("board must be exactly 21 positions")
	ErrInvalidCell      = errors.New("board position must be one of W, B or x")
	ErrUnknownVariant   = errors.New("unknown rules variant")
	ErrUnknownEvaluator = errors.New("unknown evaluation policy")
)

// Evaluates a board to a score where positive values favor White.
// Evaluations are only taken at search leaves.
type Evaluate func(Board) int
