package game

import (
	"fmt"
	"strings"
)

// Board is a position of the game. Boards are values: every operation
// returns a new board and leaves the receiver untouched.
type Board [Size]Cell

// EmptyBoard returns a board with no pieces.
func EmptyBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	return b
}

// ParseBoard decodes the 21-character W/B/x encoding of a board.
func ParseBoard(s string) (Board, error) {
	var b Board
	if len(s) != Size {
		return b, fmt.Errorf("got %d positions in %q: %w", len(s), s, ErrBoardLength)
	}
	for i := 0; i < Size; i++ {
		c := Cell(s[i])
		if c != White && c != Black && c != Empty {
			return b, fmt.Errorf("position %d is %q: %w", i, s[i], ErrInvalidCell)
		}
		b[i] = c
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on malformed input.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) At(pos int) Cell {
	return b[pos]
}

// Set returns a copy of the board with pos holding c.
func (b Board) Set(pos int, c Cell) Board {
	b[pos] = c
	return b
}

// Move returns a copy of the board with the piece at from moved to to.
func (b Board) Move(from, to int) Board {
	b[to] = b[from]
	b[from] = Empty
	return b
}

// Invert swaps White and Black pieces. Applying it twice gives back the
// original board.
func (b Board) Invert() Board {
	for i, c := range b {
		b[i] = c.Opponent()
	}
	return b
}

// Count returns the number of positions holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size)
	for _, c := range b {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}
