package experiments

import (
	"morris/game"

	"golang.org/x/exp/rand"
)

// RandomBoard scatters white and black pieces over distinct positions.
// Counts beyond the board size are clipped.
func RandomBoard(rng *rand.Rand, white, black int) game.Board {
	board := game.EmptyBoard()
	positions := rng.Perm(game.Size)
	for i, pos := range positions {
		switch {
		case i < white:
			board[pos] = game.White
		case i < white+black:
			board[pos] = game.Black
		}
	}
	return board
}
