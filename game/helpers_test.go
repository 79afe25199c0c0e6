package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

var cells = []Cell{White, Black, Empty}

// randomBoards returns n boards with every position drawn uniformly
func randomBoards(t *testing.T, n int) []Board {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	boards := make([]Board, n)
	for i := range boards {
		for pos := range boards[i] {
			boards[i][pos] = cells[rng.Intn(len(cells))]
		}
	}
	return boards
}
