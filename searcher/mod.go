package searcher

import "morris/game"

// Result is the outcome of a search: the successor chosen at the root, the
// number of leaves evaluated below it and its minimax score.
type Result struct {
	Board  game.Board
	Leaves int
	Score  int
}

type Searcher interface {
	SearchMax(board game.Board, depth int) Result
	SearchMin(board game.Board, depth int) Result
}
