package engine

import (
	"morris/experiments/metrics"
	"morris/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner game.Cell, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Agent picks the next board for the side to move under a rules variant.
type Agent interface {
	FindMove(board game.Board, player game.Cell, variant string) (game.Board, metrics.SearchMetric, error)
}
