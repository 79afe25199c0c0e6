package engine

import (
	"fmt"
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"
)

// LocalAgent searches in process.
type LocalAgent struct {
	Depth     int
	Evaluator string
}

func (a LocalAgent) FindMove(board game.Board, player game.Cell, variant string) (game.Board, metrics.SearchMetric, error) {
	m, err := searcher.NewMinimaxByName(variant, a.Evaluator, searcher.WithMetrics(metrics.NewCollector()))
	if err != nil {
		return board, metrics.SearchMetric{}, fmt.Errorf("failed to create search: %w", err)
	}
	result, metric := m.Run(board, a.Depth, player)
	return result.Board, metric, nil
}
