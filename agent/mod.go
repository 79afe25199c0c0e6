package agent

import (
	"errors"
	"fmt"
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/searcher"
)

var (
	ErrInvalidDepth  = errors.New("invalid search depth")
	ErrInvalidPlayer = errors.New("player must be W or B")
)

// SearchRequest asks for the best successor of Board for Player.
type SearchRequest struct {
	Board   string `json:"board"`
	Depth   int    `json:"depth"`
	Variant string `json:"variant,omitempty"`
	Eval    string `json:"eval,omitempty"`
	Player  string `json:"player,omitempty"` // "W" (default) or "B"
}

type SearchResponse struct {
	Board  string `json:"board"`
	Leaves int    `json:"leaves"`
	Score  int    `json:"score"`
}

// resolve validates a request and fills in defaults
func (req SearchRequest) resolve() (*searcher.Minimax, game.Board, game.Cell, error) {
	board, err := game.ParseBoard(req.Board)
	if err != nil {
		return nil, board, game.Empty, err
	}
	if req.Depth < 0 || req.Depth > meta.MAX_SERVE_DEPTH {
		return nil, board, game.Empty, fmt.Errorf("depth %d outside 0..%d: %w", req.Depth, meta.MAX_SERVE_DEPTH, ErrInvalidDepth)
	}

	variant, policy := req.Variant, req.Eval
	if variant == "" {
		variant = meta.DEFAULT_VARIANT
	}
	if policy == "" {
		policy = meta.DEFAULT_EVAL
	}
	m, err := searcher.NewMinimaxByName(variant, policy, searcher.WithMetrics(metrics.NewCollector()))
	if err != nil {
		return nil, board, game.Empty, err
	}

	player := game.White
	switch req.Player {
	case "", game.White.Symbol():
	case game.Black.Symbol():
		player = game.Black
	default:
		return nil, board, game.Empty, fmt.Errorf("player %q: %w", req.Player, ErrInvalidPlayer)
	}
	return m, board, player, nil
}
