package searcher

import (
	"morris/experiments/metrics"
	"morris/game"
)

type Option func(m *Minimax)

var _ Searcher = (*Minimax)(nil)

// Minimax enumerates every line of play to a fixed depth without pruning.
// White maximizes and Black minimizes the evaluation.
type Minimax struct {
	rules    game.Rules
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithRules(rules game.Rules) Option {
	return func(m *Minimax) {
		if rules != nil {
			m.rules = rules
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		rules:    game.NewGameRules(),
		evaluate: game.EvaluateGame,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Rules() game.Rules {
	return m.rules
}

// Search finds White's best successor of board.
func (m *Minimax) Search(board game.Board, depth int) Result {
	return m.SearchMax(board, depth)
}

// Run searches for the side to move and reports metrics of the search.
func (m *Minimax) Run(board game.Board, depth int, player game.Cell) (Result, metrics.SearchMetric) {
	m.metrics.Start(depth, m.rules.Name())
	var result Result
	if player == game.Black {
		result = m.SearchMin(board, depth)
	} else {
		result = m.SearchMax(board, depth)
	}
	return result, m.metrics.Complete(result.Score)
}

// SearchMax searches with White to move. Ties keep the earliest generated
// successor.
func (m *Minimax) SearchMax(board game.Board, depth int) Result {
	if depth <= 0 {
		return m.leaf(board)
	}

	moves := game.GenerateMoves(board, game.White, m.rules)
	if len(moves) == 0 {
		return m.leaf(board)
	}
	m.metrics.AddNode()

	best := Result{Score: worstForMax}
	for _, move := range moves {
		child := m.SearchMin(move, depth-1)
		best.Leaves += child.Leaves
		if child.Score > best.Score {
			best.Score = child.Score
			best.Board = move
		}
	}
	return best
}

// SearchMin searches with Black to move. Ties keep the earliest generated
// successor.
func (m *Minimax) SearchMin(board game.Board, depth int) Result {
	if depth <= 0 {
		return m.leaf(board)
	}

	moves := game.GenerateMoves(board, game.Black, m.rules)
	if len(moves) == 0 {
		return m.leaf(board)
	}
	m.metrics.AddNode()

	best := Result{Score: worstForMin}
	for _, move := range moves {
		child := m.SearchMax(move, depth-1)
		best.Leaves += child.Leaves
		if child.Score < best.Score {
			best.Score = child.Score
			best.Board = move
		}
	}
	return best
}

// leaf scores a position reached at depth zero, or one where the side to
// move is stuck and the board stays as it is
func (m *Minimax) leaf(board game.Board) Result {
	m.metrics.AddLeaf()
	return Result{Board: board, Leaves: 1, Score: m.evaluate(board)}
}

// NewMinimaxByName builds a search for a named rules variant and evaluation
// policy, as accepted on the command line and by the agent server.
func NewMinimaxByName(variant, policy string, options ...Option) (*Minimax, error) {
	rules, err := game.RulesByName(variant)
	if err != nil {
		return nil, err
	}
	evaluate, err := game.EvaluatorByName(policy, rules)
	if err != nil {
		return nil, err
	}
	options = append([]Option{WithRules(rules), WithEvaluationFn(evaluate)}, options...)
	return NewMinimax(options...), nil
}
