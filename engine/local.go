package engine

import (
	"errors"
	"fmt"
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrIllegalMove = errors.New("agent returned an illegal move")

type Option func(e *Local)

// Local plays a game between two agents. Each side places PiecesPerSide
// pieces under the opening rules, then moves under the game rules.
type Local struct {
	Board         game.Board
	Turn          game.Cell
	PiecesPerSide int
	MaxTurns      int
	agents        map[game.Cell]Agent
	placed        map[game.Cell]int
}

func WithBoard(board game.Board) Option {
	return func(e *Local) {
		e.Board = board
	}
}

func WithTurn(player game.Cell) Option {
	return func(e *Local) {
		if player == game.White || player == game.Black {
			e.Turn = player
		}
	}
}

func WithPiecesPerSide(pieces int) Option {
	return func(e *Local) {
		if pieces >= 0 {
			e.PiecesPerSide = pieces
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.MaxTurns = turns
		}
	}
}

func LocalEngine(white, black Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("both sides need an agent")
	}
	e := &Local{ // Default values
		Board:         game.EmptyBoard(),
		Turn:          game.White,
		PiecesPerSide: meta.PIECES_PER_SIDE,
		MaxTurns:      meta.MAX_TURNS,
		agents:        map[game.Cell]Agent{game.White: white, game.Black: black},
		placed:        map[game.Cell]int{},
	}
	for _, option := range options {
		option(e)
	}
	// Placements of both sides share the empty cells
	if limit := e.Board.Count(game.Empty) / 2; e.PiecesPerSide > limit {
		e.PiecesPerSide = limit
	}
	return e
}

// Run executes the game loop until a winner is found or MaxTurns is reached.
func (e *Local) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Winner: game.Empty, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting from %s", e.Turn, e.Board)

	for step := 1; step <= e.MaxTurns; step++ {
		player := e.Turn
		rules := e.rules(player)

		if len(game.GenerateMoves(e.Board, player, rules)) == 0 {
			if rules.Name() == game.OpeningVariant {
				// Full board, the remaining placements are forfeited
				log.Info().Msgf("%s has no empty cell left to place on", player)
				e.placed[player] = e.PiecesPerSide
				rules = e.rules(player)
			}
			if len(game.GenerateMoves(e.Board, player, rules)) == 0 {
				log.Info().Msgf("%s has no legal moves", player)
				gameMetric.Winner = player.Opponent()
				break
			}
		}

		next, metric, err := e.agents[player].FindMove(e.Board, player, rules.Name())
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if !isLegal(e.Board, next, player, rules) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s played %s from %s: %w", player, next, e.Board, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Board:        next.String(),
			SearchMetric: metric,
		})
		log.Debug().Msgf("turn %d: %s plays %s (%s, score %d, %d leaves)", step, player, next, rules.Name(), metric.Score, metric.Leaves)

		if rules.Name() == game.OpeningVariant {
			e.placed[player]++
		}
		e.Board = next
		e.Turn = player.Opponent()

		if winner := e.winner(); winner != game.Empty {
			gameMetric.Winner = winner
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner != game.Empty {
		log.Info().Msgf("game ended after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner)", gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

// rules picks the variant of the side to move from its remaining placements
func (e *Local) rules(player game.Cell) game.Rules {
	if e.placed[player] < e.PiecesPerSide {
		return game.NewOpeningRules()
	}
	return game.NewGameRules()
}

// winner applies the piece count rule once both sides are done placing
func (e *Local) winner() game.Cell {
	if e.placed[game.White] < e.PiecesPerSide || e.placed[game.Black] < e.PiecesPerSide {
		return game.Empty
	}
	switch {
	case e.Board.Count(game.Black) <= 2:
		return game.White
	case e.Board.Count(game.White) <= 2:
		return game.Black
	default:
		return game.Empty
	}
}

func isLegal(board, next game.Board, player game.Cell, rules game.Rules) bool {
	return slices.Contains(game.GenerateMoves(board, player, rules), next)
}
