package experiments

import (
	"fmt"
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type SweepConfig struct {
	Name     string
	Dir      string // Root directory of the records
	Boards   int
	MaxDepth int
	Seed     uint64
	Agents   []metrics.AgentConfig // Depth is ignored, every depth up to MaxDepth is searched
}

// DefaultSweepAgents covers every variant and evaluation policy.
var DefaultSweepAgents = []metrics.AgentConfig{
	{ID: 1, Variant: game.OpeningVariant, Evaluator: game.MaterialPolicy},
	{ID: 2, Variant: game.OpeningVariant, Evaluator: game.WeightedPolicy},
	{ID: 3, Variant: game.GameVariant, Evaluator: game.MaterialPolicy},
	{ID: 4, Variant: game.GameVariant, Evaluator: game.WeightedPolicy},
}

// RunDepthSweep measures how leaf counts and search time grow with depth on
// random boards, and stores one record per search.
func RunDepthSweep(cfg SweepConfig) ([]metrics.SearchRecord, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	boards := make([]game.Board, cfg.Boards)
	for i := range boards {
		// Opening boards are sparse, midgame boards hold enough pieces to slide
		boards[i] = RandomBoard(rng, 4+rng.Intn(4), 4+rng.Intn(4))
	}

	log.Info().Msgf("starting %s sweep over %d boards up to depth %d...", cfg.Name, len(boards), cfg.MaxDepth)

	count := 0
	records := []metrics.SearchRecord{}
	for _, agent := range cfg.Agents {
		m, err := searcher.NewMinimaxByName(agent.Variant, agent.Evaluator, searcher.WithMetrics(metrics.NewCollector()))
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		for depth := 1; depth <= cfg.MaxDepth; depth++ {
			leaves := 0
			for _, board := range boards {
				result, metric := m.Run(board, depth, game.White)
				count++
				leaves += result.Leaves
				records = append(records, metrics.SearchRecord{
					ID:           count,
					Agent:        agent.ID,
					Board:        board.String(),
					Chosen:       result.Board.String(),
					SearchMetric: metric,
				})
			}
			log.Info().Msgf("agent %d (%s/%s) depth %d: %d leaves", agent.ID, agent.Variant, agent.Evaluator, depth, leaves)
		}
	}

	log.Info().Msgf("completed %s sweep", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Dir, cfg.Name)
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return records, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteSearchRecords(records); err != nil {
		return records, fmt.Errorf("failed to store search records: %w", err)
	}
	log.Info().Msgf("stored search records in %s", writer.Dir())
	return records, nil
}
