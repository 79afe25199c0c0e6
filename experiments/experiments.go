package experiments

import (
	"errors"
	"fmt"
	"morris/engine"
	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"

	"github.com/rs/zerolog/log"
)

// ErrMatchupVariant is returned for a matchup agent pinned to one variant.
// Self-play agents place under the opening rules and move under the game
// rules as the engine decides.
var ErrMatchupVariant = errors.New("matchup agents cannot fix a rules variant")

// DefaultMatchupAgents compares both evaluation policies at the same depth.
var DefaultMatchupAgents = []metrics.AgentConfig{
	{ID: 1, Evaluator: game.MaterialPolicy, Depth: meta.MATCHUP_DEPTH},
	{ID: 2, Evaluator: game.WeightedPolicy, Depth: meta.MATCHUP_DEPTH},
}

// DefaultMatchUps plays every default agent against the other with both colors.
var DefaultMatchUps = [][2]int{{1, 2}, {2, 1}}

type MatchupConfig struct {
	Name          string
	Dir           string
	Games         int // Per match up
	PiecesPerSide int
	MaxTurns      int
	Configs       []metrics.AgentConfig
	MatchUps      [][2]int // White and Black AgentConfig.ID
}

// RunMatchups plays self-play games between agent configs and stores game
// and move records.
func RunMatchups(cfg MatchupConfig) ([]metrics.GameRecord, error) {
	byID := make(map[int]metrics.AgentConfig, len(cfg.Configs))
	for _, config := range cfg.Configs {
		if config.Variant != "" {
			return nil, fmt.Errorf("agent config %d has variant %q: %w", config.ID, config.Variant, ErrMatchupVariant)
		}
		byID[config.ID] = config
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1, ok1 := byID[matchup[0]]
		config2, ok2 := byID[matchup[1]]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("matchup %d refers to an unknown agent config %v", mi+1, matchup)
		}

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			e := engine.LocalEngine(
				engine.LocalAgent{Depth: config1.Depth, Evaluator: config1.Evaluator},
				engine.LocalAgent{Depth: config2.Depth, Evaluator: config2.Evaluator},
				engine.WithPiecesPerSide(cfg.PiecesPerSide),
				engine.WithMaxTurns(cfg.MaxTurns),
			)
			winner, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return gameRecords, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      config1.ID,
				Black:      config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Dir, cfg.Name)
	if err != nil {
		return gameRecords, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Configs); err != nil {
		return gameRecords, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return gameRecords, nil
}
