package experiments

import (
	"morris/experiments/metrics"
	"morris/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("places the requested pieces", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			b := RandomBoard(rng, 5, 6)
			require.Equal(t, 5, b.Count(game.White))
			require.Equal(t, 6, b.Count(game.Black))
			require.Equal(t, game.Size-11, b.Count(game.Empty))
		}
	})

	t.Run("clips to the board size", func(t *testing.T) {
		b := RandomBoard(rng, 15, 15)
		require.Equal(t, 15, b.Count(game.White))
		require.Equal(t, 6, b.Count(game.Black))
	})

	t.Run("same seed gives the same boards", func(t *testing.T) {
		a := RandomBoard(rand.New(rand.NewSource(9)), 4, 4)
		b := RandomBoard(rand.New(rand.NewSource(9)), 4, 4)
		require.Equal(t, a, b)
	})
}

func TestRunDepthSweep(t *testing.T) {
	dir := t.TempDir()
	cfg := SweepConfig{
		Name:     "sweep",
		Dir:      dir,
		Boards:   2,
		MaxDepth: 2,
		Seed:     3,
		Agents:   DefaultSweepAgents,
	}

	records, err := RunDepthSweep(cfg)

	require.NoError(t, err)
	require.Len(t, records, len(DefaultSweepAgents)*2*2)
	for _, record := range records {
		require.Positive(t, record.Leaves)
		require.Len(t, record.Chosen, game.Size)
	}

	runs, err := os.ReadDir(filepath.Join(dir, "sweep"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(dir, "sweep", runs[0].Name(), "search_records.csv"))
}

func TestRunDepthSweepUnknownAgent(t *testing.T) {
	_, err := RunDepthSweep(SweepConfig{
		Name:     "sweep",
		Dir:      t.TempDir(),
		Boards:   1,
		MaxDepth: 1,
		Agents:   []metrics.AgentConfig{{ID: 1, Variant: "blitz", Evaluator: "material"}},
	})
	require.ErrorIs(t, err, game.ErrUnknownVariant)
}

func TestRunMatchups(t *testing.T) {
	dir := t.TempDir()
	configs := []metrics.AgentConfig{
		{ID: 1, Evaluator: game.MaterialPolicy, Depth: 1},
		{ID: 2, Evaluator: game.WeightedPolicy, Depth: 1},
	}

	records, err := RunMatchups(MatchupConfig{
		Name:          "matchups",
		Dir:           dir,
		Games:         1,
		PiecesPerSide: 3,
		MaxTurns:      10,
		Configs:       configs,
		MatchUps:      [][2]int{{1, 2}, {2, 1}},
	})

	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].White)
	require.Equal(t, 2, records[0].Black)
	for _, record := range records {
		require.LessOrEqual(t, record.TotalMoves, 10)
	}

	_, err = RunMatchups(MatchupConfig{Name: "bad", Dir: dir, Games: 1, Configs: configs, MatchUps: [][2]int{{1, 3}}})
	require.Error(t, err)

	pinned := []metrics.AgentConfig{{ID: 1, Variant: game.OpeningVariant, Evaluator: game.MaterialPolicy, Depth: 1}}
	_, err = RunMatchups(MatchupConfig{Name: "pinned", Dir: dir, Games: 1, Configs: pinned, MatchUps: [][2]int{{1, 1}}})
	require.ErrorIs(t, err, ErrMatchupVariant)
}

func TestDefaultMatchups(t *testing.T) {
	ids := map[int]bool{}
	for _, config := range DefaultMatchupAgents {
		require.Empty(t, config.Variant)
		require.Positive(t, config.Depth)
		ids[config.ID] = true
	}
	for _, matchup := range DefaultMatchUps {
		require.True(t, ids[matchup[0]])
		require.True(t, ids[matchup[1]])
	}
}
