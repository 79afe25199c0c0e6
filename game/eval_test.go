package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterial(t *testing.T) {
	b := MustParseBoard("WWWWBBxxxxxxxxxxxxxxx")
	require.Equal(t, 2, EvaluateMaterial(b))
}

func TestEvaluateTerminal(t *testing.T) {
	evaluators := map[string]Evaluate{
		"opening": EvaluateOpening,
		"game":    EvaluateGame,
	}
	for name, evaluate := range evaluators {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, WinScore, evaluate(MustParseBoard("WWWxxxxxxxxxxxxxxxxxx")), "Black with no pieces has lost")
			require.Equal(t, LossScore, evaluate(MustParseBoard("WWBBBxxxxxxxxxxxxxxxx")), "White with two pieces has lost")
			require.Equal(t, WinScore, evaluate(MustParseBoard("WWBBxxxxxxxxxxxxxxxxx")), "Black's count is checked first")
		})
	}
}

func TestEvaluateWeighted(t *testing.T) {
	// White: one potential mill (0-2-4). Black: one mill (18-19-20).
	b := MustParseBoard("WxWxxxWxxxxxxxxxxxBBB")

	require.Equal(t, 200-100, EvaluateOpening(b))
	require.Equal(t, 200-100, EvaluateGame(b), "Both sides hop with 45 moves each")
}

func TestEvaluateGameTrappedBlack(t *testing.T) {
	b := MustParseBoard("BBBBWWWWxxWWxxxxxxxxx")

	require.Empty(t, GenerateMoves(b, Black, NewGameRules()))
	require.Equal(t, WinScore, EvaluateGame(b))
	require.NotEqual(t, WinScore, EvaluateOpening(b), "Placement positions have no trapped side")
}

func TestEvaluateGameMobility(t *testing.T) {
	// Four pieces each, no mills or potentials, so only material and mobility
	// differ from zero.
	b := MustParseBoard("WxxxxWxxxxxxxWxxWxxBB").Set(9, Black).Set(10, Black)

	white := len(GenerateMoves(b, White, NewGameRules()))
	black := len(GenerateMoves(b, Black, NewGameRules()))
	structure := 200*(CountPotentialMills(b, White)-CountPotentialMills(b, Black)) +
		100*(CountMills(b, White)-CountMills(b, Black))

	require.Equal(t, structure+5*(white-black), EvaluateGame(b))
}

func TestEvaluatorByName(t *testing.T) {
	opening, game := NewOpeningRules(), NewGameRules()
	b := MustParseBoard("BBBBWWWWxxWWxxxxxxxxx")

	t.Run("material ignores the variant", func(t *testing.T) {
		for _, r := range []Rules{opening, game} {
			evaluate, err := EvaluatorByName("material", r)
			require.NoError(t, err)
			require.Equal(t, 2, evaluate(b))
		}
	})

	t.Run("weighted follows the variant", func(t *testing.T) {
		evaluate, err := EvaluatorByName("weighted", opening)
		require.NoError(t, err)
		require.Equal(t, EvaluateOpening(b), evaluate(b))

		evaluate, err = EvaluatorByName("weighted", game)
		require.NoError(t, err)
		require.Equal(t, WinScore, evaluate(b))
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := EvaluatorByName("neural", game)
		require.ErrorIs(t, err, ErrUnknownEvaluator)
	})
}
