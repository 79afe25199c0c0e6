package game

import "fmt"

const (
	WinScore  = 10000
	LossScore = -WinScore
)

// Weights of the heuristic terms
const (
	pieceWeight     = 1000
	potentialWeight = 200
	millWeight      = 100
	mobilityWeight  = 5
)

const (
	MaterialPolicy = "material"
	WeightedPolicy = "weighted"
)

// EvaluateMaterial simply counts White's pieces against Black's
func EvaluateMaterial(b Board) int {
	return b.Count(White) - b.Count(Black)
}

// EvaluateOpening weighs material, potential mills and complete mills. It is
// meant for placement positions, where mobility is not defined yet.
func EvaluateOpening(b Board) int {
	white, black := b.Count(White), b.Count(Black)
	if score, over := decided(white, black); over {
		return score
	}
	return structureScore(b, white, black)
}

// EvaluateGame adds mobility to EvaluateOpening and scores a trapped Black
// side as a White win.
func EvaluateGame(b Board) int {
	white, black := b.Count(White), b.Count(Black)
	if score, over := decided(white, black); over {
		return score
	}

	rules := NewGameRules()
	blackMoves := len(GenerateMoves(b, Black, rules))
	if blackMoves == 0 {
		return WinScore
	}
	whiteMoves := len(GenerateMoves(b, White, rules))

	return structureScore(b, white, black) + mobilityWeight*(whiteMoves-blackMoves)
}

// EvaluatorByName resolves an evaluation policy. The weighted policy takes
// its mobility terms only outside the placement variant.
func EvaluatorByName(policy string, r Rules) (Evaluate, error) {
	switch policy {
	case MaterialPolicy:
		return EvaluateMaterial, nil
	case WeightedPolicy:
		if r.Name() == OpeningVariant {
			return EvaluateOpening, nil
		}
		return EvaluateGame, nil
	default:
		return nil, fmt.Errorf("%q: %w", policy, ErrUnknownEvaluator)
	}
}

// decided returns the terminal score once a side is down to two pieces
func decided(white, black int) (score int, over bool) {
	switch {
	case black <= 2:
		return WinScore, true
	case white <= 2:
		return LossScore, true
	default:
		return 0, false
	}
}

func structureScore(b Board, white, black int) int {
	potentials := CountPotentialMills(b, White) - CountPotentialMills(b, Black)
	mills := CountMills(b, White) - CountMills(b, Black)
	return pieceWeight*(white-black) + potentialWeight*potentials + millWeight*mills
}
