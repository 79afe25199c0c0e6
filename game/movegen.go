package game

// GenerateMoves returns every successor of b for the side c under r.
// Successors come in scan order: ascending source position, then
// destination. A search keeping the first best successor depends on it.
//
// Only White's moves are generated directly. Black's moves are White's
// moves on the inverted board, inverted back, so both sides share one
// implementation of the rules.
func GenerateMoves(b Board, c Cell, r Rules) []Board {
	if c == White {
		return generateWhite(b, r.Phase(b, White))
	}

	inverted := b.Invert()
	moves := generateWhite(inverted, r.Phase(inverted, White))
	for i, move := range moves {
		moves[i] = move.Invert()
	}
	return moves
}

func generateWhite(b Board, phase Phase) []Board {
	switch phase {
	case Placement:
		return generatePlacements(b)
	case Hopping:
		return generateHops(b)
	default:
		return generateSlides(b)
	}
}

func generatePlacements(b Board) []Board {
	var moves []Board
	for pos, c := range b {
		if c == Empty {
			moves = appendMove(moves, b.Set(pos, White), pos)
		}
	}
	return moves
}

func generateSlides(b Board) []Board {
	var moves []Board
	for from, c := range b {
		if c != White {
			continue
		}
		for _, to := range adjacency[from] {
			if b[to] == Empty {
				moves = appendMove(moves, b.Move(from, to), to)
			}
		}
	}
	return moves
}

func generateHops(b Board) []Board {
	var moves []Board
	for from, c := range b {
		if c != White {
			continue
		}
		for to, dst := range b {
			if dst == Empty {
				moves = appendMove(moves, b.Move(from, to), to)
			}
		}
	}
	return moves
}

// appendMove adds a White move landing on to, expanded into its captures
// when it closes a mill.
func appendMove(moves []Board, candidate Board, to int) []Board {
	if ClosesMill(to, candidate) {
		return append(moves, ResolveCapture(candidate, Black)...)
	}
	return append(moves, candidate)
}
