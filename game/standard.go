package game

const (
	OpeningVariant = "opening"
	GameVariant    = "game"
)

// HoppingPieces is the piece count at which a side may hop.
const HoppingPieces = 3

// OpeningRules keeps both sides in the placement phase.
type OpeningRules struct{}

func NewOpeningRules() *OpeningRules {
	return &OpeningRules{}
}

func (r *OpeningRules) Name() string {
	return OpeningVariant
}

func (r *OpeningRules) Phase(b Board, c Cell) Phase {
	return Placement
}

// GameRules covers the midgame and endgame: a side slides until it is down
// to HoppingPieces pieces, then hops. Sides below that are lost positions
// and left to the evaluator.
type GameRules struct{}

func NewGameRules() *GameRules {
	return &GameRules{}
}

func (r *GameRules) Name() string {
	return GameVariant
}

func (r *GameRules) Phase(b Board, c Cell) Phase {
	if b.Count(c) == HoppingPieces {
		return Hopping
	}
	return Sliding
}
