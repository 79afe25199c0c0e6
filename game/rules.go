package game

import "fmt"

// Phase selects how the side to move introduces or moves pieces.
type Phase int

const (
	Placement Phase = iota // pieces enter on any empty position
	Sliding                // pieces move to an adjacent empty position
	Hopping                // pieces move to any empty position
)

func (p Phase) String() string {
	switch p {
	case Placement:
		return "placement"
	case Sliding:
		return "sliding"
	case Hopping:
		return "hopping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Rules decides which phase applies to a side. Placement is tracked outside
// the board, so a rules variant is picked by whoever drives the search.
type Rules interface {
	Name() string
	Phase(b Board, c Cell) Phase
}

// RulesByName resolves the variant names accepted on the command line.
func RulesByName(name string) (Rules, error) {
	switch name {
	case OpeningVariant:
		return NewOpeningRules(), nil
	case GameVariant:
		return NewGameRules(), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
	}
}
