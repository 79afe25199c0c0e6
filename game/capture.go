package game

// ResolveCapture lists the boards reachable by removing one opponent piece
// after a mill closed on b. Pieces standing in a mill of their own color
// are protected. When every opponent piece is protected the only successor
// is b itself.
func ResolveCapture(b Board, opponent Cell) []Board {
	var captures []Board
	for pos, c := range b {
		if c != opponent || ClosesMill(pos, b) {
			continue
		}
		captures = append(captures, b.Set(pos, Empty))
	}
	if len(captures) == 0 {
		return []Board{b}
	}
	return captures
}
