package game

// ClosesMill reports whether the piece at pos sits in a complete mill.
// An empty position never closes a mill.
func ClosesMill(pos int, b Board) bool {
	c := b[pos]
	if c == Empty {
		return false
	}
	for _, pair := range partners[pos] {
		if b[pair[0]] == c && b[pair[1]] == c {
			return true
		}
	}
	return false
}

// CountMills returns the number of scored lines fully held by c.
func CountMills(b Board, c Cell) int {
	count := 0
	for _, line := range scoredLines {
		if b[line[0]] == c && b[line[1]] == c && b[line[2]] == c {
			count++
		}
	}
	return count
}

// CountPotentialMills returns the number of scored lines holding two pieces
// of c and one empty position.
func CountPotentialMills(b Board, c Cell) int {
	count := 0
	for _, line := range scoredLines {
		own, empty := 0, 0
		for _, pos := range line {
			switch b[pos] {
			case c:
				own++
			case Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			count++
		}
	}
	return count
}
