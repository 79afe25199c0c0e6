package game

// Size is the number of positions on the board.
const Size = 21

// Line is a triple of positions forming a mill when held by one color.
type Line [3]int

// adjacency lists the neighbors of every position, in the order the
// sliding generator visits them
var adjacency = [Size][]int{
	0:  {1, 2, 6},
	1:  {0, 3, 11},
	2:  {0, 3, 7, 4},
	3:  {1, 2, 5, 10},
	4:  {2, 5, 8},
	5:  {3, 4, 9},
	6:  {0, 7, 18},
	7:  {2, 6, 8, 15},
	8:  {4, 7, 12},
	9:  {5, 10, 14},
	10: {3, 9, 11, 17},
	11: {1, 10, 20},
	12: {8, 13, 15},
	13: {12, 14, 16},
	14: {9, 13, 17},
	15: {7, 12, 16, 18},
	16: {13, 15, 17, 19},
	17: {10, 14, 16, 20},
	18: {6, 15, 19},
	19: {16, 18, 20},
	20: {11, 17, 19},
}

// MillLines holds every mill on the board. The first scoredLineCount lines
// are the orthogonal ones; the last two are the diagonals.
var MillLines = []Line{
	{0, 2, 4}, {6, 7, 8}, {18, 19, 20},
	{1, 3, 5}, {9, 10, 11},
	{2, 7, 15}, {4, 8, 12},
	{3, 10, 17}, {5, 9, 14},
	{12, 13, 14}, {15, 16, 17},
	{13, 16, 19},
	{0, 6, 18}, {1, 11, 20},
	{12, 15, 18}, {14, 17, 20},
}

// Only the orthogonal lines count toward the mill terms of the evaluators.
const scoredLineCount = 14

var scoredLines = MillLines[:scoredLineCount]

// partners maps a position to the pairs completing a mill through it
var partners [Size][][2]int

func init() {
	for _, line := range MillLines {
		for k, pos := range line {
			var pair [2]int
			n := 0
			for l, other := range line {
				if l != k {
					pair[n] = other
					n++
				}
			}
			partners[pos] = append(partners[pos], pair)
		}
	}
}

// Neighbors returns the positions adjacent to pos. The slice is shared and
// must not be modified.
func Neighbors(pos int) []int {
	return adjacency[pos]
}
