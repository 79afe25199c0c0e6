package searcher

import "math"

// Sentinels the first successor of a node always improves on
const (
	worstForMax = math.MinInt
	worstForMin = math.MaxInt
)
