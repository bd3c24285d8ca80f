package engine

// Stats accumulates counters for one search invocation: nodes visited,
// TT exact-hit shortcuts, and alpha-beta cutoffs.
type Stats struct {
	NodesVisited int64
	CacheHits    int64
	Cutoffs      int64
}
