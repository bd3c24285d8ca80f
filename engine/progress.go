package engine

import (
	"windowgrid/board"
	"windowgrid/eval"
)

// ProgressSnapshot is published once per depth by IterateDeepening:
// everything a UI needs to render the current best-known lines without
// touching engine internals.
type ProgressSnapshot struct {
	Depth        int
	MaxDepth     int
	NodesVisited int64
	CacheHits    int64
	Cutoffs      int64
	Evaluations  []Evaluation
	EvalName     string
}

// ProgressSink receives one ProgressSnapshot per completed depth. A
// sink is free to replace its prior snapshot in place or append; the
// driver guarantees snapshots arrive in increasing depth order.
type ProgressSink interface {
	Publish(ProgressSnapshot)
}

// ProgressSinkFunc adapts a plain function to ProgressSink.
type ProgressSinkFunc func(ProgressSnapshot)

// Publish calls f.
func (f ProgressSinkFunc) Publish(s ProgressSnapshot) {
	f(s)
}

// IterateDeepening runs GetEngineEvaluations for depth = 1..maxDepth,
// publishing a ProgressSnapshot to sink after each depth completes.
// Publication for depth d is strictly ordered before depth d+1 starts.
// It returns the final depth's evaluations.
func IterateDeepening(state board.GameState, aiSide board.Cell, history KeySet, maxDepth int, k int, evalName string, evalFn eval.Func, sink ProgressSink) []Evaluation {
	var final []Evaluation
	for depth := 1; depth <= maxDepth; depth++ {
		evaluations, stats := GetEngineEvaluations(state, aiSide, history, depth, k, evalFn)
		final = evaluations
		if sink != nil {
			sink.Publish(ProgressSnapshot{
				Depth:        depth,
				MaxDepth:     maxDepth,
				NodesVisited: stats.NodesVisited,
				CacheHits:    stats.CacheHits,
				Cutoffs:      stats.Cutoffs,
				Evaluations:  evaluations,
				EvalName:     evalName,
			})
		}
		if len(evaluations) == 0 {
			break
		}
	}
	return final
}
