package engine

import (
	"math"
	"sort"

	"windowgrid/board"
	"windowgrid/eval"
	"windowgrid/generator"
)

// Evaluation is one ranked root action: its score in the AI's frame and
// the principal variation starting with it.
type Evaluation struct {
	Action board.Action
	Score  int
	PV     []board.Action
}

// GetEngineEvaluations ranks every legal root action for aiSide and
// returns the top-K principal variations by score, plus the stats
// accumulated across all of them. K <= 0 returns every evaluation.
func GetEngineEvaluations(state board.GameState, aiSide board.Cell, history KeySet, maxDepth int, k int, evalFn eval.Func) ([]Evaluation, Stats) {
	stats := Stats{}

	candidates := generator.Generate(state, aiSide)
	rootActions := make([]board.Action, 0, len(candidates))
	for _, a := range candidates {
		undo := state.Do(a, aiSide)
		succKey := state.Key()
		state.Undo(undo)
		if !history.Has(succKey) {
			rootActions = append(rootActions, a)
		}
	}
	if len(rootActions) == 0 {
		return nil, stats
	}

	rootKey := state.Key()
	tt := NewTranspositionTable()

	evaluations := make([]Evaluation, 0, len(rootActions))
	for _, a := range rootActions {
		pathSet := NewKeySet()
		pathSet.Add(rootKey)

		undo := state.Do(a, aiSide)
		child := Search(state, aiSide.Opponent(), 1, math.MinInt32, math.MaxInt32, &Params{
			AISide:   aiSide,
			MaxDepth: maxDepth,
			Eval:     evalFn,
			TT:       tt,
			History:  history,
			PathSet:  pathSet,
			Stats:    &stats,
		})
		state.Undo(undo)

		evaluations = append(evaluations, Evaluation{
			Action: a,
			Score:  child.Score,
			PV:     append([]board.Action{a}, child.PV...),
		})
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].Score > evaluations[j].Score
	})

	if k > 0 && k < len(evaluations) {
		evaluations = evaluations[:k]
	}
	return evaluations, stats
}

// ChooseBestAction returns the single best root action, or
// ErrNoLegalMoves if every legal action would repeat a recorded history
// position.
func ChooseBestAction(state board.GameState, aiSide board.Cell, history KeySet, maxDepth int, evalFn eval.Func) (board.Action, error) {
	evaluations, _ := GetEngineEvaluations(state, aiSide, history, maxDepth, 1, evalFn)
	if len(evaluations) == 0 {
		return board.Action{}, ErrNoLegalMoves
	}
	return evaluations[0].Action, nil
}
