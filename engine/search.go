package engine

import (
	"windowgrid/board"
	"windowgrid/eval"
	"windowgrid/generator"
)

// Params bundles everything one search invocation shares across its
// whole recursion: the AI's side, the depth ceiling, the evaluation
// plugin, the transposition table, and the two distinct key sets.
// History never shrinks within a search; pathSet is balanced add/remove
// on every node's entry and exit.
type Params struct {
	AISide   board.Cell
	MaxDepth int
	Eval     eval.Func
	TT       *TranspositionTable
	History  KeySet
	PathSet  KeySet
	Stats    *Stats
}

// Result is one node's search outcome: its score (in the AI's frame),
// the action chosen at that node (if any), and the principal variation
// from that node down to the evaluated leaf.
type Result struct {
	Score      int
	BestAction board.Action
	HasAction  bool
	PV         []board.Action
}

// leaf builds a Result for a node with no action of its own: terminal
// positions, depth-limit cutoffs, in-search cycles, and exhausted
// filtered-action lists all return one of these.
func leaf(state board.GameState, winner board.Cell, p *Params, depth int) Result {
	return Result{Score: p.Eval(state, winner, p.AISide, depth)}
}

// Search runs depth-limited negamax-style alpha-beta with a
// transposition table, in-search cycle detection, history repetition
// filtering, and move ordering. Scores are always expressed in
// p.AISide's frame regardless of which side is actually to move.
func Search(state board.GameState, sideToMove board.Cell, depth int, alpha, beta int, p *Params) Result {
	// 1. Stats.
	p.Stats.NodesVisited++

	// 2. Terminal / cutoff returns.
	if winner, isTerminal := state.Terminal(); isTerminal {
		return leaf(state, winner, p, depth)
	}
	if depth >= p.MaxDepth {
		return leaf(state, board.Empty, p, depth)
	}

	// 3. In-search cycle guard.
	key := state.Key()
	if p.PathSet.Has(key) {
		return leaf(state, board.Empty, p, depth)
	}

	// 4. TT probe.
	remainingDepth := p.MaxDepth - depth
	alpha0, beta0 := alpha, beta
	entry, found := p.TT.Probe(key)
	if found && entry.Depth >= remainingDepth {
		switch entry.Flag {
		case TTFlagExact:
			p.Stats.CacheHits++
			pv := []board.Action(nil)
			if entry.HasAction {
				pv = []board.Action{entry.BestAction}
			}
			return Result{Score: entry.Score, BestAction: entry.BestAction, HasAction: entry.HasAction, PV: pv}
		case TTFlagLower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case TTFlagUpper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			p.Stats.Cutoffs++
			return Result{Score: entry.Score, BestAction: entry.BestAction, HasAction: entry.HasAction}
		}
	}

	// 5. Path insertion.
	p.PathSet.Add(key)

	// 6. Move generation, filtered against real-game history.
	candidates := generator.Generate(state, sideToMove)
	actions := make([]board.Action, 0, len(candidates))
	for _, a := range candidates {
		undo := state.Do(a, sideToMove)
		succKey := state.Key()
		state.Undo(undo)
		if !p.History.Has(succKey) {
			actions = append(actions, a)
		}
	}
	if len(actions) == 0 {
		p.PathSet.Remove(key)
		return leaf(state, board.Empty, p, depth)
	}

	// 7. Move ordering.
	orderActions(actions, state.Window, entry.BestAction, found && entry.HasAction)

	// 8. Recurse, maximizing or minimizing depending on whose turn it is.
	maximizing := sideToMove == p.AISide
	var bestScore int
	var bestAction board.Action
	var bestPV []board.Action
	hasBest := false

	for _, a := range actions {
		undo := state.Do(a, sideToMove)
		child := Search(state, sideToMove.Opponent(), depth+1, alpha, beta, p)
		state.Undo(undo)

		improved := !hasBest
		if maximizing && hasBest && child.Score > bestScore {
			improved = true
		}
		if !maximizing && hasBest && child.Score < bestScore {
			improved = true
		}
		if improved {
			bestScore = child.Score
			bestAction = a
			hasBest = true
			bestPV = append([]board.Action{a}, child.PV...)
		}

		if maximizing {
			if child.Score > alpha {
				alpha = child.Score
			}
		} else {
			if child.Score < beta {
				beta = child.Score
			}
		}
		if alpha >= beta {
			p.Stats.Cutoffs++
			break
		}
	}

	// 9. TT store, classified against the bounds this node was entered with.
	var flag TTFlag
	switch {
	case bestScore <= alpha0:
		flag = TTFlagUpper
	case bestScore >= beta0:
		flag = TTFlagLower
	default:
		flag = TTFlagExact
	}
	p.TT.Store(key, TTEntry{Score: bestScore, Depth: remainingDepth, Flag: flag, BestAction: bestAction, HasAction: hasBest})

	// 10. Path removal.
	p.PathSet.Remove(key)

	return Result{Score: bestScore, BestAction: bestAction, HasAction: hasBest, PV: bestPV}
}
