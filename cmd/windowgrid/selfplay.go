package main

import (
	"fmt"
	"time"

	"windowgrid/board"
	"windowgrid/engine"
	"windowgrid/eval"
)

// SelfPlayResult summarizes a finished computer-vs-computer game.
type SelfPlayResult struct {
	Turns      int
	Winner     board.Cell // board.Empty for a draw or a max-turns cutoff
	Terminated string     // e.g. "terminatedByMaxTurns", "terminatedByOutcome"
}

// sideEval resolves which evaluation plugin and name apply to side.
type sideEval struct {
	fn   eval.Func
	name string
}

// RunSelfPlay drives a computer-vs-computer game for up to maxTurns
// half-moves at a fixed search depth, with no interactive input. It
// reports "terminatedByMaxTurns" when the turn cap is hit before a
// decisive outcome.
func RunSelfPlay(maxTurns, depthLimit int, evalX, evalO sideEval, logger *engine.Logger, sink engine.ProgressSink) SelfPlayResult {
	state := board.NewInitialState()
	history := engine.NewKeySet()

	turn := 0
	for turn < maxTurns {
		turn++
		side := state.ToMove
		se := evalX
		if side == board.O {
			se = evalO
		}

		start := time.Now()
		action, err := engine.ChooseBestAction(state, side, history, depthLimit, se.fn)
		if err != nil {
			return SelfPlayResult{Turns: turn - 1, Winner: side.Opponent(), Terminated: "terminatedByNoLegalMoves"}
		}
		duration := time.Since(start)

		next, err := board.Apply(state, action, side)
		if err != nil {
			// The engine only ever returns actions the generator produced,
			// which Apply always accepts; a failure here is a programming
			// error, not a runtime condition to recover from.
			panic(fmt.Sprintf("selfplay: engine chose illegal action %s: %v", action, err))
		}
		state = next
		history.Add(state.Key())

		if logger != nil {
			logger.Log(engine.MoveLogEntry{
				Timestamp: time.Now(),
				Side:      side,
				Action:    action,
				EvalName:  se.name,
				Depth:     depthLimit,
				Duration:  duration,
			})
		}
		if sink != nil {
			sink.Publish(engine.ProgressSnapshot{Depth: depthLimit, MaxDepth: depthLimit, EvalName: se.name})
		}

		if winner, isTerminal := state.Terminal(); isTerminal {
			return SelfPlayResult{Turns: turn, Winner: winner, Terminated: "terminatedByOutcome"}
		}
	}

	return SelfPlayResult{Turns: maxTurns, Winner: board.Empty, Terminated: "terminatedByMaxTurns"}
}
