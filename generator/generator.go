// Package generator enumerates legal actions for a side to move, in
// deterministic place -> move -> shift order. Move ordering for the
// search lives in the engine package, which re-sorts whatever this
// package returns.
package generator

import "windowgrid/board"

// Generate returns every legal action for side in state S, in
// deterministic order: place(i) for empty window cells (while
// placements < 4), then move(from, to) and shift(dx, dy) once
// placements >= 2.
func Generate(s board.GameState, side board.Cell) []board.Action {
	actions := make([]board.Action, 0, 16)
	actions = appendPlacements(actions, s, side)
	actions = appendMoves(actions, s, side)
	actions = appendShifts(actions, s, side)
	return actions
}
