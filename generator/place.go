package generator

import "windowgrid/board"

// appendPlacements adds place(i) for every empty window cell, provided
// side has not yet placed all of its markers.
func appendPlacements(actions []board.Action, s board.GameState, side board.Cell) []board.Action {
	if s.Placements(side) >= board.MaxPlacements {
		return actions
	}
	for _, idx := range s.Window.Cells() {
		if s.Board[idx] == board.Empty {
			actions = append(actions, board.PlaceAction(idx))
		}
	}
	return actions
}
