package generator

import "windowgrid/board"

// appendShifts adds shift(dx, dy) for every 8-directional offset that
// keeps the window corner in bounds, provided side has placed at least
// two markers.
func appendShifts(actions []board.Action, s board.GameState, side board.Cell) []board.Action {
	if s.Placements(side) < board.MinPlacementsForMoveOrShift {
		return actions
	}
	for _, off := range board.ShiftOffsets {
		dx, dy := off[0], off[1]
		if _, ok := s.Window.Shifted(dx, dy); ok {
			actions = append(actions, board.ShiftAction(dx, dy))
		}
	}
	return actions
}
