package generator

import "windowgrid/board"

// appendMoves adds move(from, to) for every own marker anywhere on the
// board and every empty window cell, provided side has placed at least
// two markers.
func appendMoves(actions []board.Action, s board.GameState, side board.Cell) []board.Action {
	if s.Placements(side) < board.MinPlacementsForMoveOrShift {
		return actions
	}
	windowCells := s.Window.Cells()
	for from, cell := range s.Board {
		if cell != side {
			continue
		}
		for _, to := range windowCells {
			if to == from {
				continue
			}
			if s.Board[to] == board.Empty {
				actions = append(actions, board.MoveAction(from, to))
			}
		}
	}
	return actions
}
