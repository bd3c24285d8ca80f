package engine

import (
	"sort"

	"windowgrid/board"
)

// Move-ordering priorities: placing is usually more committal than
// shifting, and centre/corner placements dominate 3x3 line counting, so
// they are tried first to help alpha-beta prune early.
const (
	priorityPlaceCenter = 100
	priorityPlaceCorner = 80
	priorityPlaceOther  = 60
	priorityMove        = 40
	priorityShift       = 20
)

// priority scores action for ordering, given the window it was
// generated against.
func priority(action board.Action, window board.Window) int {
	switch action.Kind {
	case board.Place:
		row, col := board.RowCol(action.Index)
		relRow, relCol := row-window.AY, col-window.AX
		switch {
		case relRow == 1 && relCol == 1:
			return priorityPlaceCenter
		case (relRow == 0 || relRow == 2) && (relCol == 0 || relCol == 2):
			return priorityPlaceCorner
		default:
			return priorityPlaceOther
		}
	case board.Move:
		return priorityMove
	default: // Shift
		return priorityShift
	}
}

// orderActions sorts actions descending by priority, stable so that
// within equal priority the generator's deterministic order survives.
// If ttAction is present among actions, it is rotated to the front
// after sorting.
func orderActions(actions []board.Action, window board.Window, ttAction board.Action, hasTTAction bool) {
	sort.SliceStable(actions, func(i, j int) bool {
		return priority(actions[i], window) > priority(actions[j], window)
	})
	if !hasTTAction {
		return
	}
	for i, a := range actions {
		if a == ttAction {
			if i != 0 {
				copy(actions[1:i+1], actions[0:i])
				actions[0] = a
			}
			break
		}
	}
}
