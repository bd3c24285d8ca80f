package eval

import "windowgrid/board"

// positionalTerminalMagnitude bounds Positional's terminal score; safe
// up to maxDepth 99.
const positionalTerminalMagnitude = 100

const (
	threatWeight = 3
	windowWeight = 1
	centerWeight = 2
)

// positionalLines mirrors board's window-relative line table; kept
// local so eval stays independent of board's unexported internals.
var positionalLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Positional is the "positional" built-in: terminal wins use the same
// depth-scaled shape as TerminalOnly but with a wider magnitude, and
// non-terminal positions sum three features: two-in-a-row threats,
// in-window marker count, and window-centre occupancy.
func Positional(state board.GameState, winner board.Cell, aiSide board.Cell, depth int) int {
	opponent := aiSide.Opponent()

	switch winner {
	case aiSide:
		return positionalTerminalMagnitude - depth
	case opponent:
		return depth - positionalTerminalMagnitude
	}

	score := 0
	score += threatWeight * (twoInARowThreats(state, aiSide) - twoInARowThreats(state, opponent))
	score += windowWeight * (inWindowCount(state, aiSide) - inWindowCount(state, opponent))

	centerRow := state.Window.AY + 1
	centerCol := state.Window.AX + 1
	center := state.Board[board.Index(centerRow, centerCol)]
	if center == aiSide {
		score += centerWeight
	} else if center == opponent {
		score -= centerWeight
	}

	return score
}

// twoInARowThreats counts window-local lines holding exactly two of
// side's markers and one empty cell.
func twoInARowThreats(state board.GameState, side board.Cell) int {
	threats := 0
	for _, line := range positionalLines {
		own, empty := 0, 0
		for _, off := range line {
			cell := state.Board[board.Index(state.Window.AY+off[0], state.Window.AX+off[1])]
			switch cell {
			case side:
				own++
			case board.Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			threats++
		}
	}
	return threats
}

// inWindowCount counts side's markers inside the active window.
func inWindowCount(state board.GameState, side board.Cell) int {
	n := 0
	for _, idx := range state.Window.Cells() {
		if state.Board[idx] == side {
			n++
		}
	}
	return n
}
