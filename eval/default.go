package eval

import "windowgrid/board"

// terminalMagnitude bounds the default plugin's terminal score. Sound
// only for maxDepth < 10: at depth 10 a win and a draw both score 0.
const terminalMagnitude = 10

// TerminalOnly is the "default" built-in: it scores only decisive
// outcomes, faster wins/losses scoring more extreme, and is blind to
// any non-terminal board feature.
func TerminalOnly(state board.GameState, winner board.Cell, aiSide board.Cell, depth int) int {
	switch winner {
	case aiSide:
		return terminalMagnitude - depth
	case board.Empty:
		return 0
	default:
		return depth - terminalMagnitude
	}
}
