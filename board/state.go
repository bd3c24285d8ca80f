package board

import (
	"fmt"
	"strings"
)

// GameState is the tuple (board, window, placement counters, side to
// move). Value-typed and persistent from the caller's point of view:
// Apply always returns a new value. The search hot path mutates a
// GameState in place via Do/Undo, but never exposes the mutation
// outside the engine package's call stack.
type GameState struct {
	Board       Board
	Window      Window
	PlacementsX int
	PlacementsO int
	ToMove      Cell
	key         StateKey
}

// NewInitialState returns the starting position: empty board, window at
// (1, 1), both placement counters zero, X to move.
func NewInitialState() GameState {
	s := GameState{
		Window: InitialWindow,
		ToMove: X,
	}
	s.key = computeKey(s)
	return s
}

// Key returns the state's deterministic fingerprint.
func (s GameState) Key() StateKey {
	return s.key
}

// Placements returns the placement counter for the given side.
func (s GameState) Placements(side Cell) int {
	if side == O {
		return s.PlacementsO
	}
	return s.PlacementsX
}

func (s *GameState) setPlacements(side Cell, n int) {
	if side == O {
		s.PlacementsO = n
	} else {
		s.PlacementsX = n
	}
}

// Pretty renders the board as a boxed 5x5 grid with the active window's
// cells marked, for terminal display.
func (s GameState) Pretty() string {
	var sb strings.Builder
	sb.WriteString("  1   2   3   4   5\n")
	sb.WriteString(" +---+---+---+---+---+\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('A' + row))
		for col := 0; col < BoardSize; col++ {
			cell := s.Board[Index(row, col)]
			mark := cell.String()
			if mark == "." && s.Window.Contains(row, col) {
				mark = "·"
			}
			fmt.Fprintf(&sb, "| %s ", mark)
		}
		sb.WriteString("|\n +---+---+---+---+---+\n")
	}
	fmt.Fprintf(&sb, "to move: %s  window: (%d,%d)  placements X=%d O=%d\n",
		s.ToMove, s.Window.AX, s.Window.AY, s.PlacementsX, s.PlacementsO)
	return sb.String()
}
