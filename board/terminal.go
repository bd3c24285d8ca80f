package board

// lineOffsets enumerates the eight 3-in-a-row patterns (3 rows, 3
// columns, 2 diagonals) in window-relative coordinates. Each entry is
// three (row, col) offsets from the window's corner.
var lineOffsets = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}}, // row 0
	{{1, 0}, {1, 1}, {1, 2}}, // row 1
	{{2, 0}, {2, 1}, {2, 2}}, // row 2
	{{0, 0}, {1, 0}, {2, 0}}, // col 0
	{{0, 1}, {1, 1}, {2, 1}}, // col 1
	{{0, 2}, {1, 2}, {2, 2}}, // col 2
	{{0, 0}, {1, 1}, {2, 2}}, // diag \
	{{0, 2}, {1, 1}, {2, 0}}, // diag /
}

// Winner returns the side holding a complete line inside the active
// window, or Empty if there is none. A line completed outside the
// window (even if it was a window-local win before a shift) never
// counts.
func (s GameState) Winner() Cell {
	for _, line := range lineOffsets {
		a := s.Board[Index(s.Window.AY+line[0][0], s.Window.AX+line[0][1])]
		if a == Empty {
			continue
		}
		b := s.Board[Index(s.Window.AY+line[1][0], s.Window.AX+line[1][1])]
		c := s.Board[Index(s.Window.AY+line[2][0], s.Window.AX+line[2][1])]
		if a == b && b == c {
			return a
		}
	}
	return Empty
}

// IsDraw reports whether the board is full and there is no winner.
func (s GameState) IsDraw() bool {
	if s.Winner() != Empty {
		return false
	}
	for _, cell := range s.Board {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Terminal reports whether s is a win or a draw, and the winner (Empty
// for a draw).
func (s GameState) Terminal() (winner Cell, isTerminal bool) {
	if w := s.Winner(); w != Empty {
		return w, true
	}
	if s.IsDraw() {
		return Empty, true
	}
	return Empty, false
}
