package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinnerWithinWindow(t *testing.T) {
	s := NewInitialState() // window at (1,1)
	s.Board[Index(1, 1)] = X
	s.Board[Index(1, 2)] = X
	s.Board[Index(1, 3)] = X

	assert.Equal(t, X, s.Winner())
	winner, terminal := s.Terminal()
	assert.Equal(t, X, winner)
	assert.True(t, terminal)
}

func TestWindowExternalLineDoesNotWin(t *testing.T) {
	s := NewInitialState() // window at (1,1)
	for col := 0; col < BoardSize; col++ {
		s.Board[Index(0, col)] = X
	}

	assert.Equal(t, Empty, s.Winner())
	assert.False(t, s.IsDraw())
}

func TestDrawRequiresFullBoardAndNoWinner(t *testing.T) {
	s := NewInitialState()
	assert.False(t, s.IsDraw(), "empty board is not a draw")

	// Fill the board so every window-relative line (rows/cols 1-3) is
	// broken; cells outside the window are irrelevant to Winner() and
	// just need to be non-empty for a full board.
	pattern := []Cell{
		O, O, O, O, O,
		O, X, O, X, O,
		O, X, O, O, O,
		O, O, X, X, O,
		O, O, O, O, O,
	}
	for i, c := range pattern {
		s.Board[i] = c
	}

	assert.Equal(t, Empty, s.Winner())
	assert.True(t, s.IsDraw())
}

func TestDiagonalWin(t *testing.T) {
	s := NewInitialState() // window at (1,1)
	s.Board[Index(1, 1)] = O
	s.Board[Index(2, 2)] = O
	s.Board[Index(3, 3)] = O

	assert.Equal(t, O, s.Winner())
}
