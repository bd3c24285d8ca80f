package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"windowgrid/board"
)

func TestTerminalOnlyWin(t *testing.T) {
	s := board.NewInitialState()
	assert.Equal(t, 9, TerminalOnly(s, board.X, board.X, 1))
	assert.Equal(t, 10, TerminalOnly(s, board.X, board.X, 0))
}

func TestTerminalOnlyLoss(t *testing.T) {
	s := board.NewInitialState()
	assert.Equal(t, -9, TerminalOnly(s, board.O, board.X, 1))
}

func TestTerminalOnlyDrawOrNonTerminal(t *testing.T) {
	s := board.NewInitialState()
	assert.Equal(t, 0, TerminalOnly(s, board.Empty, board.X, 3))
}

func TestTerminalOnlyFasterWinsScoreHigher(t *testing.T) {
	s := board.NewInitialState()
	fast := TerminalOnly(s, board.X, board.X, 1)
	slow := TerminalOnly(s, board.X, board.X, 5)
	assert.Greater(t, fast, slow)
}
